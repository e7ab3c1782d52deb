package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".xueqiu"
	configFileName = "config.yml"

	configDirPerm  = 0o700
	configFilePerm = 0o600
)

// CLIConfig is the on-disk configuration saved by 'xueqiu login'.
type CLIConfig struct {
	Cookie  string `yaml:"cookie,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

// loadConfig reads the saved config. A missing or unreadable file yields an
// empty config so the CLI still works from flags and environment alone.
func loadConfig() *CLIConfig {
	config := &CLIConfig{}

	path, err := configPath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return &CLIConfig{}
	}

	return config
}

// saveConfig writes the config with owner-only permissions; it holds a
// credential.
func saveConfig(config *CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
