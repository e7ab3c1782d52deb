package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var cookie string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save a Xueqiu cookie",
		Long: `Save a Xueqiu cookie for authenticated endpoints.

Copy the Cookie header value from a logged-in browser session (at minimum
the xq_a_token pair). The cookie is verified against the quote endpoint
before being saved to ~/.xueqiu/config.yml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cookie == "" {
				cookie = viper.GetString("cookie")
			}

			if cookie == "" {
				fmt.Print("Cookie: ")

				byteCookie, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read cookie: %w", err)
				}

				cookie = strings.TrimSpace(string(byteCookie))

				fmt.Println()
			}

			if cookie == "" {
				return ErrCookieRequired
			}

			viper.Set("cookie", cookie)

			client, err := CreateClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credential against an authenticated endpoint.
			ctx := context.Background()
			if _, err := client.Realtime().QuoteDetail(ctx, "SH000001"); err != nil {
				return fmt.Errorf("cookie verification failed: %w", err)
			}

			config := loadConfig()
			config.Cookie = cookie

			if baseURL := viper.GetString("base-url"); baseURL != "" {
				config.BaseURL = baseURL
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged in")

			return nil
		},
	}

	cmd.Flags().StringVar(&cookie, "cookie", "", "cookie header value (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved cookie",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Cookie = ""

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Successfully logged out")

			return nil
		},
	}
}
