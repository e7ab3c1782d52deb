package main

import (
	"fmt"
	"os"

	"github.com/liqiongyu/xueqiu-api/cmd/xueqiu/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "xueqiu",
	Short: "Xueqiu market data CLI",
	Long: `A command-line interface for Xueqiu market data.

Quotes, klines, financial statements, and fund/index data from auxiliary
providers. Authenticated endpoints need a Xueqiu cookie; run 'xueqiu login'
or set XUEQIU_TOKEN.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("cookie", "", "Xueqiu cookie header value")
	rootCmd.PersistentFlags().String("base-url", "", "stock API base URL")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Int("retries", 0, "retries after the first attempt (negative disables)")

	_ = viper.BindPFlag("cookie", rootCmd.PersistentFlags().Lookup("cookie"))
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("retries", rootCmd.PersistentFlags().Lookup("retries"))

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewQuoteCommand())
	rootCmd.AddCommand(commands.NewKlineCommand())
	rootCmd.AddCommand(commands.NewSuggestCommand())
	rootCmd.AddCommand(commands.NewFundCommand())
	rootCmd.AddCommand(commands.NewIndexCommand())
	rootCmd.AddCommand(commands.NewBondCommand())
	rootCmd.AddCommand(commands.NewFixturesCommand())
}

func initConfig() {
	viper.SetEnvPrefix("XUEQIU")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
