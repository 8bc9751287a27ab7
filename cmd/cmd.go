// Package cmd defines the command-line interface for rolodex.
package cmd

import (
	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.PlainOut), "Listing format: plain or text (table) or csv or json")
	rootCmd.PersistentFlags().String("export-format", string(schema.CSVExport), "Export file format: csv or json or parquet")
	rootCmd.PersistentFlags().String("store-backend", string(schema.MemoryBackend), "Contact store: memory or sqlite (both in-memory)")
	rootCmd.PersistentFlags().String("today", "", "Override today's date (DD.MM.YYYY)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Diagnostics level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("log-mode", string(schema.DevelopmentLog), "Diagnostics encoding: development or production")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
