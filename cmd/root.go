package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/internal/logger"
	"github.com/huangsam/rolodex/internal/store"
	"github.com/huangsam/rolodex/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// log is the diagnostics logger. It writes to stderr only.
var log = logger.Nop()

// contactStore is the address book shared by the session.
var contactStore contract.ContactStore

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "A contact book assistant with birthday reminders.",
	Long: `Rolodex keeps names, phone numbers and birthdays for the current session
and tells you whose birthday to celebrate in the coming week.

Running rolodex without a subcommand starts the interactive shell.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	PostRunE:           sharedTeardownWrapper,
	RunE:               runShellCommand,
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(contract.DefaultConfigName) // Name of config file (without extension)
		viper.SetConfigType("yaml")                     // We'll use YAML format
		viper.AddConfigPath(".")                        // Look in the current directory
		viper.AddConfigPath("$HOME")                    // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix(contract.DefaultEnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("output", schema.PlainOut)
	viper.SetDefault("export-format", schema.CSVExport)
	viper.SetDefault("store-backend", schema.MemoryBackend)
	viper.SetDefault("today", "")
	viper.SetDefault("width", 0)
	viper.SetDefault("color", "yes")
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("log-mode", schema.DevelopmentLog)
}

// sharedSetup unmarshals config, runs validation and opens the contact store.
func sharedSetup(ctx context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and parsing. This populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 4. Build the logger now that level and mode are known.
	l, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = l

	// 5. Open the contact store for this session.
	s, err := store.New(ctx, cfg.StoreBackend)
	if err != nil {
		return fmt.Errorf("failed to initialize contact store: %w", err)
	}
	contactStore = s
	log.Debug("configuration loaded", "backend", cfg.StoreBackend, "output", cfg.Output, "today", cfg.Clock()())
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// sharedTeardownWrapper releases what sharedSetup opened.
func sharedTeardownWrapper(_ *cobra.Command, _ []string) error {
	defer log.Sync()
	if contactStore == nil {
		return nil
	}
	if err := contactStore.Close(); err != nil {
		contract.LogWarn("Cannot close contact store", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
