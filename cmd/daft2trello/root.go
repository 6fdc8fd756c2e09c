// Package main provides the entry point for the daft2trello CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkeane/daft2trello/internal/config"
	"github.com/mkeane/daft2trello/internal/log"
	"github.com/mkeane/daft2trello/internal/trello"
)

// NewRootCmd creates the root command for daft2trello.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daft2trello",
		Short: "Import Daft.ie property listings as Trello cards",
		Long: `daft2trello scrapes a Daft.ie property listing page and republishes it
as a card on a Trello board: the card title carries the price and
bed/bath counts, the listing photo becomes the card cover, and the
original page is attached for traceability.

Run "daft2trello configure" once to store your Trello credentials and
pick a target board, then "daft2trello import <url>" for each listing.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: $DAFT2TRELLORC or the XDG config directory)")

	// Add subcommands
	cmd.AddCommand(NewConfigureCmd())
	cmd.AddCommand(NewBoardCmd())
	cmd.AddCommand(NewScrapeCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// configFilePath resolves the configuration file path from the --config
// flag, falling back to the environment/XDG default.
func configFilePath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		path, err = cmd.Root().PersistentFlags().GetString("config")
	}
	if err == nil && path != "" {
		return path
	}
	return config.ConfigFilePath()
}

// setupLogging installs the credential-masking logger as the process
// default and returns it.
func setupLogging(cmd *cobra.Command) *slog.Logger {
	logger := log.NewSecureLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}

// loadConfig builds the runtime configuration for commands that need
// the stored credentials: defaults, then the configuration file, then
// global flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	f, err := config.Load(configFilePath(cmd))
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// newTrelloClient creates a Trello client from the configuration.
func newTrelloClient(cfg *config.Config) *trello.Client {
	return trello.NewClient(cfg.APIKey, cfg.UserToken,
		trello.WithTimeout(cfg.Timeout),
		trello.WithUserAgent(cfg.UserAgent),
	)
}
