package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mkeane/daft2trello/internal/fetch"
	"github.com/mkeane/daft2trello/internal/importer"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <listing-url>",
		Short: "Import a listing as a card on the configured board",
		Long: `Import fetches a Daft.ie listing page, extracts its attributes, and
creates a card in the first list of the configured board. The listing
photo is attached and set as the card cover, and the source page URL is
attached for traceability.

There is no retry and no rollback: if a later step fails, the card
created by an earlier step stays on the board.

Example:
  daft2trello import https://www.daft.ie/for-rent/apartment-123/456789`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	setupLogging(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := fetch.New(cfg.CacheFile,
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
	)

	im := importer.New(fetcher, newTrelloClient(cfg))

	result, err := im.Import(ctx, cfg.Board, args[0])
	if err != nil {
		return err
	}

	printListing(cmd, result.Listing)
	fmt.Fprintf(cmd.OutOrStdout(), "Created card %s", result.Card.ID)
	if result.Card.URL != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)", result.Card.URL)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	return nil
}
