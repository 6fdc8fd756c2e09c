package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mkeane/daft2trello/internal/config"
	"github.com/mkeane/daft2trello/internal/fetch"
	"github.com/mkeane/daft2trello/internal/importer"
	"github.com/mkeane/daft2trello/internal/listing"
)

// NewScrapeCmd creates the scrape command.
func NewScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape <listing-url>",
		Short: "Extract a listing without creating a card",
		Long: `Scrape fetches a Daft.ie listing page and prints the extracted fields
without touching Trello. Useful as a dry run before importing, and for
checking the extractor against a page.

Set DAFT2TRELLO_CACHEFILE to cache fetched pages across runs while
iterating.

Example:
  daft2trello scrape https://www.daft.ie/for-rent/apartment-123/456789`,
		Args: cobra.ExactArgs(1),
		RunE: runScrapeCmd,
	}
}

// runScrapeCmd executes the scrape command.
// Scraping needs no Trello credentials, so the configuration file is
// not required here.
func runScrapeCmd(cmd *cobra.Command, args []string) error {
	setupLogging(cmd)

	cfg := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := fetch.New(cfg.CacheFile,
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
	)

	l, err := importer.New(fetcher, nil).Scrape(ctx, args[0])
	if err != nil {
		return err
	}

	printListing(cmd, l)
	return nil
}

// printListing prints the card attributes a listing would produce.
func printListing(cmd *cobra.Command, l *listing.Listing) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Card title: %s\n", importer.CardName(l))
	fmt.Fprintf(out, "Card URL: %s\n", l.URL)
	fmt.Fprintf(out, "Card cover pic: %s\n", l.Image)
	fmt.Fprintf(out, "Description:\n%s\n", l.Description)
}
