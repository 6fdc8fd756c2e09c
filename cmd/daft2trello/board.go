package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mkeane/daft2trello/internal/board"
	"github.com/mkeane/daft2trello/internal/trello"
)

// NewBoardCmd creates the board command.
func NewBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Display the configured Trello board",
		Long: `Board fetches the configured board with all of its lists and cards and
prints them grouped by list.

Examples:
  # Show the board in the terminal
  daft2trello board

  # Export the board as Markdown
  daft2trello board --markdown -o board.md`,
		Args: cobra.NoArgs,
		RunE: runBoardCmd,
	}

	cmd.Flags().BoolP("markdown", "m", false, "Output the board as Markdown")
	cmd.Flags().StringP("output", "o", "",
		"Write output to the specified file path (creates directories if needed)")

	return cmd
}

// runBoardCmd executes the board command.
func runBoardCmd(cmd *cobra.Command, _ []string) error {
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

	client := newTrelloClient(cfg)
	snapshot, err := client.GetBoard(ctx, cfg.Board, trello.BoardFilter{Lists: "all", Cards: "all"})
	if err != nil {
		return err
	}

	return writeBoard(cmd, snapshot)
}

// writeBoard renders the board in the requested format to stdout or the
// --output file.
func writeBoard(cmd *cobra.Command, snapshot *trello.Board) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	output := cmd.OutOrStdout()
	if outputPath != "" {
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.Create(outputPath) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer board.Writer
	if markdown {
		writer = board.NewMarkdownWriter(output)
	} else {
		writer = board.NewTextWriter(output)
	}

	_, err = writer.Write(snapshot)
	return err
}
