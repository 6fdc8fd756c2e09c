package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkeane/daft2trello/internal/config"
)

// NewConfigureCmd creates the configure command.
func NewConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactively set up Trello credentials and the target board",
		Long: `Configure walks through first-run setup: the Trello API key, the user
token authorized against it, and the board that receives imported cards.

Values already present in the configuration file are kept; only missing
ones are prompted for. The result is written to the configuration file
(default: $DAFT2TRELLORC or ~/.config/daft2trello/config.yaml).`,
		Args: cobra.NoArgs,
		RunE: runConfigureCmd,
	}
}

// runConfigureCmd executes the configure command.
func runConfigureCmd(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)

	path := configFilePath(cmd)

	// A missing file is the expected first-run state here.
	f, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return err
		}
		f = &config.File{}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Loading configuration from %s\n", path)
	}

	if err := fillConfiguration(cmd, f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Writing configuration to %s\n", path)
	return config.Save(path, f)
}

// fillConfiguration prompts for every configuration value that is still
// missing, in dependency order: the token prompt needs the API key, and
// the board prompt needs both credentials to list candidate boards.
func fillConfiguration(cmd *cobra.Command, f *config.File) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	if f.Trello.APIKey == "" {
		fmt.Fprintln(out, "A Trello API key is required. Please visit "+
			"https://trello.com/app-key in a browser and paste the "+
			"API key (value in the first box) here.")
		key, err := prompt(in, out, "API Key")
		if err != nil {
			return err
		}
		f.Trello.APIKey = key
	}

	if f.Trello.UserToken == "" {
		authorizeURL := "https://trello.com/1/authorize?key=" + f.Trello.APIKey +
			"&name=Daft+to+Trello&expiration=never&response_type=token&scope=read,write"
		fmt.Fprintf(out, "A Trello user token is required to access the board. "+
			"Please visit the following url:\n%s\nin a browser and paste the "+
			"obtained token below.\n", authorizeURL)
		token, err := prompt(in, out, "User token")
		if err != nil {
			return err
		}
		f.Trello.UserToken = token
	}

	if f.Trello.Board == "" {
		client := newTrelloClient(&config.Config{
			APIKey:    f.Trello.APIKey,
			UserToken: f.Trello.UserToken,
			Timeout:   config.DefaultTimeout,
			UserAgent: config.DefaultUserAgent,
		})

		boards, err := client.ListMemberBoards(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list boards: %w", err)
		}

		fmt.Fprintln(out, "No board was selected. Please choose one:")
		for _, board := range boards {
			fmt.Fprintf(out, "    %s %s\n", board.ID, board.Name)
		}
		boardID, err := prompt(in, out, "Board id")
		if err != nil {
			return err
		}
		f.Trello.Board = boardID
	}

	return nil
}

// prompt reads one trimmed line of input, re-asking until it is
// non-empty.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)

		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if value := strings.TrimSpace(line); value != "" {
			return value, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("no input for %s", label)
		}
	}
}
