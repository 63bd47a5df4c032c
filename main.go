package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mveld/burrow/internal/browser"
	"github.com/mveld/burrow/internal/config"
	"github.com/mveld/burrow/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		jsonMode   bool
		query      string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "burrow [directory]",
		Short: "Fuzzy-filtering terminal file browser",
		Long: `Burrow is a terminal file browser: navigate a directory tree, narrow
the listing by typing a fuzzy pattern, preview the highlighted file, and
print the chosen path on exit for another program (e.g. an editor) to pick
up. The UI draws on stderr so stdout carries only the result.

With --json burrow skips the UI entirely and prints the ranked listing for
the given directory and query as JSON.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if maxResults > 0 {
				cfg.MaxResults = maxResults
			}

			dir := cfg.StartDir
			if dir == "" {
				dir = "."
			}
			if len(args) > 0 {
				dir = args[0]
			}

			if jsonMode {
				return runBatch(cmd.OutOrStdout(), dir, query, cfg.MaxResults)
			}
			return runInteractive(dir, query, cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonMode, "json", false, "print ranked results as JSON instead of opening the UI")
	cmd.Flags().StringVar(&query, "query", "", "initial filter query")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "result cap for --json output (overrides config)")

	return cmd
}

// runBatch is the headless entry point: one ranking pass, JSON out.
func runBatch(w io.Writer, dir, query string, limit int) error {
	results, err := browser.Rank(dir, query, limit)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func runInteractive(dir, query string, cfg *config.Config) error {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	session, err := browser.NewSession(dir, query)
	if err != nil {
		return err
	}

	m := newModel(session, cfg)

	// The UI owns stderr; stdout stays clean for the selection result
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	if fm, ok := final.(*model); ok && fm.selected != "" {
		fmt.Println(fm.selected)
	}
	return nil
}
