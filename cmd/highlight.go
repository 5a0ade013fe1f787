package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/codehint/internal/highlight"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [FILE]",
	Short: "Print a file with syntax highlighting",
	Long: `Highlight a file (or stdin) with the editor's rules and print it with
terminal colors from the current theme, or as HTML with --html.`,
	Example: `  codehint highlight main.js
  cat main.js | codehint highlight --html > main.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

func init() {
	highlightCmd.Flags().Bool("html", false, "render HTML spans instead of terminal colors")
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	asHTML, _ := cmd.Flags().GetBool("html")

	var file string
	if len(args) == 1 {
		file = args[0]
	}
	text, err := readInput(cmd.InOrStdin(), file, nil)
	if err != nil {
		return err
	}

	theme, err := styles.NewTheme(cfg.Theme.StyleConfig())
	if err != nil {
		return fmt.Errorf("building theme: %w", err)
	}
	return writeHighlighted(cmd.OutOrStdout(), theme, text, asHTML)
}

func writeHighlighted(w io.Writer, theme *styles.Theme, text string, asHTML bool) error {
	spans := highlight.Default().Tokenize(text)
	var out string
	if asHTML {
		out = highlight.RenderHTML(text, spans)
	} else {
		out = highlight.RenderANSI(text, spans, theme.Syntax)
	}
	_, err := io.WriteString(w, out)
	return err
}
