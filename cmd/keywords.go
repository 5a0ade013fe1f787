package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/keywords"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the keyword table",
	Long: `Load and validate the keyword table the editor would use and list its
entries. Use --file to check a keyword file on its own.`,
	Example: `  codehint keywords
  codehint keywords --file api.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().StringP("file", "f", "", "list only this keyword file")
	keywordsCmd.Flags().Bool("json", false, "print entries as JSON")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	file, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	var (
		entries []hint.KeywordEntry
		err     error
	)
	if file != "" {
		entries, err = keywords.LoadFile(file)
	} else {
		entries, err = keywords.Load(cfg.Keywords.File, cfg.Keywords.Builtin)
	}
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	theme, err := styles.NewTheme(cfg.Theme.StyleConfig())
	if err != nil {
		return fmt.Errorf("building theme: %w", err)
	}
	return writeKeywordTable(cmd.OutOrStdout(), theme, entries)
}

// maxSignatureWidth caps the signature column.
const maxSignatureWidth = 60

func writeKeywordTable(w io.Writer, theme *styles.Theme, entries []hint.KeywordEntry) error {
	nameWidth := len("NAME")
	for _, e := range entries {
		nameWidth = max(nameWidth, lipgloss.Width(e.Name))
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(theme.HintTitle.GetForeground())
	name := lipgloss.NewStyle().Width(nameWidth + 2).Foreground(theme.HintSignature.GetForeground())
	muted := lipgloss.NewStyle().Foreground(theme.HintDimmed.GetForeground())

	var b strings.Builder
	b.WriteString(header.Width(nameWidth+2).Render("NAME") + header.Render("SIGNATURE") + "\n")
	for _, e := range entries {
		b.WriteString(name.Render(e.Name))
		b.WriteString(styles.TruncateString(e.Signature, maxSignatureWidth))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s\n", muted.Render(fmt.Sprintf("%d keywords", len(entries))))

	_, err := io.WriteString(w, b.String())
	return err
}
