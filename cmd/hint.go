package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/codehint/internal/hint"
)

var hintCmd = &cobra.Command{
	Use:   "hint [TEXT]",
	Short: "Print the signature hint for a caret offset",
	Long: `Resolve the keyword at a caret offset and print its hint.

The text comes from the TEXT argument, --file, or stdin. Offsets count
characters, not bytes. The default offset -1 means the end of the text.`,
	Example: `  codehint hint 'map(x, '
  codehint hint --file main.js --offset 120 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHint,
}

func init() {
	hintCmd.Flags().IntP("offset", "o", -1, "caret offset in characters (-1 for end of text)")
	hintCmd.Flags().StringP("file", "f", "", "read text from a file")
	hintCmd.Flags().Bool("json", false, "print the hint as JSON")
	rootCmd.AddCommand(hintCmd)
}

// hintOutput is the JSON form of a resolved hint.
type hintOutput struct {
	Found           bool     `json:"found"`
	Identifier      string   `json:"identifier,omitempty"`
	InCallArguments bool     `json:"in_call_arguments"`
	ArgumentIndex   int      `json:"argument_index"`
	Name            string   `json:"name,omitempty"`
	Signature       string   `json:"signature,omitempty"`
	Markdown        string   `json:"markdown,omitempty"`
	ActiveParameter int      `json:"active_parameter"`
	Parameters      []string `json:"parameters,omitempty"`
	Description     string   `json:"description,omitempty"`
}

func runHint(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	offset, _ := cmd.Flags().GetInt("offset")
	file, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	text, err := readInput(cmd.InOrStdin(), file, args)
	if err != nil {
		return err
	}

	res, err := buildResources(cfg)
	if err != nil {
		return err
	}
	return writeHint(cmd.OutOrStdout(), res.table, cfg.Hints.FormatOptions(), text, offset, asJSON)
}

// readInput returns the text argument, the file contents, or stdin, in that
// order of preference.
func readInput(stdin io.Reader, file string, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if file != "" {
		data, err := os.ReadFile(file) //nolint:gosec // user-supplied path is the point
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func buildHintOutput(source hint.KeywordSource, opts hint.FormatOptions, text string, offset int) hintOutput {
	if offset < 0 {
		offset = len([]rune(text))
	}
	h, ok := hint.Resolve(source, text, offset, opts)
	out := hintOutput{
		Found:           ok,
		Identifier:      h.Context.Identifier,
		InCallArguments: h.Context.InCallArguments,
		ArgumentIndex:   h.Context.ArgumentIndex,
		ActiveParameter: -1,
	}
	if !ok {
		return out
	}
	out.Name = h.Entry.Name
	out.Signature = h.Signature.Plain()
	out.Markdown = h.Signature.Markdown()
	out.ActiveParameter = h.ActiveParameter()
	out.Parameters = h.Entry.Parameters
	out.Description = h.Entry.Description
	return out
}

func writeHint(w io.Writer, source hint.KeywordSource, opts hint.FormatOptions, text string, offset int, asJSON bool) error {
	out := buildHintOutput(source, opts, text, offset)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !out.Found {
		if out.Identifier == "" {
			_, err := fmt.Fprintln(w, "No identifier at caret")
			return err
		}
		_, err := fmt.Fprintf(w, "No keyword matches %q\n", out.Identifier)
		return err
	}

	var b strings.Builder
	b.WriteString(out.Markdown + "\n")
	if out.InCallArguments {
		fmt.Fprintf(&b, "argument: %d\n", out.ArgumentIndex)
	}
	if out.Description != "" {
		b.WriteString("\n" + out.Description + "\n")
	}
	if len(out.Parameters) > 0 {
		b.WriteString("\nParameters:\n")
		for i, p := range out.Parameters {
			marker := "  "
			if i == out.ActiveParameter {
				marker = "> "
			}
			b.WriteString(marker + p + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
