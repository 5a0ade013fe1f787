// Package markdown renders keyword descriptions as styled terminal markdown.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins so rendered
// descriptions line up with the rest of the hint panel.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	},
	"paragraph": {
		"margin": 0
	}
}`

// Renderer wraps glamour with a fixed width and light/dark style.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	dark     bool
}

// New creates a markdown renderer with the given width.
func New(width int, dark bool) (*Renderer, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width, dark: dark}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Dark reports whether the renderer uses the dark style.
func (r *Renderer) Dark() bool {
	return r.dark
}

// Render transforms markdown to styled terminal output with surrounding blank
// lines trimmed.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
