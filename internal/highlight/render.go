package highlight

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette maps classes to terminal styles. Classes without an entry render
// unstyled.
type Palette map[Class]lipgloss.Style

// Style returns the style for c and whether one is set.
func (p Palette) Style(c Class) (lipgloss.Style, bool) {
	if c == ClassPlain || p == nil {
		return lipgloss.Style{}, false
	}
	s, ok := p[c]
	return s, ok
}

// RenderANSI renders text with ANSI styling from palette.
func RenderANSI(text string, spans []Span, palette Palette) string {
	var b strings.Builder
	for _, seg := range Segments(text, spans) {
		if style, ok := palette.Style(seg.Class); ok {
			b.WriteString(style.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// RenderHTML renders text as escaped HTML with each classified span wrapped
// in <span class="...">. Escaping happens once per segment, so markup from
// one rule is never seen by another.
func RenderHTML(text string, spans []Span) string {
	var b strings.Builder
	for _, seg := range Segments(text, spans) {
		escaped := html.EscapeString(seg.Text)
		if seg.Class == ClassPlain {
			b.WriteString(escaped)
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(seg.Class.String())
		b.WriteString(`">`)
		b.WriteString(escaped)
		b.WriteString("</span>")
	}
	return b.String()
}
