package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// TruncateString truncates a string to fit within maxWidth, adding ellipsis if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return strings.Repeat(".", maxWidth)
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}

// TruncatePath shortens a path from the left so the file name stays visible:
// "/very/long/dir/main.js" becomes ".../dir/main.js".
func TruncatePath(p string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	w := lipgloss.Width(p)
	if w <= maxWidth {
		return p
	}
	if maxWidth <= len(ellipsis) {
		return strings.Repeat(".", maxWidth)
	}
	return ellipsis + ansi.TruncateLeft(p, w-(maxWidth-len(ellipsis)), "")
}
