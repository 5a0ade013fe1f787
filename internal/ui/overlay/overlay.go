// Package overlay draws a dialog on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the center of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
)

// Config controls overlay rendering behavior.
type Config struct {
	// Width is the total viewport width.
	Width int
	// Height is the total viewport height.
	Height int
	// Position specifies where to place the overlay (Center, Top, Bottom).
	Position Position
	// PadY adds vertical padding from edges (for Top/Bottom positions).
	PadY int
	// Backdrop, when set, restyles the background behind the dialog.
	// The background's own colors are dropped first.
	Backdrop *lipgloss.Style
}

// Rect is a region of the screen in cells.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Place renders fg on top of bg. See PlaceRect.
func Place(cfg Config, fg, bg string) string {
	out, _ := PlaceRect(cfg, fg, bg)
	return out
}

// PlaceRect renders fg on top of bg and returns where fg landed. Cutting
// and joining is ANSI-aware, so styling on both sides of the dialog
// survives.
func PlaceRect(cfg Config, fg, bg string) (string, Rect) {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}
	if cfg.Backdrop != nil {
		for i, l := range bgLines {
			bgLines[i] = cfg.Backdrop.Render(ansi.Strip(l))
		}
	}

	rect := Rect{Width: lipgloss.Width(fg), Height: len(fgLines)}
	rect.X, rect.Y = calculatePosition(cfg, rect.Width, rect.Height)

	for i, fgLine := range fgLines {
		y := rect.Y + i
		if y >= len(bgLines) {
			break
		}
		bgLines[y] = splice(bgLines[y], fgLine, rect.X)
	}

	return strings.Join(bgLines, "\n"), rect
}

// splice replaces the cells of line starting at column x with fg.
func splice(line, fg string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	if end := x + ansi.StringWidth(fg); end < ansi.StringWidth(line) {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + fg + right
}

// calculatePosition determines the x,y starting coordinates for the overlay.
func calculatePosition(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
