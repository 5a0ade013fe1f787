package editor

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cell is one grapheme cluster of a line as it appears on screen.
// start and end are rune offsets within the line; x is the display column.
type cell struct {
	start int
	end   int
	x     int
	width int
	text  string
}

// layoutLine splits a line into display cells. Tabs expand to tabWidth
// spaces and control characters render as a single space so every cell
// occupies at least one column.
func layoutLine(line []rune, tabWidth int) []cell {
	if len(line) == 0 {
		return nil
	}
	cells := make([]cell, 0, len(line))
	rest := string(line)
	state := -1
	pos, x := 0, 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		n := len([]rune(cluster))

		text := cluster
		var w int
		switch {
		case cluster == "\t":
			w = max(tabWidth, 1)
			text = strings.Repeat(" ", w)
		case isControl(cluster):
			w = 1
			text = " "
		default:
			w = runewidth.StringWidth(cluster)
			if w == 0 {
				w = 1
			}
		}

		cells = append(cells, cell{start: pos, end: pos + n, x: x, width: w, text: text})
		pos += n
		x += w
	}
	return cells
}

func isControl(cluster string) bool {
	for _, r := range cluster {
		return unicode.IsControl(r)
	}
	return false
}

// displayWidth returns the number of columns line occupies.
func displayWidth(line []rune, tabWidth int) int {
	cells := layoutLine(line, tabWidth)
	if len(cells) == 0 {
		return 0
	}
	last := cells[len(cells)-1]
	return last.x + last.width
}
