package app

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangeSummary counts lines added and removed relative to the last save.
type ChangeSummary struct {
	Added   int
	Removed int
}

// Empty reports whether no line changed.
func (c ChangeSummary) Empty() bool {
	return c.Added == 0 && c.Removed == 0
}

// Summarize runs a line-mode diff between before and after.
func Summarize(before, after string) ChangeSummary {
	if before == after {
		return ChangeSummary{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var s ChangeSummary
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			s.Removed += countLines(d.Text)
		}
	}
	return s
}

// countLines counts newline-terminated lines plus a trailing partial line.
func countLines(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
