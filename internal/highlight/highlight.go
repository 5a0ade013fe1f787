package highlight

import (
	"sort"

	"github.com/zjrosen/codehint/internal/log"
)

// Span is a classified region of text in rune offsets, End exclusive.
type Span struct {
	Start int
	End   int
	Class Class
}

// Highlighter applies an ordered rule list to text.
type Highlighter struct {
	rules []Rule
}

// New creates a Highlighter over rules, applied in the given order.
func New(rules []Rule) *Highlighter {
	return &Highlighter{rules: rules}
}

// Default returns a Highlighter with the built-in rules.
func Default() *Highlighter {
	return New(DefaultRules())
}

// Rules returns the highlighter's rules in application order.
func (h *Highlighter) Rules() []Rule {
	return h.rules
}

// Tokenize classifies text. The returned spans are sorted by Start and never
// overlap; text between spans is plain. A rule that errors (for example by
// hitting its match timeout) stops contributing but earlier results stand.
func (h *Highlighter) Tokenize(text string) []Span {
	if text == "" {
		return nil
	}

	n := len([]rune(text))
	claimed := make([]bool, n)
	var spans []Span

	for _, rule := range h.rules {
		m, err := rule.Pattern.FindStringMatch(text)
		for m != nil && err == nil {
			if g := m.GroupByNumber(rule.Group); g != nil && g.Length > 0 {
				spans = claim(spans, claimed, g.Index, g.Index+g.Length, rule.Class)
			}
			m, err = rule.Pattern.FindNextMatch(m)
		}
		if err != nil {
			log.ErrorErr(log.CatHighlight, "highlight rule aborted", err, "rule", rule.Name)
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// claim appends spans for every unclaimed run inside [start, end) and marks
// those runes claimed.
func claim(spans []Span, claimed []bool, start, end int, class Class) []Span {
	i := start
	for i < end {
		for i < end && claimed[i] {
			i++
		}
		if i == end {
			break
		}
		runStart := i
		for i < end && !claimed[i] {
			claimed[i] = true
			i++
		}
		spans = append(spans, Span{Start: runStart, End: i, Class: class})
	}
	return spans
}

// SplitLines projects spans over text onto its lines. The result has one
// entry per line (split on '\n'); offsets are relative to the line start.
// Spans crossing a line break, such as block comments, are cut at each break.
func SplitLines(text string, spans []Span) [][]Span {
	runes := []rune(text)

	// Line start offsets.
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	lines := make([][]Span, len(starts))

	line := 0
	for _, s := range spans {
		for line+1 < len(starts) && starts[line+1] <= s.Start {
			line++
		}
		for l := line; l < len(starts) && starts[l] < s.End; l++ {
			lineStart := starts[l]
			lineEnd := len(runes)
			if l+1 < len(starts) {
				lineEnd = starts[l+1] - 1 // exclude the newline
			}
			from := max(s.Start, lineStart)
			to := min(s.End, lineEnd)
			if from < to {
				lines[l] = append(lines[l], Span{Start: from - lineStart, End: to - lineStart, Class: s.Class})
			}
		}
	}
	return lines
}

// Segment is a run of text with one classification.
type Segment struct {
	Text  string
	Class Class
}

// Segments cuts text into consecutive segments following spans. Gaps become
// ClassPlain segments. Spans outside text are clipped.
func Segments(text string, spans []Span) []Segment {
	runes := []rune(text)
	var segs []Segment
	pos := 0
	for _, s := range spans {
		start := min(max(s.Start, pos), len(runes))
		end := min(max(s.End, start), len(runes))
		if start > pos {
			segs = append(segs, Segment{Text: string(runes[pos:start]), Class: ClassPlain})
		}
		if end > start {
			segs = append(segs, Segment{Text: string(runes[start:end]), Class: s.Class})
		}
		pos = end
	}
	if pos < len(runes) {
		segs = append(segs, Segment{Text: string(runes[pos:]), Class: ClassPlain})
	}
	return segs
}
