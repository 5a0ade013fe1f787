// Package hint resolves what the caret is pointing at in a line of code and
// turns a matching keyword entry into a signature hint.
//
// Everything in this package is a pure function over strings and rune
// offsets. Offsets are character (rune) indices, never byte indices, so a
// caret position reported by the editor can be passed through unchanged.
package hint

import "strings"

// CursorContext describes the identifier near the caret and, when the caret
// sits inside a call's parentheses, which argument slot it occupies.
type CursorContext struct {
	// Identifier is the identifier under the caret, or the callee of the
	// enclosing call. Empty means no identifier was found.
	Identifier string

	// InCallArguments is true when an unmatched "(" precedes the caret.
	InCallArguments bool

	// ArgumentIndex is the 0-based argument slot within the enclosing call.
	// Only meaningful when InCallArguments is true; always >= 0.
	ArgumentIndex int
}

// HasIdentifier reports whether an identifier was resolved.
func (c CursorContext) HasIdentifier() bool {
	return c.Identifier != ""
}

// ResolveContext determines the cursor context for a caret position within a
// single line of text. Out-of-range carets are clamped to the line bounds.
//
// The resolver does not track strings or comments: a "(" or "," inside a
// string literal counts as real syntax.
func ResolveContext(lineText string, caret int) CursorContext {
	line := []rune(lineText)
	caret = clamp(caret, 0, len(line))
	before := line[:caret]

	open := enclosingParen(before)
	if open >= 0 {
		return CursorContext{
			Identifier:      calleeBefore(before, open),
			InCallArguments: true,
			ArgumentIndex:   ArgumentIndex(string(before[open+1:])),
		}
	}

	return CursorContext{Identifier: wordAt(line, caret)}
}

// enclosingParen scans backward from the end of text and returns the index of
// the nearest unmatched "(", or -1 when every "(" is closed.
func enclosingParen(text []rune) int {
	depth := 0
	for i := len(text) - 1; i >= 0; i-- {
		switch text[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// calleeBefore returns the identifier immediately preceding the "(" at open,
// skipping any whitespace between the name and the parenthesis.
func calleeBefore(text []rune, open int) string {
	j := open - 1
	for j >= 0 && isSpace(text[j]) {
		j--
	}
	end := j + 1
	for j >= 0 && IsIdentifierRune(text[j]) {
		j--
	}
	return string(text[j+1 : end])
}

// ArgumentIndex counts the top-level commas in paramText, the text between an
// opening "(" and the caret. Any of "([{" opens a nesting level and any of
// ")]}" closes one, so commas inside nested calls, arrays and object literals
// are not counted.
func ArgumentIndex(paramText string) int {
	depth := 0
	index := 0
	for _, r := range paramText {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				index++
			}
		}
	}
	return index
}

// wordAt expands left and right from pos over identifier characters.
func wordAt(line []rune, pos int) string {
	start, end := pos, pos
	for start > 0 && IsIdentifierRune(line[start-1]) {
		start--
	}
	for end < len(line) && IsIdentifierRune(line[end]) {
		end++
	}
	if start == end {
		return ""
	}
	return string(line[start:end])
}

// IsIdentifierRune reports whether r belongs to the identifier class used for
// word and callee detection: ASCII letters, digits, '_', '.' and '$'.
// Including '.' and '$' lets member chains like "console.log" and names like
// "$el" resolve as one identifier.
func IsIdentifierRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_' || r == '.' || r == '$'
}

func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\r\n\f\v", r)
}

// LineAt returns the part of the line containing offset that lies before the
// caret, and the caret column within that line. text is the full buffer and
// offset a rune offset into it; out-of-range offsets are clamped.
func LineAt(text string, offset int) (line string, column int) {
	runes := []rune(text)
	offset = clamp(offset, 0, len(runes))
	before := runes[:offset]

	start := offset
	for start > 0 && before[start-1] != '\n' {
		start--
	}
	current := before[start:]
	return string(current), len(current)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
