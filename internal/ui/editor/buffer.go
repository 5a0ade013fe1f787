package editor

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// buffer is the editor text as a flat rune slice plus a caret offset, the
// same model as a textarea's value and selectionStart. Offsets are rune
// indices; line and column are derived on demand.
type buffer struct {
	runes []rune
	caret int

	// goalCol is the display column vertical motion tries to keep,
	// or -1 when the next vertical move should take it from the caret.
	goalCol int
}

func newBuffer(text string) buffer {
	b := buffer{goalCol: -1}
	b.set(text)
	return b
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// set replaces the text and moves the caret to the end.
func (b *buffer) set(text string) {
	b.runes = []rune(normalizeNewlines(text))
	b.caret = len(b.runes)
	b.goalCol = -1
}

func (b *buffer) String() string {
	return string(b.runes)
}

func (b *buffer) Len() int {
	return len(b.runes)
}

// setCaret moves the caret, clamped to the text.
func (b *buffer) setCaret(offset int) {
	b.caret = max(0, min(offset, len(b.runes)))
	b.goalCol = -1
}

// insert places s at the caret and advances past it.
func (b *buffer) insert(s string) {
	ins := []rune(normalizeNewlines(s))
	if len(ins) == 0 {
		return
	}
	out := make([]rune, 0, len(b.runes)+len(ins))
	out = append(out, b.runes[:b.caret]...)
	out = append(out, ins...)
	out = append(out, b.runes[b.caret:]...)
	b.runes = out
	b.caret += len(ins)
	b.goalCol = -1
}

// insertSpaces inserts n spaces at the caret.
func (b *buffer) insertSpaces(n int) {
	b.insert(strings.Repeat(" ", n))
}

// backspace removes the grapheme cluster before the caret.
func (b *buffer) backspace() bool {
	start := b.prevBoundary(b.caret)
	if start == b.caret {
		return false
	}
	b.runes = append(b.runes[:start], b.runes[b.caret:]...)
	b.caret = start
	b.goalCol = -1
	return true
}

// deleteForward removes the grapheme cluster after the caret.
func (b *buffer) deleteForward() bool {
	end := b.nextBoundary(b.caret)
	if end == b.caret {
		return false
	}
	b.runes = append(b.runes[:b.caret], b.runes[end:]...)
	b.goalCol = -1
	return true
}

func (b *buffer) left() {
	b.caret = b.prevBoundary(b.caret)
	b.goalCol = -1
}

func (b *buffer) right() {
	b.caret = b.nextBoundary(b.caret)
	b.goalCol = -1
}

// prevBoundary returns the start of the grapheme cluster ending at pos.
// A newline is its own cluster.
func (b *buffer) prevBoundary(pos int) int {
	if pos <= 0 {
		return 0
	}
	ls := b.lineStart(pos)
	if ls == pos {
		return pos - 1
	}
	last := 0
	state := -1
	rest := string(b.runes[ls:pos])
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		last = len([]rune(cluster))
	}
	return pos - last
}

// nextBoundary returns the end of the grapheme cluster starting at pos.
func (b *buffer) nextBoundary(pos int) int {
	if pos >= len(b.runes) {
		return len(b.runes)
	}
	le := b.lineEnd(pos)
	if le == pos {
		return pos + 1
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(b.runes[pos:le]), -1)
	return pos + len([]rune(cluster))
}

// lineStart returns the offset of the first rune of the line containing pos.
func (b *buffer) lineStart(pos int) int {
	for pos > 0 && b.runes[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline ending the line containing pos,
// or the text length on the last line.
func (b *buffer) lineEnd(pos int) int {
	for pos < len(b.runes) && b.runes[pos] != '\n' {
		pos++
	}
	return pos
}

// lines splits the text on newlines. There is always at least one line.
func (b *buffer) lines() [][]rune {
	out := make([][]rune, 0, 1)
	start := 0
	for i, r := range b.runes {
		if r == '\n' {
			out = append(out, b.runes[start:i])
			start = i + 1
		}
	}
	return append(out, b.runes[start:])
}

// lineCount returns the number of lines.
func (b *buffer) lineCount() int {
	n := 1
	for _, r := range b.runes {
		if r == '\n' {
			n++
		}
	}
	return n
}

// position returns the caret's zero-based row and rune column.
func (b *buffer) position() (row, col int) {
	for i := 0; i < b.caret; i++ {
		if b.runes[i] == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}

// rowStart returns the offset of the first rune on row, clamped to the
// last line.
func (b *buffer) rowStart(row int) int {
	if row <= 0 {
		return 0
	}
	seen := 0
	for i, r := range b.runes {
		if r == '\n' {
			seen++
			if seen == row {
				return i + 1
			}
		}
	}
	return b.lineStart(len(b.runes))
}

// moveVertical moves the caret by dy rows, keeping the display column.
func (b *buffer) moveVertical(dy, tabWidth int) {
	row, _ := b.position()
	if b.goalCol < 0 {
		ls := b.lineStart(b.caret)
		b.goalCol = displayWidth(b.runes[ls:b.caret], tabWidth)
	}
	target := max(0, min(row+dy, b.lineCount()-1))
	if target == row {
		if dy < 0 {
			b.caret = b.lineStart(b.caret)
		} else if dy > 0 {
			b.caret = b.lineEnd(b.caret)
		}
		return
	}
	goal := b.goalCol
	b.moveToDisplayCol(target, goal, tabWidth)
	b.goalCol = goal
}

// moveToDisplayCol places the caret on row at the grapheme boundary closest
// to (and not past) display column x.
func (b *buffer) moveToDisplayCol(row, x, tabWidth int) {
	ls := b.rowStart(row)
	le := b.lineEnd(ls)
	offset := ls
	for _, c := range layoutLine(b.runes[ls:le], tabWidth) {
		if c.x+c.width > x {
			break
		}
		offset = ls + c.end
	}
	b.caret = offset
	b.goalCol = -1
}

func (b *buffer) home() {
	b.caret = b.lineStart(b.caret)
	b.goalCol = -1
}

func (b *buffer) end() {
	b.caret = b.lineEnd(b.caret)
	b.goalCol = -1
}

// wordLeft moves to the start of the previous word.
// Skips non-word characters backward first, then word characters.
func (b *buffer) wordLeft() {
	pos := b.caret
	for pos > 0 && !isWordChar(b.runes[pos-1]) {
		pos--
	}
	for pos > 0 && isWordChar(b.runes[pos-1]) {
		pos--
	}
	b.caret = pos
	b.goalCol = -1
}

// wordRight moves past the end of the next word.
// Skips non-word characters first, then word characters.
func (b *buffer) wordRight() {
	pos := b.caret
	n := len(b.runes)
	for pos < n && !isWordChar(b.runes[pos]) {
		pos++
	}
	for pos < n && isWordChar(b.runes[pos]) {
		pos++
	}
	b.caret = pos
	b.goalCol = -1
}

// isWordChar returns true for letters, digits and underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
