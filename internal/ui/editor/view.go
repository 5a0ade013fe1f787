package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/codehint/internal/highlight"
)

// Zone name suffixes, joined to the editor id.
const (
	zoneText    = "text"
	zoneResizer = "resizer"
	zoneHint    = "hint"
)

func (m Model) zoneID(name string) string {
	return m.id + ":" + name
}

const resizerGrip = "━━━━━━"

// View renders the text area, resizer and hint panel.
func (m Model) View() string {
	return strings.Join([]string{
		zone.Mark(m.zoneID(zoneText), m.renderText()),
		zone.Mark(m.zoneID(zoneResizer), m.renderResizer()),
		zone.Mark(m.zoneID(zoneHint), m.renderHintPanel()),
	}, "\n")
}

// textRows is the height of the text area.
func (m Model) textRows() int {
	return max(1, m.height-m.hintHeight-1)
}

// gutterWidth is the width of the line-number column including padding.
func (m Model) gutterWidth() int {
	if !m.showLineNumbers {
		return 0
	}
	return m.gutterDigits() + 2
}

func (m Model) gutterDigits() int {
	return max(2, len(strconv.Itoa(m.buf.lineCount())))
}

// textWidth is the number of columns available for text.
func (m Model) textWidth() int {
	return max(1, m.width-m.gutterWidth())
}

func (m Model) hintInnerWidth() int {
	return max(1, m.width-2)
}

// ensureCaretVisible adjusts the scroll offsets so the caret cell is on
// screen. The gutter and the text share the vertical offset.
func (m *Model) ensureCaretVisible() {
	row, col := m.buf.position()
	rows := m.textRows()
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}

	ls := m.buf.lineStart(m.buf.caret)
	x := displayWidth(m.buf.runes[ls:ls+col], m.tabWidth)
	cw := 1
	if next := m.buf.nextBoundary(m.buf.caret); next > m.buf.caret && m.buf.runes[m.buf.caret] != '\n' {
		cw = max(1, displayWidth(m.buf.runes[m.buf.caret:next], m.tabWidth))
	}
	w := m.textWidth()
	if x < m.scrollCol {
		m.scrollCol = x
	}
	if x+cw > m.scrollCol+w {
		m.scrollCol = max(0, x+cw-w)
	}
}

// scrollBy moves the view without moving the caret.
func (m *Model) scrollBy(dy int) {
	maxRow := max(0, m.buf.lineCount()-m.textRows())
	m.scrollRow = max(0, min(m.scrollRow+dy, maxRow))
}

func (m Model) renderText() string {
	rows := m.textRows()
	out := make([]string, 0, rows)

	if m.buf.Len() == 0 {
		out = append(out, m.renderGutter(0, true)+m.renderPlaceholder())
		for len(out) < rows {
			out = append(out, m.renderGutter(-1, false)+strings.Repeat(" ", m.textWidth()))
		}
		return strings.Join(out, "\n")
	}

	lines := m.buf.lines()
	caretRow, caretCol := m.buf.position()
	for i := range rows {
		row := m.scrollRow + i
		if row >= len(lines) {
			out = append(out, m.renderGutter(-1, false)+strings.Repeat(" ", m.textWidth()))
			continue
		}
		caret := -1
		if m.focused && row == caretRow {
			caret = caretCol
		}
		var spans []highlight.Span
		if row < len(m.lineSpans) {
			spans = m.lineSpans[row]
		}
		out = append(out, m.renderGutter(row, row == caretRow)+m.renderLine(lines[row], spans, caret))
	}
	return strings.Join(out, "\n")
}

// renderGutter renders the line number for row, or a blank gutter when row
// is negative.
func (m Model) renderGutter(row int, current bool) string {
	if !m.showLineNumbers {
		return ""
	}
	if row < 0 {
		return strings.Repeat(" ", m.gutterWidth())
	}
	num := fmt.Sprintf(" %*d ", m.gutterDigits(), row+1)
	if current {
		return m.theme.GutterActive.Render(num)
	}
	return m.theme.Gutter.Render(num)
}

func (m Model) renderPlaceholder() string {
	w := m.textWidth()
	if m.placeholder == "" {
		if m.focused {
			return m.theme.Cursor.Render(" ") + strings.Repeat(" ", w-1)
		}
		return strings.Repeat(" ", w)
	}

	text := ansi.Truncate(m.placeholder, w, "")
	var b strings.Builder
	if m.focused {
		first, rest := splitFirstCell(text)
		b.WriteString(m.theme.Cursor.Render(first))
		b.WriteString(m.theme.Placeholder.Render(rest))
	} else {
		b.WriteString(m.theme.Placeholder.Render(text))
	}
	if pad := w - ansi.StringWidth(text); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

func splitFirstCell(s string) (string, string) {
	cells := layoutLine([]rune(s), 1)
	if len(cells) == 0 {
		return " ", ""
	}
	r := []rune(s)
	return string(r[:cells[0].end]), string(r[cells[0].end:])
}

// renderLine renders the visible slice of one line with highlighting and,
// when caret is not negative, the caret at that rune column. The result is
// exactly textWidth columns wide.
func (m Model) renderLine(line []rune, spans []highlight.Span, caret int) string {
	width := m.textWidth()
	left := m.scrollCol
	right := left + width

	var b strings.Builder
	used := 0

	var run strings.Builder
	runClass := highlight.ClassPlain
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(m.classStyle(runClass).Render(run.String()))
		run.Reset()
	}

	si := 0
	for _, c := range layoutLine(line, m.tabWidth) {
		if c.x+c.width <= left {
			continue
		}
		if c.x+c.width > right {
			break
		}

		for si < len(spans) && spans[si].End <= c.start {
			si++
		}
		class := highlight.ClassPlain
		if si < len(spans) && spans[si].Start <= c.start {
			class = spans[si].Class
		}

		text := c.text
		visible := c.width
		if c.x < left {
			// wide cluster cut by the left edge
			visible = c.x + c.width - left
			text = strings.Repeat(" ", visible)
		}

		if c.start == caret {
			flush()
			b.WriteString(m.classStyle(class).Reverse(true).Render(text))
		} else {
			if class != runClass {
				flush()
				runClass = class
			}
			run.WriteString(text)
		}
		used += visible
	}
	flush()

	if caret == len(line) && used < width {
		b.WriteString(m.theme.Cursor.Render(" "))
		used++
	}
	if used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}

func (m Model) classStyle(c highlight.Class) lipgloss.Style {
	if s, ok := m.theme.Syntax.Style(c); ok {
		return s
	}
	return m.theme.Text
}

func (m Model) renderResizer() string {
	style := m.theme.Resizer
	if m.dragging {
		style = m.theme.ResizerActive
	}
	w := m.width
	if w <= len([]rune(resizerGrip))+2 {
		return style.Render(strings.Repeat("─", w))
	}
	side := (w - len([]rune(resizerGrip))) / 2
	rest := w - side - len([]rune(resizerGrip))
	return style.Render(strings.Repeat("─", side) + resizerGrip + strings.Repeat("─", rest))
}

// renderHintPanel renders the bordered hint panel. An inactive panel shows
// the last hint dimmed, like the lowered opacity of an inactive hint box.
func (m Model) renderHintPanel() string {
	title := "Hints"
	var lines []string
	if m.hasHint {
		title = m.hint.Entry.Name
		lines = m.hintLines()
		if !m.hintActive {
			for i, l := range lines {
				lines[i] = m.theme.HintDimmed.Render(ansi.Strip(l))
			}
		}
	}
	return m.theme.RenderWithTitleBorder(strings.Join(lines, "\n"), title, m.width, m.hintHeight, m.hintActive, m.theme.HintTitle)
}

func (m Model) hintLines() []string {
	t := m.theme
	h := m.hint
	w := m.hintInnerWidth()

	var lines []string
	sig := h.Signature.Render(
		func(s string) string { return t.HintActiveParam.Render(s) },
		func(s string) string { return t.HintSignature.Render(s) },
	)
	lines = append(lines, ansi.Truncate(sig, w, "…"))

	lines = append(lines, m.descriptionLines(w)...)

	lines = append(lines, "")
	if len(h.Entry.Parameters) == 0 {
		lines = append(lines, t.HintParam.Render("No parameters"))
		return lines
	}
	active := h.ActiveParameter()
	for i, p := range h.Entry.Parameters {
		if i == active {
			lines = append(lines, ansi.Truncate(t.HintActiveParam.Render("▸ "+p), w, "…"))
			continue
		}
		lines = append(lines, ansi.Truncate(t.HintParam.Render("  "+p), w, "…"))
	}
	return lines
}

func (m Model) descriptionLines(w int) []string {
	desc := m.hint.Description()
	if m.md != nil && m.hint.Entry.Description != "" {
		out, err := m.md.Render(desc)
		if err == nil {
			lines := strings.Split(out, "\n")
			for i, l := range lines {
				lines[i] = ansi.Truncate(l, w, "")
			}
			return lines
		}
	}
	wrapped := wordwrap.String(desc, w)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = m.theme.Description.Render(l)
	}
	return lines
}
