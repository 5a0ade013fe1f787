package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rounded border characters.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// frame draws a rounded box whose top edge can carry a label:
//
//	╭─ Label ─────╮
//	│content      │
//	╰─────────────╯
type frame struct {
	border lipgloss.Style
	inner  int // columns between the side borders
}

func (t *Theme) frame(width int, focused bool) frame {
	color := t.BorderDefault
	if focused {
		color = t.BorderHighlight
	}
	return frame{
		border: lipgloss.NewStyle().Foreground(color),
		inner:  max(width-2, 1),
	}
}

// labelRoom is the widest label that fits: "─ " before and " ─" after.
func (f frame) labelRoom() int {
	return f.inner - 4
}

// top renders the top edge. label is already styled and labelWidth is its
// display width; an empty label gives a plain edge.
func (f frame) top(label string, labelWidth int) string {
	if label == "" || f.labelRoom() < 0 {
		return f.border.Render(borderTopLeft + strings.Repeat(borderHorizontal, f.inner) + borderTopRight)
	}
	dashes := max(f.inner-3-labelWidth, 0)
	return f.border.Render(borderTopLeft+borderHorizontal+" ") +
		label +
		f.border.Render(" "+strings.Repeat(borderHorizontal, dashes)+borderTopRight)
}

// side wraps one content row in side borders, padding or clipping it to
// the inner width.
func (f frame) side(row string) string {
	w := lipgloss.Width(row)
	switch {
	case w < f.inner:
		row += strings.Repeat(" ", f.inner-w)
	case w > f.inner:
		row = ansi.Truncate(row, f.inner, "")
	}
	return f.border.Render(borderVertical) + row + f.border.Render(borderVertical)
}

func (f frame) bottom() string {
	return f.border.Render(borderBottomLeft + strings.Repeat(borderHorizontal, f.inner) + borderBottomRight)
}

func (f frame) join(top string, rows []string) string {
	var b strings.Builder
	b.WriteString(top)
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(f.side(row))
	}
	b.WriteString("\n")
	b.WriteString(f.bottom())
	return b.String()
}

// RenderWithTitleBorder renders content in a box exactly width columns wide
// and height rows tall, with title embedded in the top border and styled
// with titleStyle. Long titles are truncated with an ellipsis; content is
// wrapped and clipped to fit. The border uses BorderHighlight when focused.
func (t *Theme) RenderWithTitleBorder(content, title string, width, height int, focused bool, titleStyle lipgloss.Style) string {
	f := t.frame(width, focused)

	var label string
	var labelWidth int
	if title != "" && f.labelRoom() >= 0 {
		title = TruncateString(title, f.labelRoom())
		label = titleStyle.Render(title)
		labelWidth = lipgloss.Width(title)
	}

	rowCount := max(height-2, 1)
	body := lipgloss.NewStyle().Width(f.inner).Height(rowCount).Render(content)
	rows := strings.Split(body, "\n")
	if len(rows) > rowCount {
		rows = rows[:rowCount]
	}
	for len(rows) < rowCount {
		rows = append(rows, "")
	}
	return f.join(f.top(label, labelWidth), rows)
}

// RenderFormSection renders content rows in a box labelled "title (hint)".
// The hint is dropped when the pair does not fit. Border and title use
// BorderHighlight when focused and BorderDefault otherwise.
func (t *Theme) RenderFormSection(content []string, title, hint string, width int, focused bool) string {
	f := t.frame(width, focused)

	var label string
	var labelWidth int
	if title != "" {
		title = TruncateString(title, max(f.labelRoom(), 0))
		titleStyle := f.border.Bold(true)
		label = titleStyle.Render(title)
		labelWidth = lipgloss.Width(title)

		hinted := " (" + hint + ")"
		if hint != "" && labelWidth+lipgloss.Width(hinted) <= f.labelRoom() {
			label += " " + t.Muted.Render("("+hint+")")
			labelWidth += lipgloss.Width(hinted)
		}
	}
	return f.join(f.top(label, labelWidth), content)
}
