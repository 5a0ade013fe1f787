package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/codehint/internal/log"
)

const wheelStep = 3

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if z := zone.Get(m.zoneID(zoneText)); z == nil || !z.InBounds(msg) {
			return
		}
		if msg.Button == tea.MouseButtonWheelUp {
			m.scrollBy(-wheelStep)
		} else {
			m.scrollBy(wheelStep)
		}

	case m.dragging && msg.Action == tea.MouseActionMotion:
		m.dragTo(msg.Y)

	case m.dragging && msg.Action == tea.MouseActionRelease:
		m.endDrag()

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if z := zone.Get(m.zoneID(zoneResizer)); z != nil && z.InBounds(msg) {
			m.beginDrag(msg.Y)
			return
		}
		if z := zone.Get(m.zoneID(zoneText)); z != nil && z.InBounds(msg) {
			x, y := z.Pos(msg)
			m.clickText(x, y)
		}
	}
}

// clickText moves the caret to the cell under (x, y), relative to the top
// left of the text area, and focuses the editor.
func (m *Model) clickText(x, y int) {
	row := m.scrollRow + max(0, y)
	if row >= m.buf.lineCount() {
		m.buf.setCaret(m.buf.Len())
	} else {
		col := max(0, x-m.gutterWidth()) + m.scrollCol
		m.buf.moveToDisplayCol(row, col, m.tabWidth)
	}
	m.focused = true
	m.caretMoved()
}

// beginDrag starts resizing the hint panel from screen row y.
func (m *Model) beginDrag(y int) {
	m.dragging = true
	m.dragStartY = y
	m.dragStartHeight = m.hintHeight
	log.Debug(log.CatUI, "hint resize started", "editor", m.id, "height", m.hintHeight)
}

// dragTo resizes the hint panel so the resizer follows screen row y.
// Moving up grows the panel.
func (m *Model) dragTo(y int) {
	m.SetHintHeight(m.dragStartHeight + m.dragStartY - y)
}

func (m *Model) endDrag() {
	m.dragging = false
	log.Debug(log.CatUI, "hint resize finished", "editor", m.id, "height", m.hintHeight)
}

// Dragging reports whether the hint panel is being resized.
func (m Model) Dragging() bool {
	return m.dragging
}
