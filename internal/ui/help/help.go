// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/codehint/internal/keys"
	"github.com/zjrosen/codehint/internal/ui/overlay"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

// Model holds the help view state.
type Model struct {
	theme      *styles.Theme
	editorKeys keys.EditorKeyMap
	appKeys    keys.AppKeyMap
	width      int
	height     int
}

// New creates a help view listing the given bindings.
func New(theme *styles.Theme, editorKeys keys.EditorKeyMap, appKeys keys.AppKeyMap) Model {
	return Model{
		theme:      theme,
		editorKeys: editorKeys,
		appKeys:    appKeys,
	}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)
	ek := m.editorKeys
	ak := m.appKeys

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(m.section("Navigation", ek.Left, ek.Right, ek.Up, ek.Down, ek.WordLeft, ek.WordRight)),
		m.section("Jump", ek.LineStart, ek.LineEnd, ek.PageUp, ek.PageDown, ek.DocStart, ek.DocEnd),
	)

	general := m.section("General", ak.Save, ak.Cancel, ak.Quit, ak.Help) +
		m.renderKeyDesc("drag ━━", "resize hints")
	bottom := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(m.section("Editing", ek.Newline, ek.Backspace, ek.Delete, ek.Tab, ek.GrowHint, ek.ShrinkHint)),
		general,
	)

	columns := lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	boxWidth := lipgloss.Width(columns) + 4 // Add horizontal padding (2 each side)

	footer := m.theme.Muted.MarginTop(1).Render("Press " + ak.Help.Help().Key + " or Esc to close")
	body := lipgloss.NewStyle().Padding(0, 2).Render(columns + "\n" + footer)

	divider := lipgloss.NewStyle().
		Foreground(m.theme.OverlayBorder).
		Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(m.theme.OverlayTitle.PaddingLeft(2).Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.OverlayBorder).
		Width(boxWidth).
		Render(content.String())
}

func (m Model) section(title string, bindings ...key.Binding) string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.MarginTop(1).Render(title))
	b.WriteString("\n")
	for _, binding := range bindings {
		help := binding.Help()
		b.WriteString(m.renderKeyDesc(help.Key, help.Desc))
	}
	return b.String()
}

func (m Model) renderKeyDesc(k, desc string) string {
	return m.theme.Text.Width(11).Render(k) + m.theme.Description.Render(desc) + "\n"
}
