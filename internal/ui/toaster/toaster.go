// Package toaster shows short-lived status messages at the bottom of the
// screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/codehint/internal/ui/overlay"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

// Kind selects the toast icon and border color.
type Kind int

const (
	Success Kind = iota
	Error
	Info
	Warning
)

var kinds = map[Kind]struct {
	icon  string
	token styles.ColorToken
}{
	Success: {"✓", styles.TokenStatusSuccess},
	Error:   {"✗", styles.TokenStatusError},
	Info:    {"•", styles.TokenBorderHighlight},
	Warning: {"!", styles.TokenStatusWarning},
}

// DismissMsg hides the toast with the matching ID. Toasts shown after it was
// scheduled have a newer ID and stay up.
type DismissMsg struct {
	ID int
}

type toast struct {
	id   int
	text string
	kind Kind
}

// Model holds at most one visible toast. A new toast replaces the old one.
type Model struct {
	theme   *styles.Theme
	current toast
	nextID  int
	width   int
	height  int
}

// New creates an empty toaster.
func New(theme *styles.Theme) Model {
	return Model{theme: theme}
}

// Show replaces the current toast and returns a command that dismisses it
// after d. A non-positive d keeps it until Hide or the next Show.
func (m Model) Show(text string, kind Kind, d time.Duration) (Model, tea.Cmd) {
	m.nextID++
	m.current = toast{id: m.nextID, text: text, kind: kind}
	if d <= 0 {
		return m, nil
	}
	id := m.nextID
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{ID: id} })
}

// Update handles DismissMsg. Every other message is ignored.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.ID == m.current.id {
		m.current = toast{}
	}
	return m
}

// Hide removes the current toast.
func (m Model) Hide() Model {
	m.current = toast{}
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.current.text != ""
}

// Message returns the current toast text.
func (m Model) Message() string {
	return m.current.text
}

// ID identifies the current toast; 0 when none is showing.
func (m Model) ID() int {
	if !m.Visible() {
		return 0
	}
	return m.current.id
}

// SetSize updates the viewport used for placement.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the toast box, or "" when hidden.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	k, ok := kinds[m.current.kind]
	if !ok {
		k = kinds[Info]
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Color(k.token))).
		Render(k.icon + " " + m.current.text)
}

// Overlay draws the toast centered one row above the bottom of bg.
func (m Model) Overlay(bg string) string {
	if !m.Visible() {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}
