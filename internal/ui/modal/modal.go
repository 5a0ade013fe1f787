// Package modal shows a code editor in a centered dialog with Save and
// Cancel buttons.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/codehint/internal/keys"
	"github.com/zjrosen/codehint/internal/log"
	"github.com/zjrosen/codehint/internal/ui/editor"
	"github.com/zjrosen/codehint/internal/ui/overlay"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

// DefaultTitle is used when Config.Title is empty.
const DefaultTitle = "Code Editor"

const (
	minDialogWidth = 40
	maxDialogWidth = 120

	// chromeRows is every dialog row that is not editor: box border (2),
	// title, divider, padding (2), section border (2), gap and buttons.
	chromeRows = 10
	// chromeCols is box border (2) and padding (2) plus the section border (2).
	chromeCols = 6
)

// Config controls modal appearance and the hosted editor.
type Config struct {
	Title string        // Dialog title (default "Code Editor")
	Value string        // Initial editor text
	Theme *styles.Theme // Theme for the dialog and editor (default preset when nil)

	// EditorOptions are applied to the hosted editor after Value and Theme.
	EditorOptions []editor.Option
}

// SubmitMsg is sent once when the user saves.
type SubmitMsg struct {
	Value string
}

// CancelMsg is sent once when the user cancels with esc, the Cancel button
// or a click outside the dialog.
type CancelMsg struct{}

// Field identifies which element is focused.
type Field int

const (
	FieldEditor Field = iota
	FieldSave
	FieldCancel
)

// Model is the modal component state.
type Model struct {
	id     string
	config Config
	theme  *styles.Theme
	keys   keys.AppKeyMap
	editor editor.Model

	focusedField Field
	done         bool
	width        int
	height       int
}

// New creates a modal with the editor focused.
func New(cfg Config) Model {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	theme := cfg.Theme
	if theme == nil {
		theme = styles.MustTheme(styles.DefaultPresetName)
	}

	opts := []editor.Option{
		editor.WithTheme(theme),
		editor.WithValue(cfg.Value),
		editor.WithAutoFocus(true),
	}
	opts = append(opts, cfg.EditorOptions...)

	m := Model{
		id:           uuid.NewString(),
		config:       cfg,
		theme:        theme,
		keys:         keys.DefaultAppKeyMap(),
		editor:       editor.New(opts...),
		focusedField: FieldEditor,
	}
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the modal. After a SubmitMsg or CancelMsg has
// been produced every further message is ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			return m.submit()
		case key.Matches(msg, m.keys.Cancel):
			return m.cancel()
		}
		if m.focusedField == FieldEditor {
			return m.updateEditorKeys(msg)
		}
		return m.updateButtonKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) updateEditorKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+n":
		m.setFocus(FieldSave)
		return m, nil
	case "ctrl+p", "shift+tab":
		m.setFocus(FieldCancel)
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateButtonKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "ctrl+n":
		m.setFocus((m.focusedField + 1) % 3)
	case "shift+tab", "up", "ctrl+p":
		m.setFocus((m.focusedField + 2) % 3)
	case "left", "h":
		m.setFocus(FieldSave)
	case "right", "l":
		m.setFocus(FieldCancel)
	case "enter", " ":
		if m.focusedField == FieldSave {
			return m.submit()
		}
		return m.cancel()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if z := zone.Get(m.zoneID(zoneSave)); z != nil && z.InBounds(msg) {
			return m.submit()
		}
		if z := zone.Get(m.zoneID(zoneCancel)); z != nil && z.InBounds(msg) {
			return m.cancel()
		}
		if !m.Bounds().Contains(msg.X, msg.Y) && !m.editor.Dragging() {
			return m.cancel()
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Focused() && m.focusedField != FieldEditor {
		m.focusedField = FieldEditor
	}
	return m, cmd
}

func (m *Model) setFocus(f Field) {
	m.focusedField = f
	if f == FieldEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	m.done = true
	value := m.editor.Value()
	log.Debug(log.CatUI, "modal submitted", "modal", m.id, "runes", len([]rune(value)))
	return m, func() tea.Msg { return SubmitMsg{Value: value} }
}

func (m Model) cancel() (Model, tea.Cmd) {
	m.done = true
	log.Debug(log.CatUI, "modal cancelled", "modal", m.id)
	return m, func() tea.Msg { return CancelMsg{} }
}

// Zone name suffixes, joined to the modal id.
const (
	zoneSave   = "save"
	zoneCancel = "cancel"
)

func (m Model) zoneID(name string) string {
	return m.id + ":" + name
}

// dialogWidth is the full width of the dialog including its border.
func (m Model) dialogWidth() int {
	w := m.width - 8
	if m.width == 0 {
		w = 80
	}
	return max(minDialogWidth, min(maxDialogWidth, w))
}

// layout sizes the hosted editor to fill the dialog.
func (m *Model) layout() {
	h := m.height - 4 - chromeRows
	if m.height == 0 {
		h = 16
	}
	m.editor.SetSize(m.dialogWidth()-chromeCols, max(editor.MinHintHeight+4, h))
}

// View renders the dialog without the backdrop.
func (m Model) View() string {
	boxWidth := m.dialogWidth() - 2
	contentWidth := boxWidth - 2

	titleStyle := m.theme.OverlayTitle.PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(m.theme.OverlayBorder).
		Render(strings.Repeat("─", boxWidth))

	section := m.theme.RenderFormSection(
		strings.Split(m.editor.View(), "\n"),
		"Code", "ctrl+s save, esc cancel",
		contentWidth, m.focusedField == FieldEditor,
	)

	var content strings.Builder
	content.WriteString(section)
	content.WriteString("\n\n")
	content.WriteString(m.renderButtons())

	var result strings.Builder
	result.WriteString(titleStyle.Render(m.config.Title))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(content.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.OverlayBorder).
		Width(boxWidth).
		Render(result.String())
}

func (m Model) renderButtons() string {
	saveStyle := m.theme.PrimaryButton
	if m.focusedField == FieldSave {
		saveStyle = m.theme.PrimaryButtonFocused
	}
	cancelStyle := m.theme.SecondaryButton
	if m.focusedField == FieldCancel {
		cancelStyle = m.theme.SecondaryButtonFocused
	}
	return zone.Mark(m.zoneID(zoneSave), saveStyle.Render("Save")) + "  " +
		zone.Mark(m.zoneID(zoneCancel), cancelStyle.Render("Cancel"))
}

func (m Model) overlayConfig() overlay.Config {
	dim := m.theme.HintDimmed
	return overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
		Backdrop: &dim,
	}
}

// Overlay renders the dialog centered on a dimmed copy of bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(m.overlayConfig(), m.View(), bg)
}

// Bounds returns where Overlay places the dialog on screen.
func (m Model) Bounds() overlay.Rect {
	_, rect := overlay.PlaceRect(m.overlayConfig(), m.View(), "")
	return rect
}

// SetSize updates the viewport size used for centering and resizes the
// editor to match.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

// FocusedField returns the currently focused element.
func (m Model) FocusedField() Field {
	return m.focusedField
}

// Done reports whether the modal has produced its result.
func (m Model) Done() bool {
	return m.done
}

// Value returns the current editor text.
func (m Model) Value() string {
	return m.editor.Value()
}

// Editor returns the hosted editor.
func (m Model) Editor() editor.Model {
	return m.editor
}
