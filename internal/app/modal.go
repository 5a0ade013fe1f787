package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/codehint/internal/log"
	"github.com/zjrosen/codehint/internal/ui/modal"
)

// ModalModel runs a single code editor modal as a whole program and exits
// with its result.
type ModalModel struct {
	modal     modal.Model
	submitted bool
	value     string
	width     int
	height    int
}

// NewModal creates a program model around a modal.
func NewModal(cfg modal.Config) ModalModel {
	return ModalModel{modal: modal.New(cfg)}
}

// Init implements tea.Model.
func (m ModalModel) Init() tea.Cmd {
	return m.modal.Init()
}

// Update implements tea.Model.
func (m ModalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case modal.SubmitMsg:
		m.submitted = true
		m.value = msg.Value
		log.Info(log.CatUI, "modal saved", "runes", len([]rune(msg.Value)))
		return m, tea.Quit

	case modal.CancelMsg:
		log.Info(log.CatUI, "modal cancelled")
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ModalModel) View() string {
	if m.width == 0 || m.height == 0 {
		return zone.Scan(m.modal.View())
	}
	return zone.Scan(m.modal.Overlay(""))
}

// Result returns the saved text and whether the user saved.
func (m ModalModel) Result() (string, bool) {
	return m.value, m.submitted
}
