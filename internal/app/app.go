// Package app contains the root application model: a full-screen editor on
// one file with a status bar, help footer and keyword hot reload.
package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	bubbleshelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/codehint/internal/config"
	"github.com/zjrosen/codehint/internal/keys"
	"github.com/zjrosen/codehint/internal/keywords"
	"github.com/zjrosen/codehint/internal/log"
	"github.com/zjrosen/codehint/internal/ui/editor"
	"github.com/zjrosen/codehint/internal/ui/help"
	"github.com/zjrosen/codehint/internal/ui/styles"
	"github.com/zjrosen/codehint/internal/ui/toaster"
	"github.com/zjrosen/codehint/internal/watcher"
)

const toastDuration = 3 * time.Second

// chromeRows is the status bar plus the help footer.
const chromeRows = 2

// Options holds everything the command resolved before starting the UI.
type Options struct {
	Config     config.Config
	ConfigPath string // where the hint height is persisted on quit; "" disables

	FilePath string // file being edited; "" edits a scratch buffer that cannot be saved
	Content  string // initial text, normally the file contents

	Theme    *styles.Theme
	Keywords *keywords.Table

	// KeywordsPath is the keyword file reloaded on change when
	// Config.Keywords.Watch is set.
	KeywordsPath string
}

// keywordsChangedMsg is sent when the watcher sees the keyword file change.
type keywordsChangedMsg struct{}

// keywordsReloadedMsg carries the result of re-reading the keyword file.
type keywordsReloadedMsg struct {
	entries int
	err     error
}

// Model is the root application state.
type Model struct {
	opts   Options
	theme  *styles.Theme
	keys   keys.AppKeyMap
	editor editor.Model

	toaster  toaster.Model
	help     help.Model
	footer   bubbleshelp.Model
	showHelp bool

	baseline    string
	changes     ChangeSummary
	seenVersion int
	quitArmed   bool

	width  int
	height int

	watcherHandle *watcher.Watcher
	watchCh       <-chan struct{}
}

// New creates the application model and starts the keyword watcher when
// configured. Call Close when the program exits.
func New(opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.MustTheme(styles.DefaultPresetName)
	}
	if opts.Keywords == nil {
		policy, _ := opts.Config.Keywords.MatchPolicy()
		opts.Keywords = keywords.NewTable(keywords.Builtin(), policy)
	}

	edOpts := append(EditorOptions(opts.Config, theme, opts.Keywords), editor.WithValue(opts.Content))
	ed := editor.New(edOpts...)
	ed.SetCaret(0)

	footer := bubbleshelp.New()
	footer.Styles.ShortKey = theme.Text
	footer.Styles.ShortDesc = theme.Muted
	footer.Styles.ShortSeparator = theme.Muted
	footer.Styles.Ellipsis = theme.Muted

	m := Model{
		opts:        opts,
		theme:       theme,
		keys:        keys.DefaultAppKeyMap(),
		editor:      ed,
		toaster:     toaster.New(theme),
		help:        help.New(theme, ed.KeyMap(), keys.DefaultAppKeyMap()),
		footer:      footer,
		baseline:    ed.Value(),
		seenVersion: ed.Version(),
	}

	if opts.KeywordsPath != "" && opts.Config.Keywords.Watch {
		m.startWatcher()
	}

	m.setSize(ed.Width(), ed.Height()+chromeRows)
	return m
}

func (m *Model) startWatcher() {
	w, err := watcher.New(watcher.DefaultConfig(m.opts.KeywordsPath))
	if err != nil {
		log.Warn(log.CatWatcher, "keyword watcher unavailable", "error", err)
		return
	}
	ch, err := w.Start()
	if err != nil {
		log.Warn(log.CatWatcher, "keyword watcher failed to start", "error", err)
		_ = w.Stop()
		return
	}
	m.watcherHandle = w
	m.watchCh = ch
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// listen waits for the next keyword file change.
func (m Model) listen() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return keywordsChangedMsg{}
	}
}

// reloadKeywords re-reads the keyword file off the UI goroutine.
func (m Model) reloadKeywords() tea.Cmd {
	path := m.opts.KeywordsPath
	builtin := m.opts.Config.Keywords.Builtin
	table := m.opts.Keywords
	return func() tea.Msg {
		entries, err := keywords.Load(path, builtin)
		if err != nil {
			return keywordsReloadedMsg{err: err}
		}
		table.Replace(entries)
		return keywordsReloadedMsg{entries: len(entries)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		return m.forward(msg)

	case keywordsChangedMsg:
		log.Debug(log.CatWatcher, "keyword file changed", "path", m.opts.KeywordsPath)
		return m, m.reloadKeywords()

	case keywordsReloadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatKeywords, "keyword reload failed, keeping previous table", msg.err)
			return m.toast(fmt.Sprintf("Keyword reload failed: %v", msg.err), toaster.Error, m.listen())
		}
		m.editor.RefreshHint()
		return m.toast(fmt.Sprintf("Reloaded %d keywords", msg.entries), toaster.Info, m.listen())

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Cancel) {
			m.showHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	m.quitArmed = false

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.save()
	}
	return m.forward(msg)
}

// forward passes msg to the editor and refreshes the change summary.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Version(); v != m.seenVersion {
		m.seenVersion = v
		m.changes = Summarize(m.baseline, m.editor.Value())
	}
	return m, cmd
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.opts.FilePath == "" {
		return m.toast("No file to save to", toaster.Error, nil)
	}
	value := m.editor.Value()
	if err := SaveFile(m.opts.FilePath, value); err != nil {
		log.ErrorErr(log.CatUI, "save failed", err, "path", m.opts.FilePath)
		return m.toast(fmt.Sprintf("Save failed: %v", err), toaster.Error, nil)
	}
	m.baseline = value
	m.changes = ChangeSummary{}
	return m.toast("Saved "+filepath.Base(m.opts.FilePath), toaster.Success, nil)
}

// quit exits, asking for a second press when there are unsaved changes.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.Modified() && !m.quitArmed && m.opts.FilePath != "" {
		m.quitArmed = true
		return m.toast("Unsaved changes, press "+m.keys.Quit.Help().Key+" again to quit", toaster.Warning, nil)
	}

	if m.opts.ConfigPath != "" && m.editor.HintHeight() != m.opts.Config.Editor.HintHeight {
		if err := config.SaveHintHeight(m.opts.ConfigPath, m.editor.HintHeight()); err != nil {
			log.ErrorErr(log.CatConfig, "failed to persist hint height", err)
		}
	}
	log.Info(log.CatUI, "quitting", "modified", m.Modified())
	return m, tea.Quit
}

func (m Model) toast(message string, kind toaster.Kind, next tea.Cmd) (tea.Model, tea.Cmd) {
	var dismiss tea.Cmd
	m.toaster, dismiss = m.toaster.Show(message, kind, toastDuration)
	return m, tea.Batch(next, dismiss)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.editor.SetSize(width, max(1, height-chromeRows))
	m.toaster = m.toaster.SetSize(width, height)
	m.help = m.help.SetSize(width, height)
	m.footer.Width = max(0, width-1) // left padding
}

// View implements tea.Model.
func (m Model) View() string {
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.editor.View(),
		m.renderStatusBar(),
		m.renderFooter(),
	)
	// JoinVertical pads every line to the widest block.
	view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)

	view = m.toaster.Overlay(view)
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	return zone.Scan(view)
}

func (m Model) renderStatusBar() string {
	line, col := m.editor.CaretPosition()
	right := fmt.Sprintf("Ln %d, Col %d · %d keywords", line+1, col+1, m.opts.Keywords.Len())

	var marker string
	if m.Modified() {
		marker = " [+]"
		if !m.changes.Empty() {
			marker += fmt.Sprintf(" +%d -%d", m.changes.Added, m.changes.Removed)
		}
	}

	name := m.opts.FilePath
	if name == "" {
		name = "[scratch]"
	}
	inner := m.width - 2 // StatusBar padding
	nameWidth := inner - lipgloss.Width(marker) - lipgloss.Width(right) - 1
	left := styles.TruncatePath(name, max(0, nameWidth)) + m.theme.StatusWarning.Render(marker)

	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	content := styles.TruncateString(left+strings.Repeat(" ", gap)+right, max(0, inner))
	return m.theme.StatusBar.Width(m.width).MaxWidth(m.width).Render(content)
}

// footerKeys combines the app and editor bindings for the help footer.
type footerKeys struct {
	app    keys.AppKeyMap
	editor keys.EditorKeyMap
}

func (f footerKeys) ShortHelp() []key.Binding {
	return append(f.app.ShortHelp(), f.editor.ShortHelp()...)
}

func (f footerKeys) FullHelp() [][]key.Binding {
	return append(f.app.FullHelp(), f.editor.FullHelp()...)
}

func (m Model) renderFooter() string {
	footer := m.footer.View(footerKeys{app: m.keys, editor: m.editor.KeyMap()})
	return lipgloss.NewStyle().PaddingLeft(1).MaxWidth(m.width).Render(footer)
}

// Modified reports whether the text differs from the last save.
func (m Model) Modified() bool {
	return m.editor.Value() != m.baseline
}

// Changes returns the line-level change summary since the last save.
func (m Model) Changes() ChangeSummary {
	return m.changes
}

// Editor returns the hosted editor.
func (m Model) Editor() editor.Model {
	return m.editor
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
		m.watcherHandle = nil
	}
	return nil
}
