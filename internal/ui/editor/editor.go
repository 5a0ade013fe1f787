// Package editor provides a multi-line code editor with syntax highlighting
// and a signature hint panel.
//
// The editor is laid out top to bottom as a text area (with an optional
// line-number gutter), a one-row resizer bar, and the hint panel. On every
// key press, click and value change the hint is re-resolved from the text up
// to the caret: when the caret is on or inside a call to a known keyword the
// panel shows its signature with the active parameter emphasized, its
// description and its parameter list; otherwise the last hint stays on screen
// dimmed.
//
// Mouse handling relies on bubblezone. The hosting program must call
// zone.NewGlobal once and pass its final view through zone.Scan.
package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/zjrosen/codehint/internal/highlight"
	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/keys"
	"github.com/zjrosen/codehint/internal/log"
	"github.com/zjrosen/codehint/internal/ui/markdown"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

// Defaults for a new editor.
const (
	DefaultPlaceholder = "Start typing code..."
	DefaultTabWidth    = 4
	DefaultHintHeight  = 8
	MinHintHeight      = 3

	// minEditorRows is the smallest text area the resizer leaves.
	minEditorRows = 3
)

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the theme. Without it the default preset is used.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithKeywords sets where hints are looked up.
func WithKeywords(src hint.KeywordSource) Option {
	return func(m *Model) { m.source = src }
}

// WithPlaceholder sets the text shown while the editor is empty.
func WithPlaceholder(p string) Option {
	return func(m *Model) { m.placeholder = p }
}

// WithLineNumbers toggles the line-number gutter.
func WithLineNumbers(show bool) Option {
	return func(m *Model) { m.showLineNumbers = show }
}

// WithAutoFocus focuses the editor on creation.
func WithAutoFocus(focus bool) Option {
	return func(m *Model) { m.focused = focus }
}

// WithValue sets the initial text.
func WithValue(v string) Option {
	return func(m *Model) { m.buf.set(v) }
}

// WithTabWidth sets how many spaces tab inserts.
func WithTabWidth(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.tabWidth = n
		}
	}
}

// WithHintHeight sets the initial hint panel height in rows.
func WithHintHeight(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.hintHeight = n
		}
	}
}

// WithFormatOptions sets how signatures are split into parameters.
func WithFormatOptions(opts hint.FormatOptions) Option {
	return func(m *Model) { m.formatOpts = opts }
}

// WithMarkdownDescriptions renders keyword descriptions as markdown.
func WithMarkdownDescriptions(on bool) Option {
	return func(m *Model) { m.markdownDescriptions = on }
}

// WithHighlighter sets the syntax highlighter. Nil disables highlighting.
func WithHighlighter(h *highlight.Highlighter) Option {
	return func(m *Model) { m.highlighter = h }
}

// WithKeyMap overrides the key bindings.
func WithKeyMap(km keys.EditorKeyMap) Option {
	return func(m *Model) { m.keymap = km }
}

// Model is the editor component state.
type Model struct {
	id     string
	theme  *styles.Theme
	source hint.KeywordSource
	keymap keys.EditorKeyMap

	buf     buffer
	focused bool
	version int

	placeholder          string
	showLineNumbers      bool
	tabWidth             int
	formatOpts           hint.FormatOptions
	markdownDescriptions bool

	highlighter *highlight.Highlighter
	lineSpans   [][]highlight.Span

	width      int
	height     int
	hintHeight int
	scrollRow  int
	scrollCol  int

	hint       hint.Hint
	hintActive bool
	hasHint    bool

	md *markdown.Renderer

	dragging        bool
	dragStartY      int
	dragStartHeight int
}

// New creates an editor. Options are applied in order.
func New(opts ...Option) Model {
	m := Model{
		id:              uuid.NewString(),
		keymap:          keys.DefaultEditorKeyMap(),
		buf:             newBuffer(""),
		placeholder:     DefaultPlaceholder,
		showLineNumbers: true,
		focused:         true,
		tabWidth:        DefaultTabWidth,
		hintHeight:      DefaultHintHeight,
		highlighter:     highlight.Default(),
		width:           80,
		height:          24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		m.theme = styles.MustTheme(styles.DefaultPresetName)
	}
	m.hintHeight = m.clampHintHeight(m.hintHeight)
	m.refreshMarkdown()
	m.contentChanged()
	return m
}

// ID returns the editor's unique id, used to name its mouse zones.
func (m Model) ID() string {
	return m.id
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the current text.
func (m Model) Value() string {
	return m.buf.String()
}

// SetValue replaces the text, moves the caret to the end and re-resolves
// the hint.
func (m *Model) SetValue(v string) {
	m.buf.set(v)
	m.contentChanged()
}

// Caret returns the caret offset in runes.
func (m Model) Caret() int {
	return m.buf.caret
}

// SetCaret moves the caret, clamped to the text, and re-resolves the hint.
func (m *Model) SetCaret(offset int) {
	m.buf.setCaret(offset)
	m.caretMoved()
}

// CaretPosition returns the caret's zero-based line and rune column.
func (m Model) CaretPosition() (line, col int) {
	return m.buf.position()
}

// Version increases on every edit. Callers compare versions to notice
// changes without diffing text.
func (m Model) Version() int {
	return m.version
}

// Focused returns whether the editor receives key input.
func (m Model) Focused() bool {
	return m.focused
}

// Focus gives the editor key input.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes key input from the editor.
func (m *Model) Blur() {
	m.focused = false
}

// Hint returns the current hint and whether it is active. When inactive the
// returned hint is the last active one, if any.
func (m Model) Hint() (hint.Hint, bool) {
	return m.hint, m.hintActive
}

// RefreshHint re-resolves the hint at the caret. Call it after the keyword
// source changed underneath the editor.
func (m *Model) RefreshHint() {
	m.refreshHint()
}

// HintHeight returns the hint panel height in rows.
func (m Model) HintHeight() int {
	return m.hintHeight
}

// SetHintHeight resizes the hint panel, clamped so both panes stay usable.
func (m *Model) SetHintHeight(h int) {
	m.hintHeight = m.clampHintHeight(h)
	m.ensureCaretVisible()
}

// SetSize sets the total size of the editor including the hint panel.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.hintHeight = m.clampHintHeight(m.hintHeight)
	m.ensureCaretVisible()
	m.refreshMarkdown()
}

// Width returns the total width.
func (m Model) Width() int {
	return m.width
}

// Height returns the total height.
func (m Model) Height() int {
	return m.height
}

// KeyMap returns the editor key bindings, for help views.
func (m Model) KeyMap() keys.EditorKeyMap {
	return m.keymap
}

func (m Model) clampHintHeight(h int) int {
	hi := max(MinHintHeight, m.height-minEditorRows)
	return max(MinHintHeight, min(h, hi))
}

// Update handles key and mouse messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	km := m.keymap
	switch {
	case key.Matches(msg, km.GrowHint):
		m.SetHintHeight(m.hintHeight + 1)
		return
	case key.Matches(msg, km.ShrinkHint):
		m.SetHintHeight(m.hintHeight - 1)
		return

	case key.Matches(msg, km.WordLeft):
		m.buf.wordLeft()
	case key.Matches(msg, km.WordRight):
		m.buf.wordRight()
	case key.Matches(msg, km.DocStart):
		m.buf.setCaret(0)
	case key.Matches(msg, km.DocEnd):
		m.buf.setCaret(m.buf.Len())
	case key.Matches(msg, km.Left):
		m.buf.left()
	case key.Matches(msg, km.Right):
		m.buf.right()
	case key.Matches(msg, km.Up):
		m.buf.moveVertical(-1, m.tabWidth)
	case key.Matches(msg, km.Down):
		m.buf.moveVertical(1, m.tabWidth)
	case key.Matches(msg, km.PageUp):
		m.buf.moveVertical(-m.textRows(), m.tabWidth)
	case key.Matches(msg, km.PageDown):
		m.buf.moveVertical(m.textRows(), m.tabWidth)
	case key.Matches(msg, km.LineStart):
		m.buf.home()
	case key.Matches(msg, km.LineEnd):
		m.buf.end()

	case key.Matches(msg, km.Newline):
		m.edit(func(b *buffer) bool { b.insert("\n"); return true })
		return
	case key.Matches(msg, km.Backspace):
		m.edit((*buffer).backspace)
		return
	case key.Matches(msg, km.Delete):
		m.edit((*buffer).deleteForward)
		return
	case key.Matches(msg, km.Tab):
		m.edit(func(b *buffer) bool { b.insertSpaces(m.tabWidth); return true })
		return

	default:
		switch msg.Type {
		case tea.KeyRunes:
			if msg.Alt {
				return
			}
			text := string(msg.Runes)
			m.edit(func(b *buffer) bool { b.insert(text); return true })
		case tea.KeySpace:
			m.edit(func(b *buffer) bool { b.insert(" "); return true })
		}
		return
	}
	m.caretMoved()
}

// edit applies fn and, when it changed the text, refreshes derived state.
func (m *Model) edit(fn func(*buffer) bool) {
	if fn(&m.buf) {
		m.contentChanged()
	}
}

// contentChanged re-highlights and re-resolves after the text changed.
func (m *Model) contentChanged() {
	m.version++
	m.rehighlight()
	m.caretMoved()
}

// caretMoved re-resolves the hint and scrolls the caret into view.
func (m *Model) caretMoved() {
	m.ensureCaretVisible()
	m.refreshHint()
}

func (m *Model) rehighlight() {
	if m.highlighter == nil {
		m.lineSpans = nil
		return
	}
	text := m.buf.String()
	m.lineSpans = highlight.SplitLines(text, m.highlighter.Tokenize(text))
}

func (m *Model) refreshHint() {
	h, ok := hint.Resolve(m.source, m.buf.String(), m.buf.caret, m.formatOpts)
	if !ok {
		if m.hintActive {
			log.Debug(log.CatUI, "hint deactivated", "editor", m.id)
		}
		m.hintActive = false
		return
	}
	if !m.hintActive || m.hint.Entry.Name != h.Entry.Name {
		log.Debug(log.CatUI, "hint activated", "editor", m.id, "keyword", h.Entry.Name,
			"inCall", h.Context.InCallArguments, "arg", h.Context.ArgumentIndex)
	}
	m.hint = h
	m.hintActive = true
	m.hasHint = true
}

func (m *Model) refreshMarkdown() {
	if !m.markdownDescriptions {
		return
	}
	w := m.hintInnerWidth()
	if m.md != nil && m.md.Width() == w && m.md.Dark() == m.theme.Dark {
		return
	}
	r, err := markdown.New(w, m.theme.Dark)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer unavailable, using plain descriptions", err)
		m.md = nil
		return
	}
	m.md = r
}
