package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/codehint/internal/ui/styles"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func newTestToaster() Model {
	return New(styles.MustTheme(styles.DefaultPresetName))
}

func show(m Model, text string, kind Kind) Model {
	m, _ = m.Show(text, kind, 0)
	return m
}

func TestNew(t *testing.T) {
	m := newTestToaster()

	assert.False(t, m.Visible())
	assert.Zero(t, m.ID())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := newTestToaster().Show("Hello", Success, 0)

	assert.Nil(t, cmd, "no dismiss without a duration")
	assert.True(t, m.Visible())
	assert.Equal(t, "Hello", m.Message())
	assert.Contains(t, m.View(), "Hello")
}

func TestShow_SchedulesDismiss(t *testing.T) {
	m, cmd := newTestToaster().Show("Saved", Success, time.Millisecond)
	require.NotNil(t, cmd)

	msg := cmd()
	require.Equal(t, DismissMsg{ID: m.ID()}, msg)

	m = m.Update(msg)
	assert.False(t, m.Visible())
}

func TestUpdate_StaleDismissKeepsNewerToast(t *testing.T) {
	m := show(newTestToaster(), "First", Success)
	stale := DismissMsg{ID: m.ID()}

	m = show(m, "Second", Error)
	m = m.Update(stale)

	assert.True(t, m.Visible())
	assert.Equal(t, "Second", m.Message())

	m = m.Update(DismissMsg{ID: m.ID()})
	assert.False(t, m.Visible())
}

func TestUpdate_IgnoresOtherMessages(t *testing.T) {
	m := show(newTestToaster(), "Hello", Info)
	m = m.Update("noise")
	assert.True(t, m.Visible())
}

func TestHide(t *testing.T) {
	m := show(newTestToaster(), "Hello", Success).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := show(show(newTestToaster(), "First", Success), "Second", Error)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Second")
	assert.NotContains(t, m.View(), "First")
}

func TestView_Kinds(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		icon string
	}{
		{"success", Success, "✓"},
		{"error", Error, "✗"},
		{"info", Info, "•"},
		{"warning", Warning, "!"},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := show(newTestToaster(), "Message", tt.kind).View()
			plain := ansi.Strip(view)

			assert.Contains(t, plain, tt.icon+" Message")
			assert.Contains(t, plain, "╭")
			assert.False(t, seen[view], "each kind renders differently")
			seen[view] = true
		})
	}
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	m := newTestToaster().SetSize(20, 10)
	bg := "Background\nContent"

	assert.Equal(t, bg, m.Overlay(bg))
}

func TestOverlay_VisiblePlacesAtBottom(t *testing.T) {
	m := show(newTestToaster().SetSize(20, 10), "Toast", Success)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 20)+"\n", 10), "\n")

	lines := strings.Split(ansi.Strip(m.Overlay(bg)), "\n")

	assert.Len(t, lines, 10)
	assert.Equal(t, strings.Repeat(".", 20), lines[0])
	assert.Equal(t, strings.Repeat(".", 20), lines[9], "bottom padding row is untouched")
	assert.Contains(t, lines[7], "Toast")
}

func TestShow_ImmutableModel(t *testing.T) {
	m1 := newTestToaster()
	m2 := show(m1, "Hello", Success)

	assert.False(t, m1.Visible())
	assert.True(t, m2.Visible())
}
