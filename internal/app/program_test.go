package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/codehint/internal/config"
	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/keywords"
	"github.com/zjrosen/codehint/internal/ui/modal"
)

// waitForOutput waits until the output read so far contains every text.
// Output is consumed, so texts rendered in the same frame must be awaited
// together.
func waitForOutput(t *testing.T, tm *teatest.TestModel, texts ...string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		for _, text := range texts {
			if !bytes.Contains(b, []byte(text)) {
				return false
			}
		}
		return true
	}, teatest.WithDuration(5*time.Second), teatest.WithCheckInterval(20*time.Millisecond))
}

func TestProgram_EditSaveQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	tm := teatest.NewTestModel(t,
		New(Options{Config: config.Defaults(), FilePath: path}),
		teatest.WithInitialTermSize(100, 30),
	)

	tm.Type("Math.max(")
	waitForOutput(t, tm, "largest of the given numbers")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	waitForOutput(t, tm, "Saved main.js")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlQ})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	assert.False(t, final.Modified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Math.max(", string(data))
}

func TestProgram_WatchesKeywordFile(t *testing.T) {
	dir := t.TempDir()
	kwPath := filepath.Join(dir, "keywords.yaml")
	require.NoError(t, os.WriteFile(kwPath, []byte("- [hello, \"hello()\"]\n"), 0o644))

	cfg := config.Defaults()
	cfg.Keywords.Builtin = false
	entries, err := keywords.Load(kwPath, false)
	require.NoError(t, err)

	m := New(Options{
		Config:       cfg,
		Keywords:     keywords.NewTable(entries, hint.MatchExactFirst),
		KeywordsPath: kwPath,
	})
	t.Cleanup(func() { _ = m.Close() })
	require.NotNil(t, m.Init())

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))
	tm.Type("greet(")
	waitForOutput(t, tm, "1 keywords")

	require.NoError(t, os.WriteFile(kwPath, []byte(
		"- [hello, \"hello()\"]\n- [greet, \"greet(name)\", [\"name\"], \"Greets someone.\"]\n"), 0o644))
	waitForOutput(t, tm, "Reloaded 2 keywords", "Greets someone.")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlQ})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}

func TestModalProgram_Save(t *testing.T) {
	tm := teatest.NewTestModel(t,
		NewModal(modal.Config{Value: "let x"}),
		teatest.WithInitialTermSize(100, 30),
	)

	waitForOutput(t, tm, "Code Editor")
	tm.Type(" = 1")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	final, ok := tm.FinalModel(t).(ModalModel)
	require.True(t, ok)
	value, saved := final.Result()
	assert.True(t, saved)
	assert.Equal(t, "let x = 1", value)
}

func TestModalProgram_Cancel(t *testing.T) {
	tm := teatest.NewTestModel(t,
		NewModal(modal.Config{Value: "draft"}),
		teatest.WithInitialTermSize(100, 30),
	)

	waitForOutput(t, tm, "Code Editor")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	value, saved := tm.FinalModel(t).(ModalModel).Result()
	assert.False(t, saved)
	assert.Empty(t, value)
}

func TestModalModel_CtrlCQuits(t *testing.T) {
	m := NewModal(modal.Config{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	_, saved := next.(ModalModel).Result()
	assert.False(t, saved)
}

func TestModalModel_ViewBeforeSize(t *testing.T) {
	m := NewModal(modal.Config{Title: "Snippet"})
	assert.Contains(t, m.View(), "Snippet")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, next.View(), "Snippet")
}
