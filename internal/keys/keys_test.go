package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestEditorKeyMap_BindingsHaveHelp(t *testing.T) {
	km := DefaultEditorKeyMap()
	for _, group := range km.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Keys())
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
}

func TestEditorKeyMap_TabIsBound(t *testing.T) {
	km := DefaultEditorKeyMap()
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, km.Tab))
}

func TestEditorKeyMap_ResizeKeys(t *testing.T) {
	km := DefaultEditorKeyMap()
	require.Equal(t, []string{"ctrl+up"}, km.GrowHint.Keys())
	require.Equal(t, []string{"ctrl+down"}, km.ShrinkHint.Keys())
}

func TestEditorKeyMap_NoConflicts(t *testing.T) {
	km := DefaultEditorKeyMap()
	seen := make(map[string]string)
	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				prev, dup := seen[k]
				require.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestAppKeyMap(t *testing.T) {
	km := DefaultAppKeyMap()
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, km.Save))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Cancel))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlQ}, km.Quit))
	require.Len(t, km.ShortHelp(), 3)
}
