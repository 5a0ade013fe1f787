package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r, err := New(40, true)
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())
	require.True(t, r.Dark())

	out, err := r.Render("Calls **fn** for each element.")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Calls")
	require.Contains(t, plain, "fn")
	require.NotContains(t, plain, "**")
}

func TestRender_Wraps(t *testing.T) {
	r, err := New(20, false)
	require.NoError(t, err)

	out, err := r.Render("one two three four five six seven eight nine ten")
	require.NoError(t, err)
	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(strings.TrimRight(line, " ")), 20)
	}
}
