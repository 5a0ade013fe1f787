package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/codehint/internal/highlight"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func TestNewTheme_Default(t *testing.T) {
	theme, err := NewTheme(ThemeConfig{})
	require.NoError(t, err)
	require.Equal(t, "light", theme.Name)
	require.False(t, theme.Dark)
	require.Equal(t, LightPreset.Colors[TokenTextPrimary], theme.Color(TokenTextPrimary))
}

func TestNewTheme_Preset(t *testing.T) {
	theme, err := NewTheme(ThemeConfig{Preset: "dark"})
	require.NoError(t, err)
	require.Equal(t, "dark", theme.Name)
	require.True(t, theme.Dark)
	require.Equal(t, DarkPreset.Colors[TokenSyntaxKeyword], theme.Color(TokenSyntaxKeyword))
}

func TestNewTheme_PresetWithOverride(t *testing.T) {
	// Color override should take precedence over preset
	theme, err := NewTheme(ThemeConfig{
		Preset: "light",
		Colors: map[string]string{
			"syntax.keyword": "#00FF00",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", theme.Color(TokenSyntaxKeyword))
	require.Equal(t, LightPreset.Colors[TokenSyntaxString], theme.Color(TokenSyntaxString))
}

func TestNewTheme_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "nonexistent"}, "unknown theme preset"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"invalid.token": "#FF0000"}}, "unknown color token"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"text.primary": "red"}}, "invalid hex color"},
		{"bad hex length", ThemeConfig{Colors: map[string]string{"text.primary": "#FFFF"}}, "invalid hex color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTheme(tt.cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewTheme_ShortHexAccepted(t *testing.T) {
	theme, err := NewTheme(ThemeConfig{Colors: map[string]string{"text.primary": "#FFF"}})
	require.NoError(t, err)
	require.Equal(t, "#FFF", theme.Color(TokenTextPrimary))
}

func TestNewTheme_ThemesAreIndependent(t *testing.T) {
	light := MustTheme("light")
	dark := MustTheme("dark")
	require.NotEqual(t, light.Color(TokenSyntaxKeyword), dark.Color(TokenSyntaxKeyword))

	kw, ok := dark.Syntax.Style(highlight.ClassKeyword)
	require.True(t, ok)
	require.Contains(t, kw.Render("if"), "\x1b[")
}

func TestAllPresetsDefineEveryToken(t *testing.T) {
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, name, preset.Name)
			for _, token := range AllTokens() {
				value, ok := preset.Colors[token]
				require.True(t, ok, "preset %q missing %s", name, token)
				require.True(t, isValidHexColor(value), "preset %q has bad color %s=%s", name, token, value)
			}
		})
	}
}

func TestPresetNames_Sorted(t *testing.T) {
	names := PresetNames()
	require.Len(t, names, len(Presets))
	require.Equal(t, "catppuccin-latte", names[0])
	require.Contains(t, names, "dark")
	require.Contains(t, names, "light")
}

func TestMustTheme_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { MustTheme("nope") })
}
