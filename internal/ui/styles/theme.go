package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/codehint/internal/highlight"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// Theme holds every style the UI renders with. A Theme is built once by
// NewTheme and passed to components; nothing in this package is mutated
// after construction.
type Theme struct {
	Name   string
	Dark   bool
	colors map[ColorToken]string

	Text        lipgloss.Style
	Muted       lipgloss.Style
	Description lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	Gutter       lipgloss.Style
	GutterActive lipgloss.Style

	HintTitle       lipgloss.Style
	HintSignature   lipgloss.Style
	HintActiveParam lipgloss.Style
	HintParam       lipgloss.Style
	HintDimmed      lipgloss.Style

	Resizer       lipgloss.Style
	ResizerActive lipgloss.Style

	PrimaryButton          lipgloss.Style
	PrimaryButtonFocused   lipgloss.Style
	SecondaryButton        lipgloss.Style
	SecondaryButtonFocused lipgloss.Style

	OverlayTitle lipgloss.Style

	StatusBar     lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style

	BorderDefault   lipgloss.Color
	BorderHighlight lipgloss.Color
	OverlayBorder   lipgloss.Color

	Syntax highlight.Palette
}

// NewTheme builds a theme from configuration.
// Order of application:
// 1. Start with the default preset
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Build all Style objects
func NewTheme(cfg ThemeConfig) (*Theme, error) {
	colors := maps.Clone(Presets[DefaultPresetName].Colors)

	name := DefaultPresetName
	dark := Presets[DefaultPresetName].Dark
	if cfg.Preset != "" && cfg.Preset != DefaultPresetName {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
		name = preset.Name
		dark = preset.Dark
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	return build(name, dark, colors), nil
}

// MustTheme returns the named preset with no overrides. It panics on an
// unknown preset and is meant for tests and constant names.
func MustTheme(preset string) *Theme {
	t, err := NewTheme(ThemeConfig{Preset: preset})
	if err != nil {
		panic(err)
	}
	return t
}

// Color returns the resolved hex value of token.
func (t *Theme) Color(token ColorToken) string {
	return t.colors[token]
}

func build(name string, dark bool, colors map[ColorToken]string) *Theme {
	c := func(token ColorToken) lipgloss.Color {
		return lipgloss.Color(colors[token])
	}

	baseButtonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	return &Theme{
		Name:   name,
		Dark:   dark,
		colors: colors,

		Text:        lipgloss.NewStyle().Foreground(c(TokenTextPrimary)),
		Muted:       lipgloss.NewStyle().Foreground(c(TokenTextMuted)),
		Description: lipgloss.NewStyle().Foreground(c(TokenTextDescription)),
		Placeholder: lipgloss.NewStyle().Foreground(c(TokenTextPlaceholder)).Italic(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),

		Gutter:       lipgloss.NewStyle().Foreground(c(TokenGutter)),
		GutterActive: lipgloss.NewStyle().Foreground(c(TokenGutterActive)).Bold(true),

		HintTitle:       lipgloss.NewStyle().Foreground(c(TokenHintTitle)).Bold(true),
		HintSignature:   lipgloss.NewStyle().Foreground(c(TokenHintSignature)),
		HintActiveParam: lipgloss.NewStyle().Foreground(c(TokenHintActiveParam)).Bold(true),
		HintParam:       lipgloss.NewStyle().Foreground(c(TokenHintParam)),
		HintDimmed:      lipgloss.NewStyle().Foreground(c(TokenTextMuted)).Faint(true),

		Resizer:       lipgloss.NewStyle().Foreground(c(TokenResizer)),
		ResizerActive: lipgloss.NewStyle().Foreground(c(TokenResizerActive)),

		PrimaryButton: baseButtonStyle.
			Foreground(c(TokenButtonText)).
			Background(c(TokenButtonPrimaryBg)),
		PrimaryButtonFocused: baseButtonStyle.
			Foreground(c(TokenButtonText)).
			Background(c(TokenButtonPrimaryFocusBg)).
			Underline(true).
			UnderlineSpaces(true),
		SecondaryButton: baseButtonStyle.
			Foreground(c(TokenButtonText)).
			Background(c(TokenButtonSecondaryBg)),
		SecondaryButtonFocused: baseButtonStyle.
			Foreground(c(TokenButtonText)).
			Background(c(TokenButtonSecondaryFocusBg)).
			Underline(true).
			UnderlineSpaces(true),

		OverlayTitle: lipgloss.NewStyle().Foreground(c(TokenOverlayTitle)).Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(c(TokenTextMuted)).
			Padding(0, 1),
		StatusSuccess: lipgloss.NewStyle().Foreground(c(TokenStatusSuccess)),
		StatusWarning: lipgloss.NewStyle().Foreground(c(TokenStatusWarning)),
		StatusError:   lipgloss.NewStyle().Foreground(c(TokenStatusError)).Bold(true),

		BorderDefault:   c(TokenBorderDefault),
		BorderHighlight: c(TokenBorderHighlight),
		OverlayBorder:   c(TokenOverlayBorder),

		Syntax: highlight.Palette{
			highlight.ClassKeyword:  lipgloss.NewStyle().Foreground(c(TokenSyntaxKeyword)).Bold(true),
			highlight.ClassString:   lipgloss.NewStyle().Foreground(c(TokenSyntaxString)),
			highlight.ClassNumber:   lipgloss.NewStyle().Foreground(c(TokenSyntaxNumber)),
			highlight.ClassComment:  lipgloss.NewStyle().Foreground(c(TokenSyntaxComment)).Italic(true),
			highlight.ClassFunction: lipgloss.NewStyle().Foreground(c(TokenSyntaxFunction)).Bold(true),
		},
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
