package styles

import (
	"maps"
	"slices"
)

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Dark        bool
	Colors      map[ColorToken]string
}

// DefaultPresetName is used when no preset is configured.
const DefaultPresetName = "light"

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"dark":             DarkPreset,
	"light":            LightPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// DarkPreset mirrors a VS Code style dark editor.
var DarkPreset = Preset{
	Name:        "dark",
	Dark:        true,
	Description: "Dark editor theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#D4D4D4",
		TokenTextMuted:       "#858585",
		TokenTextDescription: "#CCCCCC",
		TokenTextPlaceholder: "#6A6A6A",

		// Borders
		TokenBorderDefault:   "#404040",
		TokenBorderHighlight: "#007BFF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Editor surface
		TokenGutter:       "#858585",
		TokenGutterActive: "#C6C6C6",

		// Hint panel
		TokenHintTitle:       "#CCCCCC",
		TokenHintSignature:   "#D4D4D4",
		TokenHintActiveParam: "#007BFF",
		TokenHintParam:       "#CCCCCC",

		// Resizer bar
		TokenResizer:       "#404040",
		TokenResizerActive: "#007BFF",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#007BFF",
		TokenButtonPrimaryFocusBg:   "#0056B3",
		TokenButtonSecondaryBg:      "#6C757D",
		TokenButtonSecondaryFocusBg: "#545B62",

		// Overlays/Modals
		TokenOverlayTitle:  "#CCCCCC",
		TokenOverlayBorder: "#8C8C8C",

		// Syntax highlighting
		TokenSyntaxKeyword:  "#569CD6",
		TokenSyntaxString:   "#CE9178",
		TokenSyntaxNumber:   "#B5CEA8",
		TokenSyntaxComment:  "#6A9955",
		TokenSyntaxFunction: "#DCDCAA",
	},
}

// LightPreset is the light editor theme.
var LightPreset = Preset{
	Name:        "light",
	Description: "Light editor theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#24292E",
		TokenTextMuted:       "#6C757D",
		TokenTextDescription: "#495057",
		TokenTextPlaceholder: "#999999",

		// Borders
		TokenBorderDefault:   "#E0E0E0",
		TokenBorderHighlight: "#007BFF",

		// Status indicators
		TokenStatusSuccess: "#22863A",
		TokenStatusWarning: "#B08800",
		TokenStatusError:   "#CB2431",

		// Editor surface
		TokenGutter:       "#999999",
		TokenGutterActive: "#495057",

		// Hint panel
		TokenHintTitle:       "#495057",
		TokenHintSignature:   "#24292E",
		TokenHintActiveParam: "#007BFF",
		TokenHintParam:       "#6C757D",

		// Resizer bar
		TokenResizer:       "#D0D0D0",
		TokenResizerActive: "#007BFF",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#007BFF",
		TokenButtonPrimaryFocusBg:   "#0056B3",
		TokenButtonSecondaryBg:      "#6C757D",
		TokenButtonSecondaryFocusBg: "#545B62",

		// Overlays/Modals
		TokenOverlayTitle:  "#495057",
		TokenOverlayBorder: "#E0E0E0",

		// Syntax highlighting
		TokenSyntaxKeyword:  "#0066CC",
		TokenSyntaxString:   "#22863A",
		TokenSyntaxNumber:   "#6F42C1",
		TokenSyntaxComment:  "#6A737D",
		TokenSyntaxFunction: "#6F42C1",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Dark:        true,
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextDescription: "#A6ADC8", // subtext0
		TokenTextPlaceholder: "#585B70", // surface2

		// Borders
		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderHighlight: "#89B4FA", // blue

		// Status indicators
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		// Editor surface
		TokenGutter:       "#6C7086", // overlay0
		TokenGutterActive: "#BAC2DE", // subtext1

		// Hint panel
		TokenHintTitle:       "#BAC2DE", // subtext1
		TokenHintSignature:   "#CDD6F4", // text
		TokenHintActiveParam: "#89B4FA", // blue
		TokenHintParam:       "#A6ADC8", // subtext0

		// Resizer bar
		TokenResizer:       "#45475A", // surface1
		TokenResizerActive: "#89B4FA", // blue

		// Buttons
		TokenButtonText:             "#1E1E2E", // base
		TokenButtonPrimaryBg:        "#89B4FA", // blue
		TokenButtonPrimaryFocusBg:   "#B4BEFE", // lavender
		TokenButtonSecondaryBg:      "#45475A", // surface1
		TokenButtonSecondaryFocusBg: "#585B70", // surface2

		// Overlays/Modals
		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		// Syntax highlighting
		TokenSyntaxKeyword:  "#CBA6F7", // mauve
		TokenSyntaxString:   "#A6E3A1", // green
		TokenSyntaxNumber:   "#FAB387", // peach
		TokenSyntaxComment:  "#6C7086", // overlay0
		TokenSyntaxFunction: "#89B4FA", // blue
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#4C4F69", // text
		TokenTextMuted:       "#9CA0B0", // overlay0
		TokenTextDescription: "#6C6F85", // subtext0
		TokenTextPlaceholder: "#ACB0BE", // surface2

		// Borders
		TokenBorderDefault:   "#9CA0B0", // overlay0
		TokenBorderHighlight: "#1E66F5", // blue

		// Status indicators
		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		// Editor surface
		TokenGutter:       "#9CA0B0", // overlay0
		TokenGutterActive: "#5C5F77", // subtext1

		// Hint panel
		TokenHintTitle:       "#5C5F77", // subtext1
		TokenHintSignature:   "#4C4F69", // text
		TokenHintActiveParam: "#1E66F5", // blue
		TokenHintParam:       "#6C6F85", // subtext0

		// Resizer bar
		TokenResizer:       "#BCC0CC", // surface1
		TokenResizerActive: "#1E66F5", // blue

		// Buttons
		TokenButtonText:             "#EFF1F5", // base
		TokenButtonPrimaryBg:        "#1E66F5", // blue
		TokenButtonPrimaryFocusBg:   "#7287FD", // lavender
		TokenButtonSecondaryBg:      "#8C8FA1", // overlay1
		TokenButtonSecondaryFocusBg: "#7C7F93", // overlay2

		// Overlays/Modals
		TokenOverlayTitle:  "#4C4F69", // text
		TokenOverlayBorder: "#9CA0B0", // overlay0

		// Syntax highlighting
		TokenSyntaxKeyword:  "#8839EF", // mauve
		TokenSyntaxString:   "#40A02B", // green
		TokenSyntaxNumber:   "#FE640B", // peach
		TokenSyntaxComment:  "#9CA0B0", // overlay0
		TokenSyntaxFunction: "#1E66F5", // blue
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
var DraculaPreset = Preset{
	Name:        "dracula",
	Dark:        true,
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenTextDescription: "#BFBFBF",
		TokenTextPlaceholder: "#6272A4", // comment

		// Borders
		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderHighlight: "#BD93F9", // purple

		// Status indicators
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		// Editor surface
		TokenGutter:       "#6272A4", // comment
		TokenGutterActive: "#F8F8F2", // foreground

		// Hint panel
		TokenHintTitle:       "#F8F8F2", // foreground
		TokenHintSignature:   "#F8F8F2", // foreground
		TokenHintActiveParam: "#FF79C6", // pink
		TokenHintParam:       "#BFBFBF",

		// Resizer bar
		TokenResizer:       "#44475A", // current line
		TokenResizerActive: "#BD93F9", // purple

		// Buttons
		TokenButtonText:             "#282A36", // background
		TokenButtonPrimaryBg:        "#BD93F9", // purple
		TokenButtonPrimaryFocusBg:   "#FF79C6", // pink
		TokenButtonSecondaryBg:      "#44475A", // current line
		TokenButtonSecondaryFocusBg: "#6272A4", // comment

		// Overlays/Modals
		TokenOverlayTitle:  "#F8F8F2", // foreground
		TokenOverlayBorder: "#6272A4", // comment

		// Syntax highlighting
		TokenSyntaxKeyword:  "#FF79C6", // pink
		TokenSyntaxString:   "#F1FA8C", // yellow
		TokenSyntaxNumber:   "#BD93F9", // purple
		TokenSyntaxComment:  "#6272A4", // comment
		TokenSyntaxFunction: "#50FA7B", // green
	},
}
