// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Editor surface
	TokenGutter       ColorToken = "editor.gutter"
	TokenGutterActive ColorToken = "editor.gutter.active"

	// Hint panel
	TokenHintTitle       ColorToken = "hint.title"
	TokenHintSignature   ColorToken = "hint.signature"
	TokenHintActiveParam ColorToken = "hint.param.active"
	TokenHintParam       ColorToken = "hint.param"

	// Resizer bar
	TokenResizer       ColorToken = "resizer"
	TokenResizerActive ColorToken = "resizer.active"

	// Buttons
	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"

	// Overlays/Modals
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Syntax highlighting
	TokenSyntaxKeyword  ColorToken = "syntax.keyword"
	TokenSyntaxString   ColorToken = "syntax.string"
	TokenSyntaxNumber   ColorToken = "syntax.number"
	TokenSyntaxComment  ColorToken = "syntax.comment"
	TokenSyntaxFunction ColorToken = "syntax.function"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		// Text hierarchy
		TokenTextPrimary,
		TokenTextMuted,
		TokenTextDescription,
		TokenTextPlaceholder,

		// Borders
		TokenBorderDefault,
		TokenBorderHighlight,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		// Editor surface
		TokenGutter,
		TokenGutterActive,

		// Hint panel
		TokenHintTitle,
		TokenHintSignature,
		TokenHintActiveParam,
		TokenHintParam,

		// Resizer bar
		TokenResizer,
		TokenResizerActive,

		// Buttons
		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg,
		TokenButtonSecondaryFocusBg,

		// Overlays/Modals
		TokenOverlayTitle,
		TokenOverlayBorder,

		// Syntax highlighting
		TokenSyntaxKeyword,
		TokenSyntaxString,
		TokenSyntaxNumber,
		TokenSyntaxComment,
		TokenSyntaxFunction,
	}
}
