// Package config provides configuration types and defaults for codehint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/log"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

// Config holds all configuration options for codehint.
type Config struct {
	Theme     ThemeConfig     `mapstructure:"theme"`
	Editor    EditorConfig    `mapstructure:"editor"`
	Keywords  KeywordsConfig  `mapstructure:"keywords"`
	Hints     HintsConfig     `mapstructure:"hints"`
	Highlight HighlightConfig `mapstructure:"highlight"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base.
	// Valid values: "light" (default), "dark", "catppuccin-mocha",
	// "catppuccin-latte", "dracula"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens.
	// Supports both nested YAML structure and dot notation:
	//   colors:
	//     hint:
	//       title: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "hint.title": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// StyleConfig converts the theme section for styles.NewTheme.
func (t ThemeConfig) StyleConfig() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.FlattenedColors()}
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// EditorConfig holds editor widget options.
type EditorConfig struct {
	ShowLineNumbers bool   `mapstructure:"show_line_numbers"`
	TabWidth        int    `mapstructure:"tab_width"`   // spaces inserted by tab (1-16)
	Placeholder     string `mapstructure:"placeholder"` // shown while the editor is empty
	AutoFocus       bool   `mapstructure:"auto_focus"`
	HintHeight      int    `mapstructure:"hint_height"` // initial hint panel rows
}

// KeywordsConfig selects the keyword table.
type KeywordsConfig struct {
	// File is a YAML or JSON keyword table. Relative paths resolve against
	// the working directory.
	File string `mapstructure:"file"`

	// Builtin includes the built-in JavaScript table. When File is also set
	// the file's entries come first, so they win under first-prefix matching.
	Builtin bool `mapstructure:"builtin"`

	// Match is "exact-first" (default) or "first-prefix".
	Match string `mapstructure:"match"`

	// Watch reloads File when it changes on disk.
	Watch bool `mapstructure:"watch"`
}

// MatchPolicy parses Match.
func (k KeywordsConfig) MatchPolicy() (hint.MatchPolicy, error) {
	return hint.ParseMatchPolicy(k.Match)
}

// HintsConfig tunes the hint panel.
type HintsConfig struct {
	// SignatureSplit is "depth-aware" (default) or "naive".
	SignatureSplit string `mapstructure:"signature_split"`

	// MarkdownDescriptions renders keyword descriptions as markdown.
	MarkdownDescriptions bool `mapstructure:"markdown_descriptions"`
}

// FormatOptions returns the signature formatting options.
func (h HintsConfig) FormatOptions() hint.FormatOptions {
	return hint.FormatOptions{Split: hint.ParseSplitMode(h.SignatureSplit)}
}

// HighlightConfig toggles syntax highlighting.
type HighlightConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Limits for numeric editor settings.
const (
	MaxTabWidth   = 16
	MaxHintHeight = 100
)

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{
			Preset: styles.DefaultPresetName,
		},
		Editor: EditorConfig{
			ShowLineNumbers: true,
			TabWidth:        4,
			Placeholder:     "Start typing code...",
			AutoFocus:       true,
			HintHeight:      8,
		},
		Keywords: KeywordsConfig{
			Builtin: true,
			Match:   hint.MatchExactFirst.String(),
			Watch:   true,
		},
		Hints: HintsConfig{
			SignatureSplit: hint.SplitDepthAware.String(),
		},
		Highlight: HighlightConfig{
			Enabled: true,
		},
	}
}

// Validate checks every section and returns the first problem found.
func Validate(c Config) error {
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := ValidateEditor(c.Editor); err != nil {
		return err
	}
	if err := ValidateKeywords(c.Keywords); err != nil {
		return err
	}
	return ValidateHints(c.Hints)
}

// ValidateTheme checks the preset name and every color override.
func ValidateTheme(t ThemeConfig) error {
	if _, err := styles.NewTheme(t.StyleConfig()); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ValidateEditor checks numeric editor settings. Zero means "use default".
func ValidateEditor(e EditorConfig) error {
	if e.TabWidth < 0 || e.TabWidth > MaxTabWidth {
		return fmt.Errorf("editor.tab_width must be between 1 and %d, got %d", MaxTabWidth, e.TabWidth)
	}
	if e.HintHeight < 0 || e.HintHeight > MaxHintHeight {
		return fmt.Errorf("editor.hint_height must be between 3 and %d, got %d", MaxHintHeight, e.HintHeight)
	}
	return nil
}

// ValidateKeywords checks the keyword source settings. Disabling every
// source is allowed and gives an empty table.
func ValidateKeywords(k KeywordsConfig) error {
	if _, err := k.MatchPolicy(); err != nil {
		return fmt.Errorf("keywords.match: %w", err)
	}
	return nil
}

// ValidateHints checks the hint panel settings.
func ValidateHints(h HintsConfig) error {
	switch strings.ToLower(strings.TrimSpace(h.SignatureSplit)) {
	case "", "depth", "depth-aware", "naive":
		return nil
	default:
		return fmt.Errorf("hints.signature_split must be \"depth-aware\" or \"naive\", got %q", h.SignatureSplit)
	}
}

// DefaultConfigPath returns ~/.config/codehint/config.yaml, or "" when the
// home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "codehint", "config.yaml")
}

// DefaultConfigTemplate returns the default config file with comments.
func DefaultConfigTemplate() string {
	return `# codehint configuration

# Theme configuration
theme:
  # Built-in presets: light (default), dark, catppuccin-mocha,
  # catppuccin-latte, dracula
  preset: light
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   hint.title: "#FFFFFF"
  #   syntax.keyword: "#C586C0"

# Editor settings
editor:
  show_line_numbers: true
  tab_width: 4                         # Spaces inserted by tab
  placeholder: "Start typing code..."  # Shown while the editor is empty
  auto_focus: true
  hint_height: 8                       # Initial hint panel rows (ctrl+up/ctrl+down to resize)

# Keyword table used for hints
keywords:
  # file: keywords.yaml   # YAML or JSON: [name, signature, [params...], description]
  builtin: true           # Include the built-in JavaScript table
  match: exact-first      # exact-first (default) or first-prefix
  watch: true             # Reload the keyword file when it changes

# Hint panel
hints:
  signature_split: depth-aware  # depth-aware (default) or naive
  markdown_descriptions: false  # Render descriptions as markdown

# Syntax highlighting
highlight:
  enabled: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
