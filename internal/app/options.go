package app

import (
	"github.com/zjrosen/codehint/internal/config"
	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/ui/editor"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

// EditorOptions translates the editor, hints and highlight config sections
// into editor options. Zero numeric settings keep the editor defaults.
func EditorOptions(cfg config.Config, theme *styles.Theme, source hint.KeywordSource) []editor.Option {
	opts := []editor.Option{
		editor.WithTheme(theme),
		editor.WithKeywords(source),
		editor.WithLineNumbers(cfg.Editor.ShowLineNumbers),
		editor.WithAutoFocus(cfg.Editor.AutoFocus),
		editor.WithFormatOptions(cfg.Hints.FormatOptions()),
		editor.WithMarkdownDescriptions(cfg.Hints.MarkdownDescriptions),
	}
	if cfg.Editor.Placeholder != "" {
		opts = append(opts, editor.WithPlaceholder(cfg.Editor.Placeholder))
	}
	if cfg.Editor.TabWidth > 0 {
		opts = append(opts, editor.WithTabWidth(cfg.Editor.TabWidth))
	}
	if cfg.Editor.HintHeight > 0 {
		opts = append(opts, editor.WithHintHeight(cfg.Editor.HintHeight))
	}
	if !cfg.Highlight.Enabled {
		opts = append(opts, editor.WithHighlighter(nil))
	}
	return opts
}
