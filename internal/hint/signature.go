package hint

import (
	"html"
	"strings"
)

// SplitMode controls how a signature's parameter list is split.
type SplitMode int

const (
	// SplitDepthAware splits only on commas that are not nested inside
	// (), [], {} or <>, so "fn(opts = {a, b}, cb)" yields two parameters.
	SplitDepthAware SplitMode = iota

	// SplitNaive splits on every comma. Parameters whose own text contains a
	// comma (generic types, object literal defaults) are mis-split.
	SplitNaive
)

func (m SplitMode) String() string {
	if m == SplitNaive {
		return "naive"
	}
	return "depth-aware"
}

// ParseSplitMode parses the configuration spelling of a SplitMode.
func ParseSplitMode(s string) SplitMode {
	if strings.EqualFold(strings.TrimSpace(s), "naive") {
		return SplitNaive
	}
	return SplitDepthAware
}

// Signature is a signature string broken around its parameter list.
type Signature struct {
	// Prefix runs up to and including the first "(".
	Prefix string
	// Params holds the trimmed parameter texts.
	Params []string
	// Suffix starts at the last ")". Empty when the signature never closes.
	Suffix string
}

// ParseSignature splits sig at its first "(" and last ")". It returns false
// when sig has no "(" or the parameter list is blank, in which case the
// signature should be shown unchanged.
func ParseSignature(sig string, mode SplitMode) (Signature, bool) {
	open := strings.IndexByte(sig, '(')
	if open < 0 {
		return Signature{}, false
	}

	end := strings.LastIndexByte(sig, ')')
	if end < open {
		end = len(sig)
	}

	interior := sig[open+1 : end]
	if strings.TrimSpace(interior) == "" {
		return Signature{}, false
	}

	var parts []string
	if mode == SplitNaive {
		parts = strings.Split(interior, ",")
	} else {
		parts = splitTopLevel(interior)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return Signature{
		Prefix: sig[:open+1],
		Params: parts,
		Suffix: sig[end:],
	}, true
}

// splitTopLevel splits s on commas at nesting depth zero. Closing brackets
// never drive the depth negative, so a stray ">" from "=>" is harmless.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	last := 0
	for i, r := range s {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, s[last:])
}

// FormatOptions tunes FormatSignature.
type FormatOptions struct {
	Split SplitMode
}

// FormattedSignature is a signature ready for display with at most one
// parameter marked active.
type FormattedSignature struct {
	raw       string
	sig       Signature
	parsed    bool
	active    int
	hasActive bool
}

// FormatSignature prepares entry's signature for display in ctx. The
// parameter at ctx.ArgumentIndex is marked active when the caret is inside
// the call's arguments; an index past the last parameter marks nothing.
func FormatSignature(entry KeywordEntry, ctx CursorContext, opts FormatOptions) FormattedSignature {
	f := FormattedSignature{raw: entry.Signature, active: -1}
	if !ctx.InCallArguments {
		return f
	}

	sig, ok := ParseSignature(entry.Signature, opts.Split)
	if !ok {
		return f
	}

	f.sig = sig
	f.parsed = true
	if ctx.ArgumentIndex >= 0 && ctx.ArgumentIndex < len(sig.Params) {
		f.active = ctx.ArgumentIndex
		f.hasActive = true
	}
	return f
}

// FormatSignatureString formats with default options and returns the
// markdown rendering, e.g. "map(callback, **thisArg**)".
func FormatSignatureString(entry KeywordEntry, ctx CursorContext) string {
	return FormatSignature(entry, ctx, FormatOptions{}).Markdown()
}

// Params returns the parsed parameters, or nil when the signature is shown
// unchanged.
func (f FormattedSignature) Params() []string {
	if !f.parsed {
		return nil
	}
	return f.sig.Params
}

// Active returns the index of the active parameter, or -1.
func (f FormattedSignature) Active() int {
	if !f.hasActive {
		return -1
	}
	return f.active
}

// Render joins the signature back together, passing the active parameter
// through emphasize. Inactive parameters and the surrounding text go through
// plain, which may be nil.
func (f FormattedSignature) Render(emphasize, plain func(string) string) string {
	if plain == nil {
		plain = func(s string) string { return s }
	}
	if !f.parsed {
		return plain(f.raw)
	}

	var b strings.Builder
	b.WriteString(plain(f.sig.Prefix))
	for i, p := range f.sig.Params {
		if i > 0 {
			b.WriteString(plain(", "))
		}
		if f.hasActive && i == f.active && emphasize != nil {
			b.WriteString(emphasize(p))
		} else {
			b.WriteString(plain(p))
		}
	}
	b.WriteString(plain(f.sig.Suffix))
	return b.String()
}

// Plain returns the signature without any emphasis.
func (f FormattedSignature) Plain() string {
	return f.Render(nil, nil)
}

// Markdown returns the signature with the active parameter in **bold**.
func (f FormattedSignature) Markdown() string {
	return f.Render(func(s string) string { return "**" + s + "**" }, nil)
}

// HTML returns the signature as escaped markup wrapped in <code>, with the
// active parameter in <strong>.
func (f FormattedSignature) HTML() string {
	body := f.Render(
		func(s string) string { return "<strong>" + html.EscapeString(s) + "</strong>" },
		html.EscapeString,
	)
	return "<code>" + body + "</code>"
}
