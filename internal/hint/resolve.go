package hint

// Hint is everything the hint panel shows for one caret position.
type Hint struct {
	Entry     KeywordEntry
	Context   CursorContext
	Signature FormattedSignature
}

// ActiveParameter returns the index into Entry.Parameters that should be
// highlighted, or -1. Like the signature, a parameter is only active while
// the caret is inside the call's arguments.
func (h Hint) ActiveParameter() int {
	if !h.Context.InCallArguments {
		return -1
	}
	if h.Context.ArgumentIndex >= len(h.Entry.Parameters) {
		return -1
	}
	return h.Context.ArgumentIndex
}

// Description returns the entry description or a placeholder when empty.
func (h Hint) Description() string {
	if h.Entry.Description == "" {
		return "No description available"
	}
	return h.Entry.Description
}

// Resolve runs the full hint pipeline for a caret offset into text: take the
// current line up to the caret, resolve its context, look the identifier up
// in source and format the signature. It returns false when there is no
// identifier or the identifier is not a known keyword.
func Resolve(source KeywordSource, text string, offset int, opts FormatOptions) (Hint, bool) {
	line, col := LineAt(text, offset)
	ctx := ResolveContext(line, col)
	if !ctx.HasIdentifier() || source == nil {
		return Hint{Context: ctx}, false
	}

	entry, ok := source.Find(ctx.Identifier)
	if !ok {
		return Hint{Context: ctx}, false
	}

	return Hint{
		Entry:     entry,
		Context:   ctx,
		Signature: FormatSignature(entry, ctx, opts),
	}, true
}
