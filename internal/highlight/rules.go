// Package highlight classifies source text with an ordered list of regular
// expression rules.
//
// Rules run in order over the whole text. A rule may only classify characters
// that no earlier rule has claimed; where its match overlaps claimed text the
// match is split and only the unclaimed pieces are kept. The result is a flat,
// sorted list of non-overlapping spans, so renderers never nest or re-escape
// markup.
package highlight

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// Class is the classification of a highlighted span.
type Class int

const (
	ClassPlain Class = iota
	ClassKeyword
	ClassString
	ClassNumber
	ClassComment
	ClassFunction
)

// String returns the class name, which doubles as the CSS class in HTML output.
func (c Class) String() string {
	switch c {
	case ClassKeyword:
		return "keyword"
	case ClassString:
		return "string"
	case ClassNumber:
		return "number"
	case ClassComment:
		return "comment"
	case ClassFunction:
		return "function"
	default:
		return "plain"
	}
}

// Rule classifies the text captured by Group in each match of Pattern.
type Rule struct {
	Name    string
	Pattern *regexp2.Regexp
	Group   int
	Class   Class
}

// NewRule compiles pattern into a Rule.
func NewRule(name, pattern string, opts regexp2.RegexOptions, group int, class Class) (Rule, error) {
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return Rule{}, fmt.Errorf("compiling rule %s: %w", name, err)
	}
	re.MatchTimeout = DefaultMatchTimeout
	if group < 0 || group > len(re.GetGroupNumbers())-1 {
		return Rule{}, fmt.Errorf("rule %s: group %d out of range", name, group)
	}
	return Rule{Name: name, Pattern: re, Group: group, Class: class}, nil
}

// Keywords highlighted by the default rules.
var Keywords = []string{
	"function", "var", "let", "const", "if", "else", "for", "while", "do",
	"switch", "case", "break", "continue", "return", "try", "catch", "finally",
	"throw", "class", "extends", "import", "export", "default", "async",
	"await", "new", "this", "super", "static", "public", "private",
	"protected", "abstract", "interface", "type", "enum", "namespace",
	"module", "declare", "readonly", "override",
}

type ruleSpec struct {
	name    string
	pattern string
	opts    regexp2.RegexOptions
	group   int
	class   Class
}

// defaultSpecs lists the rules in application order.
func defaultSpecs() []ruleSpec {
	return []ruleSpec{
		{"keyword", `\b(` + strings.Join(Keywords, "|") + `)\b`, regexp2.None, 1, ClassKeyword},
		{"string", "([\"'`])((?:(?!\\1)[^\\\\]|\\\\.)*)(\\1)", regexp2.None, 0, ClassString},
		{"number", `\b(\d+\.?\d*)\b`, regexp2.None, 1, ClassNumber},
		{"line-comment", `(//.*$)`, regexp2.Multiline, 1, ClassComment},
		{"block-comment", `(/\*[\s\S]*?\*/)`, regexp2.None, 1, ClassComment},
		{"function", `\b([a-zA-Z_$][a-zA-Z0-9_$]*)\s*(?=\()`, regexp2.None, 1, ClassFunction},
	}
}

var defaultRules = sync.OnceValue(func() []Rule {
	specs := defaultSpecs()
	rules := make([]Rule, 0, len(specs))
	for _, s := range specs {
		r, err := NewRule(s.name, s.pattern, s.opts, s.group, s.class)
		if err != nil {
			// The default patterns are constants; a failure here is a bug.
			panic(err)
		}
		rules = append(rules, r)
	}
	return rules
})

// DefaultRules returns the built-in rule list. The slice is shared; callers
// must not modify it.
func DefaultRules() []Rule {
	return defaultRules()
}

// DefaultMatchTimeout bounds a single rule scan.
const DefaultMatchTimeout = 250 * time.Millisecond
