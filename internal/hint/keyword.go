package hint

import (
	"fmt"
	"strings"
)

// KeywordEntry describes one function or keyword the hint panel knows about.
type KeywordEntry struct {
	Name        string   `yaml:"name" json:"name"`
	Signature   string   `yaml:"signature" json:"signature"`
	Parameters  []string `yaml:"parameters" json:"parameters"`
	Description string   `yaml:"description" json:"description"`
}

// MatchPolicy selects how FindKeyword picks an entry for a query.
type MatchPolicy int

const (
	// MatchExactFirst returns a case-insensitive exact match when one exists,
	// and otherwise falls back to MatchFirstPrefix.
	MatchExactFirst MatchPolicy = iota

	// MatchFirstPrefix returns the first entry, in table order, whose name
	// starts with the query. An exact match is just another prefix match, so
	// "map" may resolve to "mapTo" if that entry comes first.
	MatchFirstPrefix
)

func (p MatchPolicy) String() string {
	switch p {
	case MatchExactFirst:
		return "exact-first"
	case MatchFirstPrefix:
		return "first-prefix"
	default:
		return "unknown"
	}
}

// ParseMatchPolicy parses the configuration spelling of a MatchPolicy.
// An empty string selects MatchExactFirst.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact-first":
		return MatchExactFirst, nil
	case "first-prefix", "prefix":
		return MatchFirstPrefix, nil
	default:
		return MatchExactFirst, fmt.Errorf("unknown match policy %q (want exact-first or first-prefix)", s)
	}
}

// FindKeyword looks up name in entries using policy. The comparison is
// case-insensitive. An empty name never matches.
func FindKeyword(entries []KeywordEntry, name string, policy MatchPolicy) (KeywordEntry, bool) {
	if name == "" {
		return KeywordEntry{}, false
	}
	query := strings.ToLower(name)

	if policy == MatchExactFirst {
		for _, e := range entries {
			if strings.ToLower(e.Name) == query {
				return e, true
			}
		}
	}

	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Name), query) {
			return e, true
		}
	}
	return KeywordEntry{}, false
}

// KeywordSource is anything that can look up a keyword by name.
type KeywordSource interface {
	Find(name string) (KeywordEntry, bool)
}

// Entries adapts a plain slice to KeywordSource.
type Entries struct {
	List   []KeywordEntry
	Policy MatchPolicy
}

// Find implements KeywordSource.
func (e Entries) Find(name string) (KeywordEntry, bool) {
	return FindKeyword(e.List, name, e.Policy)
}
