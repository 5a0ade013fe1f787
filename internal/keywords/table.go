package keywords

import (
	"context"
	"strings"
	"sync"

	"github.com/zjrosen/codehint/internal/cachemanager"
	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/log"
)

// lookupResult caches misses as well as hits; most identifiers a user types
// are not in the table.
type lookupResult struct {
	Entry hint.KeywordEntry
	Found bool
}

// Table is an ordered keyword table that is safe for concurrent use. The
// editor reads it on every keystroke while the file watcher may replace it.
type Table struct {
	mu      sync.RWMutex
	entries []hint.KeywordEntry
	policy  hint.MatchPolicy
	lookups *cachemanager.ReadThroughCache[string, lookupResult, string]
}

// NewTable creates a table over entries using policy for lookups.
func NewTable(entries []hint.KeywordEntry, policy hint.MatchPolicy) *Table {
	t := &Table{
		entries: clone(entries),
		policy:  policy,
	}
	cache := cachemanager.NewInMemoryCacheManager[string, lookupResult](
		"keyword-lookups", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval)
	t.lookups = cachemanager.NewReadThroughCache[string, lookupResult, string](cache, t.lookup)
	return t
}

// Find implements hint.KeywordSource.
func (t *Table) Find(name string) (hint.KeywordEntry, bool) {
	if name == "" {
		return hint.KeywordEntry{}, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	// lookup never fails
	res, _ := t.lookups.Get(context.Background(), strings.ToLower(name), name, cachemanager.NoExpiration)
	return res.Entry, res.Found
}

// lookup runs with t.mu held for reading.
func (t *Table) lookup(_ context.Context, name string) (lookupResult, error) {
	entry, ok := hint.FindKeyword(t.entries, name, t.policy)
	log.Debug(log.CatHint, "keyword lookup", "name", name, "found", ok, "policy", t.policy)
	return lookupResult{Entry: entry, Found: ok}, nil
}

// Replace swaps in a new set of entries and drops cached lookups.
func (t *Table) Replace(entries []hint.KeywordEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = clone(entries)
	_ = t.lookups.Invalidate(context.Background())
	log.Info(log.CatKeywords, "keyword table replaced", "entries", len(entries))
}

// Entries returns a copy of the table in order.
func (t *Table) Entries() []hint.KeywordEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return clone(t.entries)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Policy returns the table's match policy.
func (t *Table) Policy() hint.MatchPolicy {
	return t.policy
}

func clone(entries []hint.KeywordEntry) []hint.KeywordEntry {
	if entries == nil {
		return nil
	}
	out := make([]hint.KeywordEntry, len(entries))
	copy(out, entries)
	return out
}
