package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleEntries = []KeywordEntry{
	{Name: "mapTo", Signature: "mapTo(value)"},
	{Name: "map", Signature: "map(callback, thisArg)", Parameters: []string{"callback", "thisArg"}},
	{Name: "forEach", Signature: "forEach(callback)"},
	{Name: "Math.max", Signature: "Math.max(...values)"},
}

func TestFindKeyword_PrefixMatch(t *testing.T) {
	entries := []KeywordEntry{{Name: "forEach", Signature: "forEach(callback)"}}

	got, ok := FindKeyword(entries, "for", MatchFirstPrefix)
	require.True(t, ok)
	require.Equal(t, "forEach", got.Name)

	got, ok = FindKeyword(entries, "for", MatchExactFirst)
	require.True(t, ok, "exact-first still falls back to prefix matching")
	require.Equal(t, "forEach", got.Name)
}

func TestFindKeyword_CaseInsensitive(t *testing.T) {
	got, ok := FindKeyword(sampleEntries, "FOREACH", MatchExactFirst)
	require.True(t, ok)
	require.Equal(t, "forEach", got.Name)

	got, ok = FindKeyword(sampleEntries, "math.MAX", MatchFirstPrefix)
	require.True(t, ok)
	require.Equal(t, "Math.max", got.Name)
}

func TestFindKeyword_Policies(t *testing.T) {
	// Table order puts "mapTo" before "map"; only exact-first picks "map".
	got, ok := FindKeyword(sampleEntries, "map", MatchFirstPrefix)
	require.True(t, ok)
	assert.Equal(t, "mapTo", got.Name)

	got, ok = FindKeyword(sampleEntries, "map", MatchExactFirst)
	require.True(t, ok)
	assert.Equal(t, "map", got.Name)
}

func TestFindKeyword_NoMatch(t *testing.T) {
	_, ok := FindKeyword(sampleEntries, "reduce", MatchExactFirst)
	require.False(t, ok)

	_, ok = FindKeyword(nil, "map", MatchFirstPrefix)
	require.False(t, ok)

	_, ok = FindKeyword(sampleEntries, "", MatchFirstPrefix)
	require.False(t, ok, "empty query never matches")
}

func TestParseMatchPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    MatchPolicy
		wantErr bool
	}{
		{"", MatchExactFirst, false},
		{"exact-first", MatchExactFirst, false},
		{" First-Prefix ", MatchFirstPrefix, false},
		{"prefix", MatchFirstPrefix, false},
		{"fuzzy", MatchExactFirst, true},
	}
	for _, tt := range tests {
		got, err := ParseMatchPolicy(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestEntries_Find(t *testing.T) {
	src := Entries{List: sampleEntries, Policy: MatchExactFirst}
	got, ok := src.Find("map")
	require.True(t, ok)
	require.Equal(t, "map", got.Name)
}
