package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSubsequence(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		wantMatch bool
	}{
		{"empty pattern matches anything", "", "go_to_top", true},
		{"empty pattern matches empty", "", "", true},
		{"subsequence match", "gto", "go_to_top", true},
		{"full match", "main.go", "main.go", true},
		{"scattered subsequence", "mgo", "main.go", true},
		{"case insensitive pattern", "README", "readme.md", true},
		{"case insensitive candidate", "readme", "README.md", true},
		{"no match", "xyz", "go_to_top", false},
		{"out of order", "og", "go", false},
		{"pattern longer than candidate", "abcdef", "abc", false},
		{"repeated chars need repeats", "aa", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Find(tt.pattern, tt.candidate)
			assert.Equal(t, tt.wantMatch, ok)
		})
	}
}

func TestFindEmptyPatternScoresZero(t *testing.T) {
	m, ok := Find("", "anything_at_all.txt")
	require.True(t, ok)
	assert.Equal(t, 0, m.Score)
	assert.Empty(t, m.Positions)
}

func TestFindScoring(t *testing.T) {
	// Single char at index 0: base 10 + first-char 15 - length penalty.
	m, ok := Find("a", "abc")
	require.True(t, ok)
	assert.Equal(t, 10+15-3, m.Score)

	// Match after an underscore separator earns the separator bonus.
	m, ok = Find("t", "a_t")
	require.True(t, ok)
	assert.Equal(t, 10+10-3, m.Score)

	// Consecutive run: first char bonus on 'a', consecutive bonus on 'b'.
	m, ok = Find("ab", "abx")
	require.True(t, ok)
	assert.Equal(t, (10+15)+(10+5)-3, m.Score)
}

func TestFindPositiveScoreForWordMatch(t *testing.T) {
	m, ok := Find("gto", "go_to_top")
	require.True(t, ok)
	assert.Positive(t, m.Score)
}

func TestFindPositionsAreOrderedAndInBounds(t *testing.T) {
	m, ok := Find("gtt", "go_to_top")
	require.True(t, ok)
	require.Len(t, m.Positions, 3)

	runes := []rune("go_to_top")
	prev := -1
	for _, p := range m.Positions {
		assert.Greater(t, p, prev)
		assert.Less(t, p, len(runes))
		prev = p
	}
}

func TestFindLengthPenaltyPrefersShorter(t *testing.T) {
	short, ok := Find("app", "app.go")
	require.True(t, ok)
	long, ok := Find("app", "application_helper.go")
	require.True(t, ok)
	assert.Greater(t, short.Score, long.Score)
}

func TestFindDeterministic(t *testing.T) {
	first, ok := Find("cfg", "config_test.go")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := Find("cfg", "config_test.go")
		require.True(t, ok)
		assert.Equal(t, first.Score, again.Score)
		assert.Equal(t, first.Positions, again.Positions)
	}
}
