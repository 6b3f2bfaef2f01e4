package scriptrun

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPair(t *testing.T) {
	tests := []struct {
		r    rune
		want Pair
	}{
		{'(', Pair{'(', ')'}},
		{')', Pair{'(', ')'}},
		{'<', Pair{'<', '>'}},
		{']', Pair{'[', ']'}},
		{'{', Pair{'{', '}'}},
		{'«', Pair{'«', '»'}},
		{'’', Pair{'‘', '’'}},
		{'“', Pair{'“', '”'}},
		{'›', Pair{'‹', '›'}},
		{'「', Pair{'「', '」'}},
		{'〛', Pair{'〚', '〛'}},
	}

	for _, tt := range tests {
		got, ok := LookupPair(tt.r)
		require.True(t, ok, "LookupPair(%q)", tt.r)
		assert.Equal(t, tt.want, got, "LookupPair(%q)", tt.r)
	}
}

func TestLookupPair_NotPaired(t *testing.T) {
	for _, r := range []rune{0, 'a', '"', '\'', 0x2019 + 1, 0x301c, 0xff08, -1, 0x10ffff} {
		_, ok := LookupPair(r)
		assert.False(t, ok, "LookupPair(%U)", r)
		assert.False(t, IsOpen(r), "IsOpen(%U)", r)
		assert.False(t, IsClose(r), "IsClose(%U)", r)
	}
}

func TestIsOpenClose(t *testing.T) {
	for _, p := range Pairs() {
		assert.True(t, IsOpen(p.Open), "%q", p.Open)
		assert.False(t, IsClose(p.Open), "%q", p.Open)
		assert.True(t, IsClose(p.Close), "%q", p.Close)
		assert.False(t, IsOpen(p.Close), "%q", p.Close)
	}
}

func TestPairs(t *testing.T) {
	pairs := Pairs()
	require.Len(t, pairs, 17)

	assert.Equal(t, Pair{'(', ')'}, pairs[0])
	assert.Equal(t, Pair{'〚', '〛'}, pairs[16])

	// Table order is ascending by opener and every member is Common.
	assert.True(t, slices.IsSortedFunc(pairs, func(a, b Pair) int { return int(a.Open - b.Open) }))
	for _, p := range pairs {
		assert.Equal(t, ScriptCommon, ScriptOf(p.Open), "%q", p.Open)
		assert.Equal(t, ScriptCommon, ScriptOf(p.Close), "%q", p.Close)
	}

	// Callers get their own copy.
	pairs[0] = Pair{}
	assert.Equal(t, Pair{'(', ')'}, Pairs()[0])
}
