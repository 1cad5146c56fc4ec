package astarpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatchIndexExactSeeds(t *testing.T) {
	a := []byte("AAAA")
	b := []byte("AAAA")
	idx := buildMatchIndex(a, b, 2, 1, DefaultFanout)

	require.NotEmpty(t, idx.Matches)
	for _, m := range idx.Matches {
		assert.Equal(t, 0, m.Cost, "identical sequences should only yield exact matches")
	}
	// seed [0,2) should have an exact hit at column 0
	found := false
	for _, m := range idx.MatchesFrom(0) {
		if m.Start.J == 0 && m.Cost == 0 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildMatchIndexInexactSubstitution(t *testing.T) {
	a := []byte("ACGTACGT")
	b := []byte("ACGAACGT") // one substitution inside b's first seed-length window
	idx := buildMatchIndex(a, b, 4, 2, DefaultFanout)

	var sawSub bool
	for _, m := range idx.Matches {
		if m.Cost == 1 {
			sawSub = true
		}
	}
	assert.True(t, sawSub, "r>=2 should recover substitution matches")
}

func TestBuildMatchIndexRespectsFanout(t *testing.T) {
	a := []byte("AAAA")
	b := make([]byte, 0, 200)
	for i := 0; i < 200; i++ {
		b = append(b, 'A')
	}
	idx := buildMatchIndex(a, b, 2, 1, 3)
	assert.Equal(t, 2, idx.DroppedSeeds, "every seed with more hits than fanout must be dropped")
	assert.Empty(t, idx.Matches)
}

func TestDistinctBytes(t *testing.T) {
	out := distinctBytes([]byte("AACG"), []byte("GGT"))
	seen := map[byte]bool{}
	for _, c := range out {
		assert.False(t, seen[c], "distinctBytes must not repeat a byte")
		seen[c] = true
	}
	for _, c := range []byte("ACGT") {
		assert.True(t, seen[c], "expected %q in alphabet", c)
	}
}

func TestMutateOneEditNeighborhood(t *testing.T) {
	seed := []byte("AC")
	alphabet := []byte("ACGT")
	m := mutate(seed, alphabet)

	assert.Len(t, m.deletions, 2) // "C", "A" (dedup if equal)
	assert.Contains(t, m.substitutions, "GC")
	assert.Contains(t, m.substitutions, "AT")
	assert.NotContains(t, m.substitutions, "AC", "substitutions must exclude identity")
	assert.Contains(t, m.insertions, "AAC")
	assert.Contains(t, m.insertions, "ACA")
}
