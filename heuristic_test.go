package astarpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicNoHeuristicIsAlwaysZero(t *testing.T) {
	idx := buildMatchIndex([]byte("ACGTACGT"), []byte("ACGTACGT"), 2, 1, DefaultFanout)
	h := newHeuristic(idx, NoHeuristic, false, false, 1)
	assert.Equal(t, 0, h.h(Vertex{0, 0}))
	assert.Equal(t, 0, h.h(Vertex{4, 4}))
}

func TestHeuristicIsAdmissibleAtSource(t *testing.T) {
	a := []byte("ACGTACGTACGTACGT")
	b := []byte("ACGTACGTACGTACGT")
	idx := buildMatchIndex(a, b, 4, 2, DefaultFanout)
	h := newHeuristic(idx, GCSH, true, false, 1)

	got := h.h(Vertex{0, 0})
	trueDist := levenshtein(a, b)
	assert.LessOrEqualf(t, got, trueDist, "h(source)=%d must not exceed the true distance %d", got, trueDist)
}

func TestHeuristicIsZeroAtTarget(t *testing.T) {
	a := []byte("ACGTACGTACGT")
	b := []byte("ACGTACGTTCGT")
	idx := buildMatchIndex(a, b, 3, 2, DefaultFanout)
	for _, kind := range []Heuristic{SH, CSH, GCSH} {
		h := newHeuristic(idx, kind, true, true, 1)
		target := Vertex{I: int32(len(a)), J: int32(len(b))}
		assert.Equalf(t, 0, h.h(target), "%v: h(target) must be 0", kind)
	}
}

func TestHeuristicCSHIsAdmissibleAtSource(t *testing.T) {
	// Regression for the CSH-arrow/zero-credit fixes described in
	// DESIGN.md: before them,
	// CSH's contour set was empty (h.c.score always 0) and h fell back to
	// the untightened P(u), overestimating the true distance at the
	// source -- P6 ("g(u)+h(u) <= final_cost" at every expanded vertex)
	// failed here with g(source)=0 and h(source)=P(0)=4 > final_cost=1.
	a := []byte("CATT")
	b := []byte("GATT")
	idx := buildMatchIndex(a, b, 2, 2, DefaultFanout)
	trueDist := levenshtein(a, b)

	for _, kind := range []Heuristic{SH, CSH, GCSH} {
		h := newHeuristic(idx, kind, false, false, 1)
		got := h.h(Vertex{0, 0})
		assert.LessOrEqualf(t, got, trueDist, "%v: h(source)=%d must not exceed the true distance %d", kind, got, trueDist)
	}
}

func TestHeuristicZeroCreditFallsBackToGapDistance(t *testing.T) {
	// A vertex with no reachable match ahead must still get an admissible
	// (possibly 0) bound from the gap-cost fallback, not the raw,
	// untightened P(u).
	a := []byte("CATT")
	b := []byte("GATT")
	idx := buildMatchIndex(a, b, 2, 2, DefaultFanout)
	h := newHeuristic(idx, CSH, false, false, 1)

	target := Vertex{I: int32(len(a)), J: int32(len(b))}
	last := Vertex{I: target.I, J: target.J - 1}
	if h.c.score(h.transform(last)) == 0 {
		assert.Equal(t, h.gapDistance(last), h.h(last))
	}
}

func TestHeuristicPruneStopsOnceExhausted(t *testing.T) {
	a := []byte("ACGTACGTACGT")
	b := []byte("ACGTACGTACGT")
	idx := buildMatchIndex(a, b, 3, 2, DefaultFanout)
	h := newHeuristic(idx, GCSH, true, false, 1)

	pruned := 0
	for _, m := range idx.Matches {
		if did, _ := h.prune(m.Start); did {
			pruned++
		}
	}
	// A second pass finds nothing left to prune.
	for _, m := range idx.Matches {
		did, _ := h.prune(m.Start)
		require.False(t, did)
	}
	assert.LessOrEqual(t, pruned, len(idx.Matches))
}
