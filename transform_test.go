package astarpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformSHIsDiagonal(t *testing.T) {
	p := transformPoint(Vertex{I: 4, J: 9}, 0, SH)
	assert.Equal(t, Point{X: 4, Y: 4}, p)
}

func TestTransformNoHeuristicIsOrigin(t *testing.T) {
	assert.Equal(t, Point{}, transformPoint(Vertex{I: 4, J: 9}, 3, NoHeuristic))
}

func TestTransformCSHUsesDiagonalAndPotential(t *testing.T) {
	p := transformPoint(Vertex{I: 3, J: 7}, 5, CSH)
	assert.Equal(t, Point{X: 4, Y: 5}, p)
}

func TestBuildArrowsDropsNonDominatingMatches(t *testing.T) {
	idx := &MatchIndex{
		K: 2, R: 2, lenA: 1, lenB: 1,
		Matches:   []Match{{Start: Vertex{2, 2}, End: Vertex{4, 4}, Cost: 0}},
		Potential: []int{0, 0},
	}
	arrows := buildArrows(idx, SH)
	// SH's target point is (lenA,lenA)=(1,1); the match starts at row 2,
	// past the (deliberately too-short) declared length of A, so the
	// target does not dominate the match's start and it must be dropped.
	assert.Empty(t, arrows)
}

func TestBuildArrowsKeepsDominatingMatches(t *testing.T) {
	idx := &MatchIndex{
		K: 2, R: 2, lenA: 5, lenB: 5,
		Matches:   []Match{{Start: Vertex{1, 1}, End: Vertex{3, 3}, Cost: 0}},
		Potential: []int{0, 0, 0, 0, 0, 0},
	}
	arrows := buildArrows(idx, GCSH)
	// With zero potential everywhere, GCSH's transform is the plain
	// anti-diagonal reflection; the match sits on the same diagonal as
	// the target, so the target's transform dominates the match start.
	assert.Len(t, arrows, 1)
	assert.Equal(t, 2, arrows[0].Len) // R - Cost = 2 - 0
}

func TestBuildArrowsNoHeuristicIsEmpty(t *testing.T) {
	idx := &MatchIndex{Matches: []Match{{Start: Vertex{0, 0}, End: Vertex{2, 2}}}, Potential: []int{0, 0, 0}}
	assert.Nil(t, buildArrows(idx, NoHeuristic))
}

func TestBuildArrowsCSHKeepsInBoundsMatches(t *testing.T) {
	// Regression: filtering CSH matches against transform(target, CSH)
	// compares every match start (potential >= r) against a target point
	// whose potential is always 0, so target.Dominates(start) was false
	// for every match and CSH's contour set was always empty. CSH must
	// instead admit any match contained within (lenA, lenB).
	idx := buildMatchIndex([]byte("CATT"), []byte("GATT"), 2, 2, DefaultFanout)
	arrows := buildArrows(idx, CSH)
	assert.NotEmpty(t, arrows, "CSH must keep matches on a path to the target")
}
