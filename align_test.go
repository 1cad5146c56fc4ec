package astarpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// levenshtein is the O(|a|*|b|) reference implementation used to check
// Align's cost against ground truth (spec §8, P1/P5/P9).
func levenshtein(a, b []byte) int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

func TestLevenshteinReferenceSanity(t *testing.T) {
	assert.Equal(t, 0, levenshtein([]byte("abc"), []byte("abc")))
	assert.Equal(t, 3, levenshtein([]byte("abc"), []byte("")))
	assert.Equal(t, 1, levenshtein([]byte("abc"), []byte("abd")))
}

func scenarioParams() Params {
	p := DefaultParams()
	p.K = 2
	p.R = 2
	return p
}

func TestAlignScenarioInsertionAndSubstitution(t *testing.T) {
	a := []byte("ACTCGCT")
	b := []byte("AACTCGTT")
	cost, cigar, err := Align(a, b, scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, levenshtein(a, b), cost)

	out, err := cigar.Apply(a, b)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestAlignScenarioTrailingInsertions(t *testing.T) {
	a := []byte("AAAA")
	b := []byte("AAAAAA")
	cost, cigar, err := Align(a, b, scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, "4=2I", cigar.CIGAR())
}

func TestAlignIdenticalSequencesCostZero(t *testing.T) {
	a := []byte("ACGTACGTACGTACGTACGT")
	cost, cigar, err := Align(a, append([]byte{}, a...), scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, "20=", cigar.CIGAR())
}

func TestAlignEmptyAgainstNonEmpty(t *testing.T) {
	cost, cigar, err := Align(nil, []byte("ACGT"), scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
	assert.Equal(t, "4I", cigar.CIGAR())
}

func TestAlignBothEmpty(t *testing.T) {
	cost, cigar, err := Align(nil, nil, scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Empty(t, cigar.Ops)
}

func TestAlignMatchesReferenceAcrossHeuristics(t *testing.T) {
	pairs := [][2]string{
		{"ACGTACGTACGTACGT", "ACGAACGTACCTACGT"},
		{"GATTACA", "GATACA"},
		{"AGGCTATCACCTGACCTCCAGGCCGATGCCC", "TAGCTATCACGACCGCGGTCGATTTGCCCGAC"},
		{"AAAAAAAAAA", "AAAAAAAAA"},
	}
	for _, pr := range pairs {
		a, b := []byte(pr[0]), []byte(pr[1])
		want := levenshtein(a, b)
		for _, kind := range []Heuristic{NoHeuristic, SH, CSH, GCSH} {
			p := scenarioParams()
			p.Heuristic = kind
			got, cigar, err := Align(a, b, p)
			require.NoError(t, err)
			assert.Equalf(t, want, got, "%v: Align(%s,%s)", kind, a, b)
			assert.Equal(t, got, cigar.Cost())
			out, err := cigar.Apply(a, b)
			require.NoError(t, err)
			assert.Equal(t, b, out)
		}
	}
}

func TestAlignPruneEndAgreesWithPruneStart(t *testing.T) {
	a := []byte("AGGCTATCACCTGACCTCCAGGCCGATGCCC")
	b := []byte("TAGCTATCACGACCGCGGTCGATTTGCCCGAC")
	want := levenshtein(a, b)

	p := scenarioParams()
	p.PruneStart = true
	p.PruneEnd = true
	got, _, err := Align(a, b, p)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAlignWithStatsReportsRunID(t *testing.T) {
	a, b := []byte("ACGTACGT"), []byte("ACGAACGT")
	_, _, stats, err := AlignWithStats(a, b, scenarioParams())
	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, [16]byte(stats.RunID))
	assert.GreaterOrEqual(t, stats.Expanded, 1)
}

func TestParamsValidation(t *testing.T) {
	_, _, err := Align([]byte("A"), []byte("A"), Params{K: 0, R: 1})
	require.Error(t, err)
	var ae *AlignError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, InvalidParams, ae.Kind)

	_, _, err = Align([]byte("A"), []byte("A"), Params{K: 1, R: 1, PruneFraction: 2})
	require.Error(t, err)

	_, _, err = Align([]byte("A"), []byte("A"), Params{K: 1, R: 3, PruneFraction: 1})
	require.Error(t, err, "R outside {1,2} must be rejected")

	_, _, err = Align([]byte("A"), []byte("A"), Params{K: 1, R: 1, PruneFraction: 0})
	require.Error(t, err, "PruneFraction must be in (0,1], not [0,1]")

	_, _, err = Align([]byte("A"), []byte("A"), Params{K: 1, R: 2, PruneFraction: 1})
	require.NoError(t, err)
}

func TestNewMatchIndexDiagnostics(t *testing.T) {
	idx, err := NewMatchIndex([]byte("ACGTACGT"), []byte("ACGTACGT"), 2, 1, 0)
	require.NoError(t, err)
	assert.Len(t, idx.Potential, 9) // covers rows [0, len(a)]
	assert.Equal(t, 0, idx.PotentialAt(8))
	assert.Greater(t, idx.PotentialAt(0), 0)
}
