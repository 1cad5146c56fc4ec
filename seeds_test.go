package astarpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedsOf(t *testing.T) {
	a := []byte("ACGTACGTAC") // len 10
	seeds := seedsOf(a, 3)
	require.Len(t, seeds, 3) // floor(10/3) = 3, trailing "AC" dropped
	assert.Equal(t, Seed{Start: 0, End: 3}, seeds[0])
	assert.Equal(t, Seed{Start: 3, End: 6}, seeds[1])
	assert.Equal(t, Seed{Start: 6, End: 9}, seeds[2])
}

func TestSeedsOfExact(t *testing.T) {
	a := []byte("AAAAAA")
	seeds := seedsOf(a, 2)
	require.Len(t, seeds, 3)
	assert.Equal(t, 6, seeds[len(seeds)-1].End)
}

func TestPotentialTableMonotonicNonIncreasing(t *testing.T) {
	n, k, r := 20, 4, 2
	pot := potentialTable(n, k, r)
	require.Len(t, pot, n+1)
	for i := 1; i < len(pot); i++ {
		assert.LessOrEqualf(t, pot[i], pot[i-1], "potential must be non-increasing at i=%d", i)
	}
	assert.Equal(t, 0, pot[n], "potential at the target row is always 0")
	assert.Equal(t, r*(n/k), pot[0])
}

func TestPotentialTableDropsBySeedCredit(t *testing.T) {
	pot := potentialTable(9, 3, 5)
	// 3 seeds of potential 5 each: P(0)=15, P(3)=10, P(6)=5, P(9)=0
	assert.Equal(t, 15, pot[0])
	assert.Equal(t, 10, pot[3])
	assert.Equal(t, 5, pot[6])
	assert.Equal(t, 0, pot[9])
}
