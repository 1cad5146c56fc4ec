package astarpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCigarBacktraceOrderAndMerge(t *testing.T) {
	c := NewCIGAR()
	defer RecycleCIGAR(c)

	// A backtrace walks target -> source, so it appends in reverse.
	c.AddN('D', 1)
	c.AddN('=', 2)
	c.AddN('=', 3) // adjacent same-op run must merge with the previous one
	c.Score = 1
	c.process()

	require.Len(t, c.Ops, 2)
	assert.Equal(t, CIGARRecord{N: 5, Op: '='}, *c.Ops[0])
	assert.Equal(t, CIGARRecord{N: 1, Op: 'D'}, *c.Ops[1])
	assert.Equal(t, "5=1D", c.CIGAR())
}

func TestCigarCostMatchesNonMatchRuns(t *testing.T) {
	c, err := ParseCIGAR("3=1X2=1I1D")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Cost())
}

func TestCigarParseRoundTrip(t *testing.T) {
	for _, s := range []string{"4=", "2=1X4=2I1D3=", "1D1I"} {
		c, err := ParseCIGAR(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.CIGAR())
	}
}

func TestCigarParseRejectsMalformed(t *testing.T) {
	_, err := ParseCIGAR("3")
	assert.Error(t, err)
	_, err = ParseCIGAR("=3")
	assert.Error(t, err)
	_, err = ParseCIGAR("3Z")
	assert.Error(t, err)
}

func TestCigarApplyReconstructsB(t *testing.T) {
	a := []byte("ACTCGCT")
	b := []byte("AACTCGTT")
	// =I4=X=  (see the alignment scenario table)
	c, err := ParseCIGAR("1=1I4=1X1=")
	require.NoError(t, err)

	out, err := c.Apply(a, b)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestCigarAlignmentRendersThreeLines(t *testing.T) {
	a := []byte("AAAA")
	b := []byte("AAAAAA")
	c, err := ParseCIGAR("4=2I")
	require.NoError(t, err)

	q, m, tgt := c.Alignment(a, b)
	assert.Equal(t, "AAAA--", string(q))
	assert.Equal(t, "||||  ", string(m))
	assert.Equal(t, "AAAAAA", string(tgt))
}
