package astarpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignErrorMessage(t *testing.T) {
	err := invalidParams("K must be >= 1, got %d", 0)
	assert.Equal(t, "astarpa: InvalidParams: K must be >= 1, got 0", err.Error())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "InvalidParams", InvalidParams.String())
	assert.Equal(t, "Overflow", Overflow.String())
	assert.Equal(t, "Internal", Internal.String())
}

func TestDebugAssertNoopInReleaseBuild(t *testing.T) {
	assert.NotPanics(t, func() {
		debugAssert(false, "should never panic without the astarpa_debug build tag")
	})
}
