package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockAccumulatesWholeSteps(t *testing.T) {
	c := NewClock(Step)

	assert.Equal(t, 0, c.Advance(Step*0.5))
	assert.Equal(t, 1, c.Advance(Step*0.5))
	assert.Equal(t, 2, c.Advance(Step*2.5))
	assert.InDelta(t, 0.5, c.Alpha(), 1e-9)
}

func TestClockAlphaStaysFractional(t *testing.T) {
	c := NewClock(Step)

	for i := 0; i < 500; i++ {
		c.Advance(0.0137) // deliberately not a multiple of the step
		alpha := c.Alpha()
		assert.GreaterOrEqual(t, alpha, 0.0)
		assert.Less(t, alpha, 1.0)
	}
}

func TestClockCapsLongStalls(t *testing.T) {
	c := NewClock(Step)

	// A multi-second stall contributes at most one second of catch-up,
	// and one second is exactly sixty whole steps with nothing left over.
	assert.Equal(t, 60, c.Advance(10.0))
	assert.InDelta(t, 0.0, c.Alpha(), 1e-9)
}

func TestClockIgnoresNegativeElapsed(t *testing.T) {
	c := NewClock(Step)

	assert.Equal(t, 0, c.Advance(-1))
	assert.Equal(t, 0.0, c.Alpha())
}
