package sim

// maxFrameDelta caps the wall-clock time a single frame may contribute, so
// a long stall (window dragged, debugger pause) doesn't trigger an
// unbounded catch-up burst of ticks.
const maxFrameDelta = 1.0

// Clock is the fixed-step accumulator that decouples simulation ticks from
// render frames. Feed it each frame's elapsed wall-clock seconds; it
// returns how many whole fixed steps to run and carries the fractional
// remainder forward. The remainder is exposed only as Alpha for render
// interpolation and never reaches the physics.
type Clock struct {
	step float64
	acc  float64
}

func NewClock(step float64) *Clock {
	return &Clock{step: step}
}

// Advance accumulates elapsed seconds (clamped to maxFrameDelta) and
// returns the number of fixed steps the caller should simulate now.
func (c *Clock) Advance(elapsed float64) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameDelta {
		elapsed = maxFrameDelta
	}
	c.acc += elapsed

	// Divide instead of repeatedly subtracting: subtraction accumulates
	// rounding error across a burst and can come up one tick short.
	n := int(c.acc / c.step)
	c.acc -= float64(n) * c.step
	if c.acc < 0 {
		c.acc = 0
	}
	return n
}

// Alpha is the fraction of a step accumulated beyond the last tick, in
// [0, 1). Renderers use it to interpolate between an entity's previous and
// current tick positions.
func (c *Clock) Alpha() float64 {
	return c.acc / c.step
}
