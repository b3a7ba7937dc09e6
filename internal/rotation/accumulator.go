package rotation

import "math"

// Unwrap folds an angle difference into (-180, 180].
//
// The tracker reports orientation modulo 180 or 360 degrees, so two
// consecutive readings of a smoothly turning body can differ by almost a
// full turn.
func Unwrap(delta float64) float64 {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return delta
	}
	delta = math.Remainder(delta, 360)
	if delta <= -180 {
		delta += 360
	}
	return delta
}

// Accumulator sums unwrapped angle differences between consecutive readings.
type Accumulator struct {
	prev    float64
	hasPrev bool
	total   float64
	deltas  []float64
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Observe records a raw angle reading in degrees and returns the unwrapped
// step from the previous reading. The first reading only seeds the
// accumulator and returns 0.
func (a *Accumulator) Observe(angle float64) float64 {
	if !a.hasPrev {
		a.prev = angle
		a.hasPrev = true
		return 0
	}

	delta := Unwrap(angle - a.prev)
	a.total += delta
	a.deltas = append(a.deltas, delta)
	a.prev = angle

	return delta
}

// Total is the cumulative angular displacement in degrees.
func (a *Accumulator) Total() float64 {
	return a.total
}

// Steps is the number of deltas accumulated so far.
func (a *Accumulator) Steps() int {
	return len(a.deltas)
}

func (a *Accumulator) Deltas() []float64 {
	out := make([]float64, len(a.deltas))
	copy(out, a.deltas)
	return out
}
