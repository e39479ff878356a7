package game

import "math"

// scriptedRand replays fixed signs and floats, cycling when exhausted
type scriptedRand struct {
	signs  []float64
	floats []float64
	si, fi int
}

func (r *scriptedRand) Sign() float64 {
	if len(r.signs) == 0 {
		return 1
	}
	v := r.signs[r.si%len(r.signs)]
	r.si++
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestState returns a state with a resting ball at the center and the
// paddles at their default columns.
func newTestState() *State {
	s := NewState(DefaultParams(), &scriptedRand{signs: []float64{1}, floats: []float64{0}})
	s.Ball = Ball{}
	return s
}

// testField is 800x600, so the goal lines sit at x=±500 and the ceiling at
// y=300.
var testField = Field{Width: 800, Height: 600}
