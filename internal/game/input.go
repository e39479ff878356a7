package game

// Control identifies one of the four movement keys
type Control int

const (
	ControlP2Up   Control = iota // up arrow
	ControlP2Down                // down arrow
	ControlP1Up                  // w
	ControlP1Down                // s
	controlCount
)

func (c Control) String() string {
	switch c {
	case ControlP2Up:
		return "p2-up"
	case ControlP2Down:
		return "p2-down"
	case ControlP1Up:
		return "p1-up"
	case ControlP1Down:
		return "p1-down"
	}
	return "unknown"
}

// Valid reports whether c names one of the four controls
func (c Control) Valid() bool {
	return c >= 0 && c < controlCount
}

// Controls lists every control in index order
func Controls() []Control {
	return []Control{ControlP2Up, ControlP2Down, ControlP1Up, ControlP1Down}
}

func (c Control) isUp() bool {
	return c == ControlP2Up || c == ControlP1Up
}

// HandleKey applies a key edge to the paddle velocities.
//
// A press is counted once until the matching release. A release always
// applies the opposite delta, even when no press was recorded, so a stray
// release leaves the paddle drifting.
func (s *State) HandleKey(c Control, pressed bool) {
	if !c.Valid() {
		return
	}

	paddle := &s.P2
	if c == ControlP1Up || c == ControlP1Down {
		paddle = &s.P1
	}

	delta := s.Params.PlayerSpeed
	if !c.isUp() {
		delta = -delta
	}

	if pressed {
		if s.Held[c] {
			return
		}
		s.Held[c] = true
		paddle.Vel.Y += delta
		return
	}

	s.Held[c] = false
	paddle.Vel.Y -= delta
}

// IsHeld reports whether the control is currently held down
func (s *State) IsHeld(c Control) bool {
	return c.Valid() && s.Held[c]
}
