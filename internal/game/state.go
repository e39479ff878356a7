package game

import "math"

// Events reports what happened during one frame
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventGoalP1 // player 1 scored
	EventGoalP2 // player 2 scored
)

// Has reports whether all bits of e2 are set
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// SpeedLimiter adjusts the ball's vertical velocity once per frame
type SpeedLimiter func(vy float64) float64

// NoSpeedLimit leaves the vertical velocity untouched
func NoSpeedLimit(vy float64) float64 {
	return vy
}

// ClampSpeed limits the magnitude of the vertical velocity to maxVY
func ClampSpeed(maxVY float64) SpeedLimiter {
	return func(vy float64) float64 {
		return math.Max(-maxVY, math.Min(maxVY, vy))
	}
}

// State is the complete simulation. It is owned by a single host loop and
// must not be shared between goroutines.
type State struct {
	Params Params
	Limit  SpeedLimiter

	P1   Paddle
	P2   Paddle
	Ball Ball

	P1Score int
	P2Score int

	Held [controlCount]bool

	rng RandomSource
}

// NewState creates a fresh match with the ball already served
func NewState(params Params, rng RandomSource) *State {
	s := &State{
		Params: params,
		Limit:  NoSpeedLimit,
		P1:     NewPaddle(-params.PaddleX),
		P2:     NewPaddle(params.PaddleX),
		rng:    rng,
	}
	s.Ball.Reset(params, rng)
	return s
}

// Update runs one frame
func (s *State) Update(field Field) Events {
	var ev Events
	p := s.Params

	s.Ball.Move()
	s.P1.Move()
	s.P2.Move()

	// Paddle 1 wins ties; paddle 2 is not checked once paddle 1 hits.
	if p.Overlaps(s.P1.Pos, s.Ball.Pos) {
		s.bounceOff(&s.P1)
		ev |= EventPaddleHit
	} else if p.Overlaps(s.P2.Pos, s.Ball.Pos) {
		s.bounceOff(&s.P2)
		ev |= EventPaddleHit
	}

	limit := s.Limit
	if limit == nil {
		limit = NoSpeedLimit
	}
	s.Ball.Vel.Y = limit(s.Ball.Vel.Y)

	if p.TouchesCeilingOrFloor(s.Ball.Pos, field.HalfHeight()) {
		s.Ball.BounceVertical()
		ev |= EventWallBounce
	}

	if p.PassedLeft(s.Ball.Pos, field.HalfWidth()) {
		s.P2Score++
		s.Ball.Reset(p, s.rng)
		ev |= EventGoalP2
	}

	if p.PassedRight(s.Ball.Pos, field.HalfWidth()) {
		s.P1Score++
		s.Ball.Reset(p, s.rng)
		ev |= EventGoalP1
	}

	top, bottom := s.wrapBounds(field)
	s.P1.Wrap(top, bottom)
	s.P2.Wrap(top, bottom)

	return ev
}

// bounceOff reflects the ball horizontally, transfers part of the paddle's
// vertical speed and moves the ball once more with the new velocity.
func (s *State) bounceOff(paddle *Paddle) {
	s.Ball.Vel.X = -s.Ball.Vel.X
	s.Ball.Vel.Y += paddle.Vel.Y * s.Params.SpeedTransferRate
	s.Ball.Move()
}

func (s *State) wrapBounds(field Field) (top, bottom float64) {
	top = field.HalfHeight() + s.Params.TopMargin + s.Params.PaddleHeight
	bottom = -field.HalfHeight() - s.Params.TopMargin
	return top, bottom
}
