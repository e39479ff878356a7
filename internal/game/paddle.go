package game

// Paddle is a player-controlled body that only moves vertically
type Paddle struct {
	Pos Vec2
	Vel Vec2
}

// NewPaddle creates a resting paddle at x
func NewPaddle(x float64) Paddle {
	return Paddle{Pos: Vec2{X: x}}
}

// Move advances the paddle by its velocity
func (p *Paddle) Move() {
	p.Pos = p.Pos.Add(p.Vel)
}

// Wrap teleports a paddle that left the vertical play area to the opposite
// edge. top and bottom are the wrap thresholds.
func (p *Paddle) Wrap(top, bottom float64) {
	if p.Pos.Y > top {
		p.Pos.Y = bottom
	}
	if p.Pos.Y < bottom {
		p.Pos.Y = top
	}
}
