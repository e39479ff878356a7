package game

// Ball is the square body bouncing between the paddles
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.Vel.Y = -b.Vel.Y
}

// Respawn returns a serve from the field center. The horizontal speed is
// fixed with a random sign; the vertical speed is a random fraction of it.
func (p Params) Respawn(rng RandomSource) (pos, vel Vec2) {
	xDir := rng.Sign()
	yDir := rng.Sign()
	yScalar := rng.Float64()

	vel = Vec2{
		X: p.BallHorizontalSpeed * xDir,
		Y: p.BallHorizontalSpeed * yScalar * yDir,
	}
	return Vec2{}, vel
}

// Reset serves the ball again, discarding its previous motion
func (b *Ball) Reset(p Params, rng RandomSource) {
	b.Pos, b.Vel = p.Respawn(rng)
}
