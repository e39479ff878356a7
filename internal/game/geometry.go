package game

// The collision box of a body is anchored at an offset from its nominal
// position rather than centered on it. Renderers mark the same anchor, so
// these offsets must not be replaced with a centered box.

// adjustBall returns the collision anchor of the ball
func (p Params) adjustBall(ball Vec2) Vec2 {
	return Vec2{X: ball.X - p.PaddleWidth/2, Y: ball.Y + p.PaddleWidth/2}
}

// adjustPaddle returns the collision anchor of a paddle
func (p Params) adjustPaddle(paddle Vec2) Vec2 {
	return Vec2{X: paddle.X - p.PaddleWidth/2, Y: paddle.Y + p.PaddleHeight/2}
}

// BallAnchor exposes the ball collision anchor for renderers
func (p Params) BallAnchor(ball Vec2) Vec2 {
	return p.adjustBall(ball)
}

// PaddleAnchor exposes the paddle collision anchor for renderers
func (p Params) PaddleAnchor(paddle Vec2) Vec2 {
	return p.adjustPaddle(paddle)
}

// Overlaps reports whether the paddle and ball footprints intersect on both
// axes.
func (p Params) Overlaps(paddle, ball Vec2) bool {
	pa := p.adjustPaddle(paddle)
	ba := p.adjustBall(ball)
	w, h := p.PaddleWidth, p.PaddleHeight

	xOverlap := (ba.X >= pa.X && ba.X < pa.X+w) ||
		(pa.X >= ba.X && pa.X < ba.X+w)

	yOverlap := (ba.Y <= pa.Y && ba.Y > pa.Y-h) ||
		(pa.Y <= ba.Y && pa.Y > ba.Y-w)

	return xOverlap && yOverlap
}

// TouchesCeilingOrFloor reports whether the ball crossed the top or bottom
// edge of the field.
func (p Params) TouchesCeilingOrFloor(ball Vec2, halfHeight float64) bool {
	b := p.adjustBall(ball)
	return b.Y-p.PaddleWidth < -halfHeight || b.Y > halfHeight
}

// PassedLeft reports whether the ball crossed the left goal line
func (p Params) PassedLeft(ball Vec2, halfWidth float64) bool {
	b := p.adjustBall(ball)
	return b.X < -halfWidth-p.SideMargin
}

// PassedRight reports whether the ball crossed the right goal line
func (p Params) PassedRight(ball Vec2, halfWidth float64) bool {
	b := p.adjustBall(ball)
	return b.X+p.PaddleWidth > halfWidth+p.SideMargin
}
