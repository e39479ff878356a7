package game

// Field is the visible play area in world units, supplied by the host every
// frame.
type Field struct {
	Width, Height float64
}

func (f Field) HalfWidth() float64 {
	return f.Width / 2
}

func (f Field) HalfHeight() float64 {
	return f.Height / 2
}

// Project maps a world position to host coordinates, where the origin is the
// top-left corner of the field and Y grows downward.
func (f Field) Project(pos Vec2) (x, y float64) {
	return f.HalfWidth() + pos.X, f.HalfHeight() - pos.Y
}
