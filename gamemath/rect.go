package gamemath

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns the rectangle at position with the given size.
func NewRect(position Vec2, w, h float64) Rect {
	return Rect{X: position.X, Y: position.Y, W: w, H: h}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Position() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}
