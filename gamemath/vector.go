package gamemath

import "math"

// Vec2 is a 2D vector. It is a plain value; only Accumulate mutates.
type Vec2 struct {
	X, Y float64
}

// Polar builds a vector from a length and an angle in degrees measured
// anticlockwise from the x axis.
func Polar(radius, angleDegrees float64) Vec2 {
	theta := math.Pi * angleDegrees / 180
	return Vec2{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}

// Scale returns v multiplied componentwise by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Accumulate adds delta to v in place and returns v for chaining.
func (v *Vec2) Accumulate(delta Vec2) *Vec2 {
	v.X += delta.X
	v.Y += delta.Y
	return v
}

// Component returns X for index 0 and Y for any other index.
func (v Vec2) Component(index int) float64 {
	if index == 0 {
		return v.X
	}
	return v.Y
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}
