package components

import (
	"image/color"

	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
)

// Paddle indices. The pointer always drives PaddlePointer; the keyboard
// drives PaddleKeys in two-player games only.
const (
	PaddlePointer = 0
	PaddleKeys    = 1
)

type PaddleData struct {
	Index           int
	Position        gamemath.Vec2
	InitialPosition gamemath.Vec2
	Width           float64
	Height          float64
	Bounds          gamemath.Rect // Recomputed from Position on every draw
	Colour          color.RGBA
}

var Paddle = donburi.NewComponentType[PaddleData]()
