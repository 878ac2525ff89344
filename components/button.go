package components

import (
	"image/color"

	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
)

// ButtonData stores a clickable menu region
type ButtonData struct {
	Label        string
	Position     gamemath.Vec2 // Top-left of the label text
	Bounds       gamemath.Rect
	BaseColour   color.RGBA
	ActiveColour color.RGBA // BaseColour, or its inverse while hovered
	PlayerCount  int        // Players selected when clicked
}

var Button = donburi.NewComponentType[ButtonData]()
