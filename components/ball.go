package components

import (
	"image/color"

	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
)

// BallData stores the ball's motion state
type BallData struct {
	Position        gamemath.Vec2
	InitialPosition gamemath.Vec2 // Respawn point; Y is re-rolled on each respawn
	Velocity        gamemath.Vec2 // Units per second
	Radius          float64
	Colour          color.RGBA
}

var Ball = donburi.NewComponentType[BallData]()
