package tags

import "github.com/yohamta/donburi"

var (
	Ball   = donburi.NewTag().SetName("Ball")
	Paddle = donburi.NewTag().SetName("Paddle")
	Button = donburi.NewTag().SetName("Button")
	Title  = donburi.NewTag().SetName("Title")
)

// Resolv tags for collision objects
const (
	ResolvBall   = "ball"
	ResolvPaddle = "paddle"
)
