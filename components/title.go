package components

import (
	"image/color"

	"github.com/incarnadined/pong/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TitleData is the menu heading and its drop-in tween
type TitleData struct {
	Text     string
	Position gamemath.Vec2
	Colour   color.RGBA
	Tween    *gween.Tween // nil once the animation has finished
}

var Title = donburi.NewComponentType[TitleData]()
