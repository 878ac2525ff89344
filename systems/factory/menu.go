package factory

import (
	"image/color"

	"github.com/incarnadined/pong/archetypes"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/fonts"
	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// CreateButton spawns a menu button sized to its label plus padding.
func CreateButton(ecs *ecs.ECS, bc cfg.ButtonConfig, face font.Face, padding float64, colour color.RGBA) *donburi.Entry {
	w, h := fonts.Measure(face, bc.Label)
	return CreateButtonWithBounds(ecs, bc, gamemath.NewRect(bc.Position, w+padding, h+padding), colour)
}

// CreateButtonWithBounds spawns a menu button with an explicit hit rectangle.
func CreateButtonWithBounds(ecs *ecs.ECS, bc cfg.ButtonConfig, bounds gamemath.Rect, colour color.RGBA) *donburi.Entry {
	button := archetypes.Button.Spawn(ecs)
	components.Button.SetValue(button, components.ButtonData{
		Label:        bc.Label,
		Position:     bc.Position,
		Bounds:       bounds,
		BaseColour:   colour,
		ActiveColour: colour,
		PlayerCount:  bc.PlayerCount,
	})
	return button
}

// CreateTitle spawns the menu heading at its resting position.
func CreateTitle(ecs *ecs.ECS, c *cfg.Config, colour color.RGBA) *donburi.Entry {
	title := archetypes.Title.Spawn(ecs)
	components.Title.SetValue(title, components.TitleData{
		Text:     c.Menu.Title,
		Position: c.Menu.TitlePosition,
		Colour:   colour,
	})
	return title
}
