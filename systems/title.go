package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/fonts"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RestartTitle drops the title in from above the screen.
func RestartTitle(e *ecs.ECS, c *cfg.Config) {
	components.Title.Each(e.World, func(entry *donburi.Entry) {
		title := components.Title.Get(entry)
		title.Position.Y = c.Menu.TitleStartY
		title.Tween = gween.New(
			float32(c.Menu.TitleStartY),
			float32(c.Menu.TitlePosition.Y),
			c.Menu.TitleDuration,
			ease.OutBounce,
		)
	})
}

// NewUpdateTitle creates the system that advances the title tween in the menu.
func NewUpdateTitle(c *cfg.Config) ecs.System {
	dt := float32(1.0 / float64(c.FrameRate))

	return func(e *ecs.ECS) {
		if !GetOrCreateMode(e).IsMenu() {
			return
		}

		components.Title.Each(e.World, func(entry *donburi.Entry) {
			title := components.Title.Get(entry)
			if title.Tween == nil {
				return
			}
			y, finished := title.Tween.Update(dt)
			title.Position.Y = float64(y)
			if finished {
				title.Position.Y = c.Menu.TitlePosition.Y
				title.Tween = nil
			}
		})
	}
}

// DrawTitle renders the menu heading.
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateMode(e).IsMenu() {
		return
	}
	face := fonts.Title.Get()
	ascent := fonts.Ascent(face)

	components.Title.Each(e.World, func(entry *donburi.Entry) {
		title := components.Title.Get(entry)
		text.Draw(screen, title.Text, face, int(title.Position.X), int(title.Position.Y)+ascent, title.Colour)
	})
}
