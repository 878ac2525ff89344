package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug creates the renderer that outlines every collision object and
// marks paddles the ball is passing through.
func NewDrawDebug(c *cfg.Config) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateSettings(e).Debug {
			return
		}

		overlaps := BallPaddleOverlaps(e)
		overlapping := make(map[*resolv.Object]bool, len(overlaps))
		for _, obj := range overlaps {
			overlapping[obj] = true
		}

		if spaceEntry, ok := components.Space.First(e.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				clr := c.Debug.ObjectColour
				if overlapping[obj] {
					clr = c.Debug.OverlapColour
				}
				drawOutline(screen, obj, clr)
			}
		}

		ball := "-"
		if entry, ok := components.Ball.First(e.World); ok {
			b := components.Ball.Get(entry)
			ball = fmt.Sprintf("(%.0f, %.0f) v(%.0f, %.0f)", b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"TPS: %.1f  mode: %s\nball: %s\npaddle overlaps: %d (not resolved)",
			ebiten.ActualTPS(), GetOrCreateMode(e), ball, len(overlaps),
		), 8, c.Height-56)
	}
}

func drawOutline(screen *ebiten.Image, obj *resolv.Object, clr color.RGBA) {
	vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, clr, false)
}
