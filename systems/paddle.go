package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResetPaddle puts the paddle back where it started.
func ResetPaddle(p *components.PaddleData) {
	p.Position = p.InitialPosition
}

// FollowPointer centres the paddle vertically on the pointer. X is fixed.
func FollowPointer(p *components.PaddleData, pointerY float64) {
	p.Position.Y = pointerY - p.Height/2
}

// FollowKeys moves the paddle by step while up or down is held. Up wins when
// both are held. The paddle is not clamped to the arena.
func FollowKeys(p *components.PaddleData, up, down bool, step float64) {
	if up {
		p.Position.Y -= step
		return
	}
	if down {
		p.Position.Y += step
	}
}

// SyncPaddleBounds recomputes the bounding rectangle from the current position.
func SyncPaddleBounds(p *components.PaddleData) {
	p.Bounds = gamemath.NewRect(p.Position, p.Width, p.Height)
}

// NewUpdatePaddles creates the system that drives each paddle by its control
// scheme while playing.
func NewUpdatePaddles(c *cfg.Config) ecs.System {
	return func(e *ecs.ECS) {
		mode := GetOrCreateMode(e)
		if !mode.IsPlaying() {
			return
		}
		input := getOrCreateInput(e)

		components.Paddle.Each(e.World, func(entry *donburi.Entry) {
			p := components.Paddle.Get(entry)
			switch p.Index {
			case components.PaddlePointer:
				FollowPointer(p, input.Pointer.Y)
			case components.PaddleKeys:
				if mode.PlayerCount == 2 {
					FollowKeys(p,
						GetAction(input, cfg.ActionPaddleUp).Pressed,
						GetAction(input, cfg.ActionPaddleDown).Pressed,
						c.Paddle.Step,
					)
				}
			}
		})
	}
}

// ResetPaddles returns every paddle to its initial position.
func ResetPaddles(e *ecs.ECS) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		ResetPaddle(components.Paddle.Get(entry))
	})
}

// DrawPaddles renders the paddles while playing, refreshing their bounds.
func DrawPaddles(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateMode(e).IsPlaying() {
		return
	}

	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Paddle.Get(entry)
		SyncPaddleBounds(p)
		vector.FillRect(
			screen,
			float32(p.Bounds.X), float32(p.Bounds.Y),
			float32(p.Bounds.W), float32(p.Bounds.H),
			p.Colour,
			false,
		)
	})
}
