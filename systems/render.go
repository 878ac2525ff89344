package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawBackground creates the renderer that clears the arena.
func NewDrawBackground(c *cfg.Config) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(c.Background)
	}
}

// NewDrawDivider creates the renderer for the dashed centre line.
func NewDrawDivider(c *cfg.Config) func(*ecs.ECS, *ebiten.Image) {
	d := c.Divider
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateMode(e).IsPlaying() {
			return
		}
		for i := 0; i < d.Count; i++ {
			y := d.StartY + float64(i)*d.Spacing
			vector.FillRect(screen, float32(d.X), float32(y), float32(d.Width), float32(d.Height), c.Paddle.Colour, false)
		}
	}
}

// ScoreText formats the score pair the way it is shown on screen.
func ScoreText(c *cfg.Config, left, right int) string {
	return fmt.Sprintf("%d%s%d", left, c.Score.Separator, right)
}

// NewDrawScore creates the renderer for the score, centred at the top.
func NewDrawScore(c *cfg.Config) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateMode(e).IsPlaying() {
			return
		}
		score := GetOrCreateScore(e)
		face := fonts.Score.Get()

		s := ScoreText(c, score.Left, score.Right)
		w, _ := fonts.Measure(face, s)
		x := float64(c.Width)/2 - w/2
		text.Draw(screen, s, face, int(x), int(c.Score.Y)+fonts.Ascent(face), c.Ball.Colour)
	}
}
