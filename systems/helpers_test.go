package systems

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/incarnadined/pong/archetypes"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeInput is a scriptable InputSource.
type fakeInput struct {
	keys    map[ebiten.Key]bool
	buttons map[ebiten.MouseButton]bool
	x, y    int
	closing bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:    map[ebiten.Key]bool{},
		buttons: map[ebiten.MouseButton]bool{},
	}
}

func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool { return f.keys[key] }

func (f *fakeInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return f.buttons[button]
}

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }

func (f *fakeInput) IsWindowBeingClosed() bool { return f.closing }

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func spawnBall(e *ecs.ECS, c *cfg.Config, position, velocity gamemath.Vec2) *components.BallData {
	entry := e.World.Entry(e.World.Create(components.Ball))
	center := gamemath.Vec2{X: float64(c.Width) / 2, Y: float64(c.Height) / 2}
	components.Ball.SetValue(entry, components.BallData{
		Position:        position,
		InitialPosition: center,
		Velocity:        velocity,
		Radius:          c.Ball.Radius,
		Colour:          c.Ball.Colour,
	})
	return components.Ball.Get(entry)
}

func spawnPaddle(e *ecs.ECS, c *cfg.Config, index int) *components.PaddleData {
	entry := e.World.Entry(e.World.Create(components.Paddle))
	spawn := c.Paddle.Spawns[index]
	components.Paddle.SetValue(entry, components.PaddleData{
		Index:           index,
		Position:        spawn,
		InitialPosition: spawn,
		Width:           c.Paddle.Width,
		Height:          c.Paddle.Height,
		Bounds:          gamemath.NewRect(spawn, c.Paddle.Width, c.Paddle.Height),
		Colour:          c.Paddle.Colour,
	})
	return components.Paddle.Get(entry)
}

func spawnButton(e *ecs.ECS, label string, bounds gamemath.Rect, playerCount int) *components.ButtonData {
	entry := archetypes.Button.Spawn(e)
	components.Button.SetValue(entry, components.ButtonData{
		Label:        label,
		Position:     bounds.Position(),
		Bounds:       bounds,
		BaseColour:   cfg.Highlight,
		ActiveColour: cfg.Highlight,
		PlayerCount:  playerCount,
	})
	return components.Button.Get(entry)
}
