package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// InputSource is the raw device state polled once per frame.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
	IsWindowBeingClosed() bool
}

// EbitenInput reads devices through ebiten.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) IsWindowBeingClosed() bool {
	return ebiten.IsWindowBeingClosed()
}

// NewUpdateInput creates the system that polls src into the Input component.
// Must run BEFORE every system that reads actions.
func NewUpdateInput(c *cfg.Config, src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range c.Input.Bindings {
			for _, key := range binding.Keys {
				if src.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
			for _, btn := range binding.MouseButtons {
				if src.IsMouseButtonPressed(btn) {
					input.Current[actionID] = true
				}
			}
		}

		x, y := src.CursorPosition()
		input.Pointer = gamemath.Vec2{X: float64(x), Y: float64(y)}
		input.CloseRequested = src.IsWindowBeingClosed()
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IsQuitRequested reports whether the window close button was pressed this frame.
func IsQuitRequested(e *ecs.ECS) bool {
	return getOrCreateInput(e).CloseRequested
}
