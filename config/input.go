package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionCancel
	ActionPaddleUp
	ActionPaddleDown
	ActionPointerPress
	ActionToggleMute
	ActionToggleFullscreen
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// DefaultInput returns the default key and mouse bindings.
func DefaultInput() InputConfig {
	return InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionCancel: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionPaddleUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
			},
			ActionPaddleDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
			},
			ActionPointerPress: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
