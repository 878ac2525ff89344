package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSettings creates the system handling the mute, fullscreen and
// debug hot-keys. Every change is persisted to store.
func NewUpdateSettings(store *SettingsStore) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		settings := GetOrCreateSettings(e)
		changed := false

		if GetAction(input, cfg.ActionToggleMute).JustPressed {
			settings.Muted = !settings.Muted
			changed = true
		}
		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			settings.Fullscreen = !settings.Fullscreen
			ebiten.SetFullscreen(settings.Fullscreen)
			changed = true
		}
		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			settings.Debug = !settings.Debug
			changed = true
		}

		if changed {
			SaveCurrentSettings(store, settings)
		}
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
