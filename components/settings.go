package components

import "github.com/yohamta/donburi"

// SettingsData stores player preferences. Singleton, persisted between runs.
type SettingsData struct {
	Muted      bool
	Fullscreen bool
	Debug      bool // Draw collision objects and ball/paddle overlap
}

var Settings = donburi.NewComponentType[SettingsData]()
