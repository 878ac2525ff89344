package config

// StorageConfig names where player settings are persisted. Scores are
// never stored.
type StorageConfig struct {
	AppName     string
	SettingsKey string
}

// DefaultStorage returns the default storage location.
func DefaultStorage() StorageConfig {
	return StorageConfig{
		AppName:     AppName,
		SettingsKey: "settings",
	}
}
