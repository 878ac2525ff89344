package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBounce
	SoundScore
	SoundMenuSelect
)

// ToneConfig describes a synthesized square-wave blip
type ToneConfig struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
	Tones      map[SoundID]ToneConfig
}

// DefaultAudio returns the default sound configuration.
func DefaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		Tones: map[SoundID]ToneConfig{
			SoundBounce:     {Frequency: 440, Duration: 0.05, Volume: 0.6},
			SoundScore:      {Frequency: 220, Duration: 0.25, Volume: 0.8},
			SoundMenuSelect: {Frequency: 660, Duration: 0.08, Volume: 0.6},
		},
	}
}
