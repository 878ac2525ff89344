package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/incarnadined/pong/assets"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/yohamta/donburi/ecs"
)

// SFXPlayer plays synthesized sound effects. An ebiten audio context may only
// be created once per process, so one SFXPlayer is shared by every scene.
type SFXPlayer struct {
	config   cfg.AudioConfig
	initOnce sync.Once
	context  *audio.Context
	samples  map[cfg.SoundID][]byte
}

func NewSFXPlayer(c cfg.AudioConfig) *SFXPlayer {
	return &SFXPlayer{config: c}
}

// init creates the audio context and renders every tone once (called once)
func (p *SFXPlayer) init() {
	p.initOnce.Do(func() {
		p.context = audio.NewContext(p.config.SampleRate)
		p.samples = make(map[cfg.SoundID][]byte, len(p.config.Tones))
		for id, tone := range p.config.Tones {
			p.samples[id] = assets.SquareWave(p.config.SampleRate, tone.Frequency, tone.Duration, tone.Volume)
		}
	})
}

func (p *SFXPlayer) play(sound cfg.SoundID) {
	data, ok := p.samples[sound]
	if !ok || len(data) == 0 {
		return
	}
	player := p.context.NewPlayerFromBytes(data)
	player.SetVolume(p.config.SFXVolume)
	player.Play()
}

// NewUpdateAudio creates the system that drains queued sound effects. With a
// nil player, or while muted, the queue is discarded.
func NewUpdateAudio(player *SFXPlayer) ecs.System {
	return func(e *ecs.ECS) {
		audioData := GetOrCreateAudio(e)
		if player != nil && !GetOrCreateSettings(e).Muted {
			player.init()
			for _, soundID := range audioData.PendingSFX {
				player.play(soundID)
			}
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
