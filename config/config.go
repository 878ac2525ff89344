package config

import (
	"image/color"

	"github.com/incarnadined/pong/gamemath"
)

// Core constants. These are part of the game's contract and are not
// configurable at runtime.
const (
	Width     = 1200
	Height    = 800
	FrameRate = 60
	BallSpeed = 500.0 // units per second
	Caption   = "Pong"
	AppName   = "pong"
)

// Highlight is the foreground colour used for every entity.
var Highlight = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// BallConfig contains ball configuration values
type BallConfig struct {
	Radius float64
	Colour color.RGBA
}

// PaddleConfig contains paddle geometry and keyboard movement step
type PaddleConfig struct {
	Width  float64
	Height float64
	Step   float64 // pixels per frame while a key is held
	Colour color.RGBA

	// Spawns holds the initial position of each paddle. Index 0 follows
	// the pointer, index 1 follows the keyboard in two-player games.
	Spawns [2]gamemath.Vec2
}

// ButtonConfig describes one menu button
type ButtonConfig struct {
	Label       string
	Position    gamemath.Vec2
	PlayerCount int
}

type MenuConfig struct {
	Title         string
	TitlePosition gamemath.Vec2
	// Title drops in from TitleStartY to TitlePosition.Y when the menu opens
	TitleStartY   float64
	TitleDuration float32 // seconds
	Buttons       []ButtonConfig
	ButtonPadding float64
}

// DividerConfig describes the dashed centre line
type DividerConfig struct {
	X       float64
	Width   float64
	Height  float64
	Spacing float64
	StartY  float64
	Count   int
}

type ScoreConfig struct {
	Y         float64
	Separator string
}

type FontConfig struct {
	TitleSize  float64
	ButtonSize float64
	ScoreSize  float64
}

type DebugConfig struct {
	ObjectColour  color.RGBA
	OverlapColour color.RGBA
}

// Config is the full game configuration. Build it with New and pass it to
// the scene; nothing reads it from a package variable.
type Config struct {
	Width     int
	Height    int
	FrameRate int
	BallSpeed float64
	Caption   string

	Background color.RGBA

	Ball    BallConfig
	Paddle  PaddleConfig
	Menu    MenuConfig
	Divider DividerConfig
	Score   ScoreConfig
	Fonts   FontConfig
	Debug   DebugConfig
	Input   InputConfig
	Audio   AudioConfig
	Storage StorageConfig
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Width:     Width,
		Height:    Height,
		FrameRate: FrameRate,
		BallSpeed: BallSpeed,
		Caption:   Caption,

		Background: color.RGBA{A: 255}, // Highlight inverted

		Ball: BallConfig{
			Radius: 12,
			Colour: Highlight,
		},

		Paddle: PaddleConfig{
			Width:  15,
			Height: 80,
			Step:   10,
			Colour: Highlight,
			Spawns: [2]gamemath.Vec2{
				{X: 1150, Y: 380},
				{X: 50, Y: 380},
			},
		},

		Menu: MenuConfig{
			Title:         "PONG",
			TitlePosition: gamemath.Vec2{X: 350, Y: 40},
			TitleStartY:   -220,
			TitleDuration: 0.8,
			Buttons: []ButtonConfig{
				{Label: "1 Player", Position: gamemath.Vec2{X: 150, Y: 600}, PlayerCount: 1},
				{Label: "2 Players", Position: gamemath.Vec2{X: 650, Y: 600}, PlayerCount: 2},
			},
			ButtonPadding: 10,
		},

		Divider: DividerConfig{
			X:       590,
			Width:   5,
			Height:  15,
			Spacing: 30,
			StartY:  -30,
			Count:   Height / 15,
		},

		Score: ScoreConfig{
			Y:         30,
			Separator: "   ",
		},

		Fonts: FontConfig{
			TitleSize:  200,
			ButtonSize: 100,
			ScoreSize:  150,
		},

		Debug: DebugConfig{
			ObjectColour:  color.RGBA{R: 0, G: 255, B: 255, A: 255},
			OverlapColour: color.RGBA{R: 255, G: 0, B: 0, A: 255},
		},

		Input:   DefaultInput(),
		Audio:   DefaultAudio(),
		Storage: DefaultStorage(),
	}
}
