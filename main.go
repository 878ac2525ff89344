package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/scenes"
	"github.com/incarnadined/pong/systems"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	config *config.Config
	scene  Scene
}

func NewGame(c *config.Config, opts scenes.Options) *Game {
	return &Game{
		config: c,
		scene:  scenes.NewPongScene(c, opts),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.config.Width, g.config.Height
}

func main() {
	c := config.New()

	if err := scenes.LoadFonts(c); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowTitle(c.Caption)
	ebiten.SetTPS(c.FrameRate)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	store, err := systems.OpenSettingsStore(c.Storage)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := store.Load()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	if saved != nil && saved.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	game := NewGame(c, scenes.Options{
		Input: systems.EbitenInput{},
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		SFX:   systems.NewSFXPlayer(c.Audio),
		Store: store,
		Saved: saved,
	})

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
