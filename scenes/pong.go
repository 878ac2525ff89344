package scenes

import (
	"image/color"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/incarnadined/pong/fonts"
	"github.com/incarnadined/pong/systems"
	"github.com/incarnadined/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionCellSize is the resolv space cell size in pixels.
const collisionCellSize = 16

// LoadFonts registers every face the scene draws with. Call it before the
// first Update.
func LoadFonts(c *cfg.Config) error {
	return fonts.LoadDefaults(fonts.Sizes{
		fonts.Title:  c.Fonts.TitleSize,
		fonts.Button: c.Fonts.ButtonSize,
		fonts.Score:  c.Fonts.ScoreSize,
	})
}

// Options are the external collaborators a PongScene talks to.
type Options struct {
	Input systems.InputSource   // Defaults to systems.EbitenInput
	Rand  *rand.Rand            // Required
	SFX   *systems.SFXPlayer    // Optional; nil plays nothing
	Store *systems.SettingsStore // Optional; nil keeps settings in memory
	Saved *systems.SavedSettings // Settings restored at startup, may be nil
}

// PongScene owns the whole game: every entity, the score and the
// Menu | Playing mode live in its ECS world.
type PongScene struct {
	ecs    *ecs.ECS
	config *cfg.Config
	opts   Options
	once   sync.Once
}

// NewPongScene creates the game scene. The world is built on the first Update.
func NewPongScene(c *cfg.Config, opts Options) *PongScene {
	if opts.Input == nil {
		opts.Input = systems.EbitenInput{}
	}
	return &PongScene{config: c, opts: opts}
}

// Update runs one frame. It returns ebiten.Termination once the window has
// been asked to close.
func (ps *PongScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsQuitRequested(ps.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Mode returns the current game mode.
func (ps *PongScene) Mode() components.ModeData {
	ps.once.Do(ps.configure)
	return *systems.GetOrCreateMode(ps.ecs)
}

// Score returns the current (left, right) score.
func (ps *PongScene) Score() components.ScoreData {
	ps.once.Do(ps.configure)
	return *systems.GetOrCreateScore(ps.ecs)
}

// ECS exposes the scene's world, building it if needed.
func (ps *PongScene) ECS() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

func (ps *PongScene) configure() {
	c := ps.config

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so last frame's sounds play promptly)
	ecs.AddSystem(systems.NewUpdateAudio(ps.opts.SFX))

	ecs.AddSystem(systems.NewUpdateInput(c, ps.opts.Input))
	ecs.AddSystem(systems.NewUpdateSettings(ps.opts.Store))
	ecs.AddSystem(systems.NewUpdateMode(c))
	ecs.AddSystem(systems.UpdateButtons)
	ecs.AddSystem(systems.NewUpdatePaddles(c))
	ecs.AddSystem(systems.NewUpdateBall(c, ps.opts.Rand))
	ecs.AddSystem(systems.NewUpdateTitle(c))
	ecs.AddSystem(systems.UpdateObjects)

	ecs.AddRenderer(cfg.Default, systems.NewDrawBackground(c))
	ecs.AddRenderer(cfg.Default, systems.DrawTitle)
	ecs.AddRenderer(cfg.Default, systems.DrawButtons)
	ecs.AddRenderer(cfg.Default, systems.NewDrawDivider(c))
	ecs.AddRenderer(cfg.Default, systems.DrawPaddles)
	ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ecs.AddRenderer(cfg.Default, systems.NewDrawScore(c))
	ecs.AddRenderer(cfg.Overlay, systems.NewDrawDebug(c))

	ps.ecs = ecs

	*systems.GetOrCreateSettings(ecs) = ps.opts.Saved.ToSettingsData()
	*systems.GetOrCreateMode(ecs) = components.MenuMode()
	systems.GetOrCreateScore(ecs)

	factory.CreateSpace(ecs, c.Width, c.Height, collisionCellSize, collisionCellSize)
	for i := range c.Paddle.Spawns {
		factory.CreatePaddle(ecs, c, i)
	}
	factory.CreateBall(ecs, c, ps.opts.Rand)

	buttonFace := fonts.Button.Get()
	for _, bc := range c.Menu.Buttons {
		factory.CreateButton(ecs, bc, buttonFace, c.Menu.ButtonPadding, cfg.Highlight)
	}
	factory.CreateTitle(ecs, c, cfg.Highlight)
	systems.RestartTitle(ecs, c)
}
