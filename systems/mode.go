package systems

import (
	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMode creates the system that drives the Menu | Playing state
// machine:
//
//	Menu       --"1 Player" clicked-->  Playing(1)
//	Menu       --"2 Players" clicked--> Playing(2)
//	Playing(n) --cancel-->              Menu (score and paddles reset)
func NewUpdateMode(c *cfg.Config) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		mode := GetOrCreateMode(e)

		if GetAction(input, cfg.ActionCancel).JustPressed {
			EnterMenu(e, c, mode.IsPlaying())
			return
		}

		if !mode.IsMenu() || !GetAction(input, cfg.ActionPointerPress).JustPressed {
			return
		}

		selected := 0
		components.Button.Each(e.World, func(entry *donburi.Entry) {
			b := components.Button.Get(entry)
			if selected == 0 && IsClicked(b, input.Pointer) {
				selected = b.PlayerCount
			}
		})
		if selected != 0 {
			StartGame(e, selected)
		}
	}
}

// EnterMenu switches to the menu, clearing the score and returning both
// paddles to their start. The title animation replays when coming from a game.
func EnterMenu(e *ecs.ECS, c *cfg.Config, replayTitle bool) {
	*GetOrCreateMode(e) = components.MenuMode()
	*GetOrCreateScore(e) = components.ScoreData{}
	ResetPaddles(e)
	if replayTitle {
		RestartTitle(e, c)
	}
}

// StartGame switches to play with the given number of players.
func StartGame(e *ecs.ECS, playerCount int) {
	*GetOrCreateMode(e) = components.PlayingMode(playerCount)
	PlaySFX(e, cfg.SoundMenuSelect)
}

// GetOrCreateMode returns the singleton Mode component, creating it in the
// Menu state if needed
func GetOrCreateMode(e *ecs.ECS) *components.ModeData {
	entry, ok := components.Mode.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Mode))
		components.Mode.SetValue(entry, components.MenuMode())
	}
	return components.Mode.Get(entry)
}

// GetOrCreateScore returns the singleton Score component, creating if needed
func GetOrCreateScore(e *ecs.ECS) *components.ScoreData {
	entry, ok := components.Score.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Score))
	}
	return components.Score.Get(entry)
}
