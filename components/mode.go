package components

import "github.com/yohamta/donburi"

// ModeKind tags which variant a ModeData holds
type ModeKind int

const (
	ModeMenu ModeKind = iota
	ModePlaying
)

// ModeData is the Menu | Playing{PlayerCount} game mode. Singleton.
// PlayerCount is only meaningful while Playing.
type ModeData struct {
	Kind        ModeKind
	PlayerCount int
}

// MenuMode returns the Menu variant.
func MenuMode() ModeData {
	return ModeData{Kind: ModeMenu}
}

// PlayingMode returns the Playing variant for one or two players.
func PlayingMode(playerCount int) ModeData {
	return ModeData{Kind: ModePlaying, PlayerCount: playerCount}
}

func (m ModeData) IsMenu() bool {
	return m.Kind == ModeMenu
}

func (m ModeData) IsPlaying() bool {
	return m.Kind == ModePlaying
}

func (m ModeData) String() string {
	switch m.Kind {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		if m.PlayerCount == 1 {
			return "playing (1 player)"
		}
		return "playing (2 players)"
	}
	return "unknown"
}

var Mode = donburi.NewComponentType[ModeData]()
