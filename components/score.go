package components

import "github.com/yohamta/donburi"

// ScoreData is the (left, right) score pair. Singleton.
type ScoreData struct {
	Left  int
	Right int
}

var Score = donburi.NewComponentType[ScoreData]()
