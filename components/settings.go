package components

import "github.com/yohamta/donburi"

// SettingsData holds the player-facing options that persist across runs.
type SettingsData struct {
	Debug      bool // debug overlay enabled
	LevelIndex int  // last level picked in the menu
}

var Settings = donburi.NewComponentType[SettingsData]()
