package components

import "github.com/yohamta/donburi"

// MenuData holds the main menu's selection state. The option list is the
// level names followed by Exit.
type MenuData struct {
	SelectedIndex int
	LevelNames    []string
}

var Menu = donburi.NewComponentType[MenuData]()
