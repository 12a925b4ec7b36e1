package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the respawn overlay: when the player dies the fade
// system starts a tween from full overlay to clear.
type FadeData struct {
	Tween  *gween.Tween
	Alpha  float32
	Active bool

	// SeenDeaths is the death count already faded for; a higher count on
	// the player starts a new fade.
	SeenDeaths int
}

var Fade = donburi.NewComponentType[FadeData]()
