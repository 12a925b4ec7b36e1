package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/yohamta/donburi/ecs"
)

const fadeDuration = 0.5 // seconds

// UpdateFade watches the player's death counter and runs the respawn
// overlay tween. This is render-side polish only; the simulation has
// already reset the player by the time the fade starts.
func UpdateFade(e *ecs.ECS) {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	fade := getOrCreateFade(e)

	deaths := game.World.Player().Deaths
	if deaths != fade.SeenDeaths {
		fade.SeenDeaths = deaths
		fade.Tween = gween.New(1, 0, fadeDuration, ease.OutQuad)
		fade.Active = true
	}

	if !fade.Active || game.Paused {
		return
	}
	alpha, done := fade.Tween.Update(1.0 / float32(ebiten.TPS()))
	fade.Alpha = alpha
	if done {
		fade.Active = false
		fade.Alpha = 0
	}
}

// DrawFade draws the respawn flash over the whole scene.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	fadeEntry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(fadeEntry)
	if !fade.Active {
		return
	}
	overlay := color.RGBA{R: 0xC0, G: 0x29, B: 0x42, A: uint8(200 * fade.Alpha)}
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), overlay, false)
}

func getOrCreateFade(ecs *ecs.ECS) *components.FadeData {
	if entry, ok := components.Fade.First(ecs.World); ok {
		return components.Fade.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Fade))
	return components.Fade.Get(entry)
}
