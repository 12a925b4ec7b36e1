package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/tilehop/gemdash/sim"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugPlayerColor   = color.RGBA{0, 0, 255, 255}
	debugMonsterColor  = color.RGBA{255, 0, 0, 255}
	debugTreasureColor = color.RGBA{0, 255, 0, 255}
	debugSampleColor   = color.RGBA{0, 255, 255, 255}
)

// DrawDebug renders the collision debug overlay when enabled: entity
// bounding boxes, the 2x2 tile neighborhood the player's collision pass
// samples, and the timing/physics readout.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	entry, ok := components.Game.First(e.World)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	world := game.World
	player := world.Player()

	// The 2x2 sample neighborhood around the player's occupying tile.
	tx := int(math.Floor(player.X / sim.Tile))
	ty := int(math.Floor(player.Y / sim.Tile))
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			drawRectOutline(screen,
				float64((tx+dx)*sim.Tile), float64((ty+dy)*sim.Tile),
				sim.Tile, sim.Tile, debugSampleColor)
		}
	}

	for _, t := range world.Treasures() {
		if t.Collected {
			continue
		}
		drawRectOutline(screen, t.X, t.Y, sim.Tile, sim.Tile, debugTreasureColor)
	}
	for _, m := range world.Monsters() {
		if m.Dead {
			continue
		}
		drawRectOutline(screen, m.X, m.Y, sim.Tile, sim.Tile, debugMonsterColor)
	}
	drawRectOutline(screen, player.X, player.Y, sim.Tile, sim.Tile, debugPlayerColor)

	// Velocity vector from the player's center, scaled down to stay on
	// screen at top speed.
	cx := float32(player.X + sim.Tile/2)
	cy := float32(player.Y + sim.Tile/2)
	vector.StrokeLine(screen, cx, cy,
		cx+float32(player.DX*0.1), cy+float32(player.DY*0.1),
		1, debugPlayerColor, false)

	lines := []string{
		fmt.Sprintf("fps %.0f  tps %.0f  tick %d", ebiten.ActualFPS(), ebiten.ActualTPS(), world.Ticks()),
		fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f", player.X, player.Y, player.DX, player.DY),
		fmt.Sprintf("falling %v  jumping %v  alpha %.2f", player.Falling, player.Jumping, game.Clock.Alpha()),
	}
	y := cfg.C.Height - len(lines)*int(cfg.HUD.LineHeight) - int(cfg.HUD.Margin)
	for i, line := range lines {
		drawText(screen, line, int(cfg.HUD.Margin), y+i*int(cfg.HUD.LineHeight)+13, cfg.HUD.TextColor)
	}
}

// drawRectOutline draws a one-pixel rectangle outline as four filled
// strips.
func drawRectOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, c, false)         // Top
	vector.DrawFilledRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)     // Bottom
	vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(h), c, false)         // Left
	vector.DrawFilledRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)     // Right
}
