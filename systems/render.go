package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/tilehop/gemdash/sim"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the tile grid. A tile's nonzero code picks its palette
// color; empty tiles show the scene background.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	grid := game.World.Grid()

	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			code := grid.CodeAt(tx, ty)
			if code == 0 {
				continue
			}
			clr := cfg.Palette[(code-1)%len(cfg.Palette)]
			vector.DrawFilledRect(screen,
				float32(tx*sim.Tile), float32(ty*sim.Tile),
				sim.Tile, sim.Tile, clr, false)
		}
	}
}

// DrawEntities renders treasure, monsters and the player as tile-sized
// rects, the original canvas look. Moving entities are drawn at a position
// interpolated between their previous and current tick positions using the
// clock's leftover fraction, which smooths motion without ever touching
// physics state.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	world := game.World
	alpha := game.Clock.Alpha()

	// Treasure pulses slowly; collected pickups are simply not drawn.
	t := float64(world.Ticks()) + alpha
	pulse := 0.7 + 0.3*math.Sin(t*0.12)
	treasureClr := scaleColor(cfg.TreasureColor, pulse)
	for _, tr := range world.Treasures() {
		if tr.Collected {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(tr.X), float32(tr.Y+sim.Tile/3),
			sim.Tile, sim.Tile*2/3, treasureClr, false)
	}

	for _, m := range world.Monsters() {
		if m.Dead {
			continue
		}
		x, y := lerp(m.PrevX, m.X, alpha), lerp(m.PrevY, m.Y, alpha)
		vector.DrawFilledRect(screen,
			float32(x), float32(y),
			sim.Tile, sim.Tile, cfg.MonsterColor, false)
	}

	p := world.Player()
	x, y := lerp(p.PrevX, p.X, alpha), lerp(p.PrevY, p.Y, alpha)
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		sim.Tile, sim.Tile, cfg.PlayerColor, false)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
