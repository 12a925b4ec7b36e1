package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the counters in the top-left corner, the win banner once
// every treasure is collected, and the pause overlay.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	world := game.World
	player := world.Player()

	total := len(world.Treasures())
	line := fmt.Sprintf("GOLD %d/%d   KILLS %d   DEATHS %d",
		player.Collected, total, player.Killed, player.Deaths)
	drawText(screen, line, int(cfg.HUD.Margin), int(cfg.HUD.Margin)+13, cfg.HUD.TextColor)

	if total > 0 && world.TreasureLeft() == 0 {
		drawTextCentered(screen, "ALL GOLD COLLECTED!", cfg.C.Height/2-20, cfg.HUD.BannerColor)
		drawTextCentered(screen, "R to play again", cfg.C.Height/2, cfg.HUD.TextColor)
	}

	if game.Paused {
		vector.DrawFilledRect(screen, 0, 0,
			float32(cfg.C.Width), float32(cfg.C.Height),
			cfg.HUD.OverlayColor, false)
		drawTextCentered(screen, "PAUSED", cfg.C.Height/2-20, cfg.HUD.TextColor)
		drawTextCentered(screen, "ESC to resume, ENTER for menu", cfg.C.Height/2, cfg.HUD.TextColor)
	}
}
