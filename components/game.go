package components

import (
	"time"

	"github.com/tilehop/gemdash/leveldata"
	"github.com/tilehop/gemdash/sim"
	"github.com/yohamta/donburi"
)

// GameData is the scene-level simulation state: the one world being
// stepped, the fixed-step clock driving it, and the level it was built
// from (kept for resets).
type GameData struct {
	World *sim.World
	Clock *sim.Clock
	Level *leveldata.Level

	// LastFrame is the wall-clock instant of the previous Update, the
	// basis for the clock's accumulated delta.
	LastFrame time.Time

	Paused bool
}

var Game = donburi.NewComponentType[GameData]()
