package systems

import (
	"log"
	"time"

	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/tilehop/gemdash/sim"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSimulation creates the system that drives the fixed-step
// simulation. Each frame it measures elapsed wall-clock time, feeds the
// accumulator, and runs however many whole ticks fall out; the leftover
// fraction stays in the clock for render interpolation. Player intents are
// written once per frame, before any tick runs, so input never interleaves
// with a tick.
//
// While paused the clock is starved rather than stopped, so unpausing does
// not replay the paused time as a catch-up burst.
func NewUpdateSimulation(sc SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Game.First(e.World)
		if !ok {
			return
		}
		game := components.Game.Get(entry)
		input := getOrCreateInput(e)
		settings := GetOrCreateSettings(e)

		now := time.Now()
		elapsed := 0.0
		if !game.LastFrame.IsZero() {
			elapsed = now.Sub(game.LastFrame).Seconds()
		}
		game.LastFrame = now

		if GetAction(input, cfg.ActionPause).JustPressed {
			game.Paused = !game.Paused
		}
		if GetAction(input, cfg.ActionDebug).JustPressed {
			settings.Debug = !settings.Debug
			SaveCurrentOptions(settings)
		}
		if GetAction(input, cfg.ActionReset).JustPressed {
			resetWorld(game)
		}

		if game.Paused {
			// Enter from the pause overlay returns to the menu.
			if GetAction(input, cfg.ActionMenuSelect).JustPressed {
				sc.ChangeScene(createMenuScene())
			}
			return
		}

		player := game.World.Player()
		player.SetIntent(
			GetAction(input, cfg.ActionMoveLeft).Pressed,
			GetAction(input, cfg.ActionMoveRight).Pressed,
			GetAction(input, cfg.ActionJump).Pressed,
		)

		steps := game.Clock.Advance(elapsed)
		for i := 0; i < steps; i++ {
			game.World.Step(sim.Step)
		}
	}
}

// resetWorld rebuilds the world from the level document it was loaded
// from, restoring every entity to its spawn state.
func resetWorld(game *components.GameData) {
	world, err := sim.NewWorld(game.Level)
	if err != nil {
		// Can't happen for a level that already built once; keep the old
		// world rather than crash mid-game.
		log.Printf("reset level %q: %v", game.Level.Name, err)
		return
	}
	game.World = world
	game.Clock = sim.NewClock(sim.Step)
}
