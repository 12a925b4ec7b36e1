package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/tilehop/gemdash/leveldata"
	"github.com/tilehop/gemdash/sim"
	"github.com/tilehop/gemdash/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level: the fixed-step simulation plus the
// renderers that sample it.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.Level
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene on the given level.
func NewPlatformerScene(sc SceneChanger, levels []*leveldata.Level, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levels: levels, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(cfg.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	level := ps.levels[ps.levelIndex]

	// Levels are validated at startup, so a failure here is a programming
	// error, not a data error.
	world, err := sim.NewWorld(level)
	if err != nil {
		panic("build world: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger, ps.levels)
	}

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateSimulation(ps.sceneChanger, createMenuScene))
	e.AddSystem(systems.UpdateFade)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawFade)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	gameEntry := e.World.Entry(e.World.Create(components.Game))
	components.Game.SetValue(gameEntry, components.GameData{
		World: world,
		Clock: sim.NewClock(sim.Step),
		Level: level,
	})

	ps.ecs = e
}
