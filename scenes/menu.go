package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/tilehop/gemdash/leveldata"
	"github.com/tilehop/gemdash/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu with the level selector.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.Level
	once         sync.Once
}

// NewMenuScene creates a new menu scene over the loaded level set.
func NewMenuScene(sc SceneChanger, levels []*leveldata.Level) *MenuScene {
	return &MenuScene{sceneChanger: sc, levels: levels}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	names := make([]string, len(ms.levels))
	for i, lvl := range ms.levels {
		names[i] = lvl.Name
	}

	createGameScene := func(levelIndex int) interface{} {
		return NewPlatformerScene(ms.sceneChanger, ms.levels, levelIndex)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, names, createGameScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
