package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tilehop/gemdash/components"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the main menu system. The option list is the level
// names followed by Exit; selecting a level starts the platformer scene on
// it and remembers the pick.
func NewUpdateMenu(sc SceneChanger, levelNames []string, createGameScene func(levelIndex int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e, levelNames)
		input := getOrCreateInput(e)
		settings := GetOrCreateSettings(e)

		numOptions := len(menu.LevelNames) + 1 // levels + Exit

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if menu.SelectedIndex < len(menu.LevelNames) {
				settings.LevelIndex = menu.SelectedIndex
				SaveCurrentOptions(settings)
				sc.ChangeScene(createGameScene(menu.SelectedIndex))
			} else {
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title and the option list.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menuEntry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(menuEntry)

	drawTextCentered(screen, cfg.C.Title, 120, cfg.HUD.BannerColor)
	drawTextCentered(screen, "arrows to choose, enter to start", 150, cfg.HUD.TextColor)

	options := append(append([]string{}, menu.LevelNames...), "exit")
	startY := 220
	for i, opt := range options {
		clr := cfg.HUD.TextColor
		label := opt
		if i == menu.SelectedIndex {
			clr = cfg.HUD.BannerColor
			label = "> " + opt + " <"
		}
		drawTextCentered(screen, label, startY+i*30, clr)
	}
}

func getOrCreateMenu(ecs *ecs.ECS, levelNames []string) *components.MenuData {
	if entry, ok := components.Menu.First(ecs.World); ok {
		return components.Menu.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Menu))
	menu := components.Menu.Get(entry)
	menu.LevelNames = levelNames

	// Start on the last level the player picked, when it still exists.
	settings := GetOrCreateSettings(ecs)
	if settings.LevelIndex >= 0 && settings.LevelIndex < len(levelNames) {
		menu.SelectedIndex = settings.LevelIndex
	}
	return menu
}
