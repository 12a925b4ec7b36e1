package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tilehop/gemdash/assets"
	cfg "github.com/tilehop/gemdash/config"
	"github.com/tilehop/gemdash/leveldata"
	"github.com/tilehop/gemdash/scenes"
	"github.com/tilehop/gemdash/sim"
	"github.com/tilehop/gemdash/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels []*leveldata.Level, startLevel int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, levels, startLevel)
	} else {
		g.scene = scenes.NewMenuScene(g, levels)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	flag.BoolVar(&cfg.Debug.Overlay, "debug", false, "start with the debug overlay enabled")
	flag.BoolVar(&cfg.Debug.SkipMenu, "skip-menu", false, "skip the menu and start on the first level")
	flag.StringVar(&cfg.Debug.LevelName, "level", "", "level name to start on (implies -skip-menu)")
	flag.Parse()

	// A broken level document is fatal before any game state exists; once
	// the worlds validate, the simulation has no failure path.
	levels, err := leveldata.LoadAll(assets.Levels(), ".")
	if err != nil {
		log.Fatalf("load levels: %v", err)
	}
	for _, lvl := range levels {
		if _, err := sim.NewWorld(lvl); err != nil {
			log.Fatalf("validate level: %v", err)
		}
	}

	startLevel := 0
	if cfg.Debug.LevelName != "" {
		cfg.Debug.SkipMenu = true
		found := false
		for i, lvl := range levels {
			if lvl.Name == cfg.Debug.LevelName {
				startLevel = i
				found = true
			}
		}
		if !found {
			log.Fatalf("unknown level %q", cfg.Debug.LevelName)
		}
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)

	// Initialize persistence and load saved options
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadOptions(); err == nil && saved != nil {
		systems.ApplySavedOptionsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(levels, startLevel)); err != nil {
		log.Fatal(err)
	}
}
