package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer everything draws on.
const Default ecs.LayerID = 0

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// HUDConfig contains HUD layout and color values.
type HUDConfig struct {
	Margin     float64
	LineHeight float64

	TextColor    color.RGBA
	ShadowColor  color.RGBA
	BannerColor  color.RGBA
	OverlayColor color.RGBA
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	Overlay   bool // start with the debug overlay enabled
	SkipMenu  bool // skip menu and go directly to the game
	LevelName string
}

// Global configuration instances
var C *Config
var HUD HUDConfig
var Debug DebugConfig

// Tile palette: a nonzero tile code n renders with Palette[n-1]; codes past
// the palette wrap around.
var Palette = []color.RGBA{
	{R: 0xEC, G: 0xD0, B: 0x78, A: 0xFF}, // yellow
	{R: 0xD9, G: 0x5B, B: 0x43, A: 0xFF}, // brick
	{R: 0xC0, G: 0x29, B: 0x42, A: 0xFF}, // pink
	{R: 0x54, G: 0x24, B: 0x37, A: 0xFF}, // purple
	{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}, // grey
}

// Entity colors
var (
	PlayerColor   = color.RGBA{R: 0xEC, G: 0xD0, B: 0x78, A: 0xFF}
	MonsterColor  = color.RGBA{R: 0x53, G: 0x77, B: 0x7A, A: 0xFF}
	TreasureColor = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	Background    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 640,
		Title:  "gemdash",
	}

	HUD = HUDConfig{
		Margin:       10,
		LineHeight:   16,
		TextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ShadowColor:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		BannerColor:  color.RGBA{R: 255, G: 215, B: 0, A: 255},
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 180},
	}

	Debug = DebugConfig{}
}
