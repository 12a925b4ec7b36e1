package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/tilehop/gemdash/config"
	"golang.org/x/image/font/basicfont"
)

// basicfont glyph advance, used for centering.
const glyphWidth = 7

// drawText renders s with a one-pixel drop shadow so it stays readable on
// any tile color.
func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

// drawTextCentered renders s horizontally centered at the given baseline.
func drawTextCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	x := (cfg.C.Width - glyphWidth*len(s)) / 2
	drawText(screen, s, x, y, clr)
}
