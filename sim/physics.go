package sim

import "math"

// pixelToTile converts a pixel coordinate to the tile column/row it falls in.
func pixelToTile(p float64) int {
	return int(math.Floor(p / Tile))
}

// tileToPixel converts a tile index to the pixel coordinate of its left/top edge.
func tileToPixel(t int) float64 {
	return float64(t) * Tile
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// step advances the body by one fixed time slice and resolves tile
// collisions. monster enables the patrol reversal behavior.
//
// Resolution is sequential: vertical first, then horizontal against the
// (possibly remapped) cell samples. At high speeds this makes corner hits
// order-dependent; that ordering is deliberate and must not change, a
// simultaneous resolution would alter level feel.
func (b *Body) step(dt float64, g *Grid, monster bool) {
	b.PrevX, b.PrevY = b.X, b.Y

	wasLeft := b.DX < 0
	wasRight := b.DX > 0

	// Air control: both acceleration and friction are halved while airborne.
	accel := b.Accel
	friction := b.Friction
	if b.Falling {
		accel *= 0.5
		friction *= 0.5
	}

	b.DDX = 0
	b.DDY = b.Gravity

	if b.Left {
		b.DDX -= accel
	} else if wasLeft {
		b.DDX += friction
	}

	if b.Right {
		b.DDX += accel
	} else if wasRight {
		b.DDX -= friction
	}

	// One-shot jump impulse. Gated on not already mid-jump and not airborne
	// so holding the key can't double-jump or jump off thin air.
	if b.Jump && !b.Jumping && !b.Falling {
		b.DDY -= b.Impulse
		b.Jumping = true
	}

	// Euler integration: position from velocity-at-tick-start, then velocity
	// from acceleration, then clamp each axis.
	b.X += dt * b.DX
	b.Y += dt * b.DY
	b.DX = clamp(b.DX+dt*b.DDX, -b.MaxDX, b.MaxDX)
	b.DY = clamp(b.DY+dt*b.DDY, -b.MaxDY, b.MaxDY)

	// Friction overshoot can flip the sign of DX in a single tick, which
	// makes a stopping entity jiggle side to side. Clamp that to zero.
	if (wasLeft && b.DX > 0) || (wasRight && b.DX < 0) {
		b.DX = 0
	}

	// Sample the 2x2 tile neighborhood in the direction of motion. nx/ny are
	// the sub-tile offsets: nonzero nx means the footprint straddles two
	// columns, nonzero ny two rows.
	tx := pixelToTile(b.X)
	ty := pixelToTile(b.Y)
	nx := math.Mod(b.X, Tile)
	ny := math.Mod(b.Y, Tile)

	cell := g.SolidAt(tx, ty)
	cellRight := g.SolidAt(tx+1, ty)
	cellDown := g.SolidAt(tx, ty+1)
	cellDiag := g.SolidAt(tx+1, ty+1)

	if b.DY > 0 {
		// Landing: ground directly below, or under the overhanging half of
		// the footprint.
		if (cellDown && !cell) || (cellDiag && !cellRight && nx != 0) {
			b.Y = tileToPixel(ty)
			b.DY = 0
			b.Falling = false
			b.Jumping = false
			ny = 0
		}
	} else if b.DY < 0 {
		// Ceiling: snap to the row below and remap the two "above" samples
		// to the "below" pair for the horizontal pass.
		if (cell && !cellDown) || (cellRight && !cellDiag && nx != 0) {
			b.Y = tileToPixel(ty + 1)
			b.DY = 0
			cell = cellDown
			cellRight = cellDiag
			ny = 0
		}
	}

	if b.DX > 0 {
		if (cellRight && !cell) || (cellDiag && !cellDown && ny != 0) {
			b.X = tileToPixel(tx)
			b.DX = 0
		}
	} else if b.DX < 0 {
		if (cell && !cellRight) || (cellDown && !cellDiag && ny != 0) {
			b.X = tileToPixel(tx + 1)
			b.DX = 0
		}
	}

	if monster {
		// Patrol: turn around when blocked ahead or when the floor ahead
		// runs out, before ever stepping into empty space.
		if b.Left && (cell || !cellDown) {
			b.Left = false
			b.Right = true
		} else if b.Right && (cellRight || !cellDiag) {
			b.Right = false
			b.Left = true
		}
	}

	// Footing: supported if the tile below is solid, or if the overhanging
	// part of the footprint rests on the diagonal tile.
	b.Falling = !(cellDown || (nx != 0 && cellDiag))
}
