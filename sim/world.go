package sim

import (
	"fmt"

	"github.com/tilehop/gemdash/leveldata"
)

// World owns everything the simulation mutates: the grid, the player and
// the monster/treasure collections. There is no global state; the scene
// that drives the simulation holds the one World it stepped.
//
// A World is single-threaded by design. All mutation happens inside Step,
// and intent writes (input) must happen strictly between ticks.
type World struct {
	grid      *Grid
	player    *Player
	monsters  []*Monster
	treasures []*Treasure
	ticks     uint64
}

// NewWorld builds a world from a parsed level document. This is the only
// place errors can surface; once a world is constructed the simulation has
// no failure path. Malformed per-object properties are not errors, they
// fall back to the named defaults (see resolveTuning).
func NewWorld(level *leveldata.Level) (*World, error) {
	if level.Width <= 0 || level.Height <= 0 {
		return nil, fmt.Errorf("level %q: invalid dimensions %dx%d", level.Name, level.Width, level.Height)
	}
	if len(level.Cells) != level.Width*level.Height {
		return nil, fmt.Errorf("level %q: %d tile codes, want %d", level.Name, len(level.Cells), level.Width*level.Height)
	}
	if level.TileSize != 0 && level.TileSize != Tile {
		return nil, fmt.Errorf("level %q: tile size %d not supported, want %d", level.Name, level.TileSize, Tile)
	}

	w := &World{
		grid: NewGrid(level.Width, level.Height, level.Cells),
	}

	for _, obj := range level.Objects {
		switch obj.Type {
		case leveldata.ObjectPlayer:
			if w.player != nil {
				continue // the player is a singleton; extra spawns are ignored
			}
			p := &Player{}
			initBody(&p.Body, obj)
			w.player = p
		case leveldata.ObjectMonster:
			m := &Monster{}
			initBody(&m.Body, obj)
			m.Left = obj.Props.Left
			m.Right = obj.Props.Right
			w.monsters = append(w.monsters, m)
		case leveldata.ObjectTreasure:
			w.treasures = append(w.treasures, &Treasure{X: obj.X, Y: obj.Y})
		}
	}

	if w.player == nil {
		return nil, fmt.Errorf("level %q: no player spawn", level.Name)
	}
	return w, nil
}

func initBody(b *Body, obj leveldata.Object) {
	b.X, b.Y = obj.X, obj.Y
	b.PrevX, b.PrevY = obj.X, obj.Y
	b.StartX, b.StartY = obj.X, obj.Y
	b.Tuning = resolveTuning(obj.Props)
}

// resolveTuning converts a level-authored property bag into pixel-unit
// tuning. Unset fields take the package defaults; accel and friction are
// authored as time constants (seconds to reach / shed max speed) and a
// non-positive time constant is treated as unset so the division below
// stays total.
func resolveTuning(p leveldata.Properties) Tuning {
	gravity := DefaultGravity
	if p.Gravity != nil {
		gravity = *p.Gravity
	}
	maxdx := float64(DefaultMaxDX)
	if p.MaxDX != nil {
		maxdx = *p.MaxDX
	}
	maxdy := float64(DefaultMaxDY)
	if p.MaxDY != nil {
		maxdy = *p.MaxDY
	}
	impulse := float64(DefaultImpulse)
	if p.Impulse != nil {
		impulse = *p.Impulse
	}
	accelSecs := DefaultAccel
	if p.Accel != nil && *p.Accel > 0 {
		accelSecs = *p.Accel
	}
	frictionSecs := DefaultFriction
	if p.Friction != nil && *p.Friction > 0 {
		frictionSecs = *p.Friction
	}

	maxdxPx := Meter * maxdx
	return Tuning{
		Gravity:  Meter * gravity,
		MaxDX:    maxdxPx,
		MaxDY:    Meter * maxdy,
		Impulse:  Meter * impulse,
		Accel:    maxdxPx / accelSecs,
		Friction: maxdxPx / frictionSecs,
	}
}

// Step advances the simulation by one fixed time slice: player physics
// first, then each live monster's physics followed immediately by its
// contact check against the player, then the treasure sweep. A monster
// stomped mid-tick is flagged dead right away, so the next tick's update
// skips it.
func (w *World) Step(dt float64) {
	p := w.player
	p.step(dt, w.grid, false)

	for _, m := range w.monsters {
		if m.Dead {
			continue
		}
		m.step(dt, w.grid, true)
		if overlap(p.X, p.Y, Tile, Tile, m.X, m.Y, Tile, Tile) {
			// A stomp requires downward motion and the player's feet to be
			// clearly above the monster, more than half a tile higher.
			if p.DY > 0 && m.Y-p.Y > Tile/2 {
				m.Dead = true
				p.Killed++
			} else {
				w.killPlayer()
			}
		}
	}

	for _, t := range w.treasures {
		if !t.Collected && overlap(p.X, p.Y, Tile, Tile, t.X, t.Y, Tile, Tile) {
			t.Collected = true
			p.Collected++
		}
	}

	w.ticks++
}

// killPlayer resets the player to its spawn snapshot with zeroed velocity.
// Jumping/Falling are deliberately left as-is, matching the behavior levels
// were tuned against.
func (w *World) killPlayer() {
	p := w.player
	p.X, p.Y = p.StartX, p.StartY
	p.PrevX, p.PrevY = p.StartX, p.StartY
	p.DX, p.DY = 0, 0
	p.Deaths++
}

// overlap is a closed-interval AABB test: each box spans [pos, pos+size-1],
// so two boxes that are exactly tile-adjacent do not overlap.
func overlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return !(x1+w1-1 < x2 || x2+w2-1 < x1 || y1+h1-1 < y2 || y2+h2-1 < y1)
}

// Read-only snapshots for the render collaborator. Renderers may read any
// entity field but must never write; all mutation goes through Step and
// SetIntent.

func (w *World) Grid() *Grid            { return w.grid }
func (w *World) Player() *Player        { return w.player }
func (w *World) Monsters() []*Monster   { return w.monsters }
func (w *World) Treasures() []*Treasure { return w.treasures }
func (w *World) Ticks() uint64          { return w.ticks }

// TreasureLeft counts uncollected treasures.
func (w *World) TreasureLeft() int {
	n := 0
	for _, t := range w.treasures {
		if !t.Collected {
			n++
		}
	}
	return n
}
