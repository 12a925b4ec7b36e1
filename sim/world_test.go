package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilehop/gemdash/leveldata"
)

func floatPtr(v float64) *float64 { return &v }

// testLevel is an 8x8 arena with a solid floor on the bottom row.
func testLevel(objects ...leveldata.Object) *leveldata.Level {
	w, h := 8, 8
	cells := make([]int, w*h)
	for x := 0; x < w; x++ {
		cells[x+w*(h-1)] = 1
	}
	return &leveldata.Level{
		Name:    "arena",
		Width:   w,
		Height:  h,
		Cells:   cells,
		Objects: objects,
	}
}

func playerAt(x, y float64) leveldata.Object {
	return leveldata.Object{Type: leveldata.ObjectPlayer, X: x, Y: y}
}

func TestNewWorldValidation(t *testing.T) {
	t.Run("bad dimensions", func(t *testing.T) {
		_, err := NewWorld(&leveldata.Level{Name: "x", Width: 0, Height: 8})
		assert.Error(t, err)
	})

	t.Run("cell count mismatch", func(t *testing.T) {
		_, err := NewWorld(&leveldata.Level{Name: "x", Width: 4, Height: 4, Cells: make([]int, 3)})
		assert.Error(t, err)
	})

	t.Run("unsupported tile size", func(t *testing.T) {
		level := testLevel(playerAt(32, 192))
		level.TileSize = 16
		_, err := NewWorld(level)
		assert.Error(t, err)
	})

	t.Run("missing player", func(t *testing.T) {
		_, err := NewWorld(testLevel())
		assert.Error(t, err)
	})

	t.Run("extra player spawns ignored", func(t *testing.T) {
		w, err := NewWorld(testLevel(playerAt(32, 192), playerAt(96, 192)))
		require.NoError(t, err)
		assert.Equal(t, 32.0, w.Player().X)
	})
}

func TestResolveTuning(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tun := resolveTuning(leveldata.Properties{})
		assert.Equal(t, float64(Meter*DefaultGravity), tun.Gravity)
		assert.Equal(t, float64(Meter*DefaultMaxDX), tun.MaxDX)
		assert.Equal(t, float64(Meter*DefaultMaxDY), tun.MaxDY)
		assert.Equal(t, float64(Meter*DefaultImpulse), tun.Impulse)
		assert.Equal(t, Meter*DefaultMaxDX/DefaultAccel, tun.Accel)
		assert.Equal(t, Meter*DefaultMaxDX/DefaultFriction, tun.Friction)
	})

	t.Run("overrides", func(t *testing.T) {
		tun := resolveTuning(leveldata.Properties{
			MaxDX: floatPtr(8),
			Accel: floatPtr(0.25),
		})
		assert.Equal(t, float64(Meter*8), tun.MaxDX)
		assert.Equal(t, Meter*8/0.25, tun.Accel)
	})

	t.Run("non-positive time constants fall back", func(t *testing.T) {
		tun := resolveTuning(leveldata.Properties{
			Accel:    floatPtr(0),
			Friction: floatPtr(-1),
		})
		assert.Equal(t, Meter*DefaultMaxDX/DefaultAccel, tun.Accel)
		assert.Equal(t, Meter*DefaultMaxDX/DefaultFriction, tun.Friction)
	})
}

func TestStompKillsMonster(t *testing.T) {
	w, err := NewWorld(testLevel(
		playerAt(96, 32),
		leveldata.Object{Type: leveldata.ObjectMonster, X: 96, Y: 192},
	))
	require.NoError(t, err)

	// Drop the player onto the monster from directly above.
	p := w.Player()
	m := w.Monsters()[0]
	p.Y = m.Y - 20
	p.Falling = true
	p.DY = 60

	w.Step(Step)

	assert.True(t, m.Dead)
	assert.Equal(t, 1, p.Killed)
	assert.Equal(t, 0, p.Deaths)
	assert.Equal(t, 192.0, m.Y, "stomped monster stays where it died")
}

func TestSideContactKillsPlayer(t *testing.T) {
	w, err := NewWorld(testLevel(
		playerAt(32, 192),
		leveldata.Object{Type: leveldata.ObjectMonster, X: 112, Y: 192},
	))
	require.NoError(t, err)

	// Walk the player into the monster at ground level. Standing contact
	// is never a stomp: the vertical gap is zero and DY is zero.
	p := w.Player()
	p.X = 90

	w.Step(Step)

	assert.Equal(t, 1, p.Deaths)
	assert.Equal(t, 32.0, p.X, "player respawns at its start position")
	assert.Equal(t, 192.0, p.Y)
	assert.Equal(t, 0.0, p.DX)
	assert.Equal(t, 0.0, p.DY)
	assert.False(t, w.Monsters()[0].Dead)
}

func TestShallowOverlapIsNotAStomp(t *testing.T) {
	w, err := NewWorld(testLevel(
		playerAt(32, 32),
		leveldata.Object{Type: leveldata.ObjectMonster, X: 96, Y: 192},
	))
	require.NoError(t, err)

	// Falling, but the feet are only a few pixels above the monster's
	// head: not clearly above, so the contact kills the player.
	p := w.Player()
	m := w.Monsters()[0]
	p.X = m.X
	p.Y = m.Y - 8
	p.Falling = true
	p.DY = 60

	w.Step(Step)

	assert.False(t, m.Dead)
	assert.Equal(t, 1, p.Deaths)
}

func TestDeadMonsterIsInert(t *testing.T) {
	w, err := NewWorld(testLevel(
		playerAt(32, 192),
		leveldata.Object{Type: leveldata.ObjectMonster, X: 112, Y: 192},
	))
	require.NoError(t, err)

	m := w.Monsters()[0]
	m.Dead = true
	w.Player().X = 90 // would be a lethal contact if the monster were alive

	w.Step(Step)

	assert.Equal(t, 0, w.Player().Deaths)
	assert.Equal(t, 112.0, m.X)
}

func TestTreasureCollectionIsIdempotent(t *testing.T) {
	w, err := NewWorld(testLevel(
		playerAt(32, 192),
		leveldata.Object{Type: leveldata.ObjectTreasure, X: 40, Y: 192},
		leveldata.Object{Type: leveldata.ObjectTreasure, X: 224, Y: 192},
	))
	require.NoError(t, err)

	require.Equal(t, 2, w.TreasureLeft())

	w.Step(Step)
	assert.Equal(t, 1, w.Player().Collected)
	assert.Equal(t, 1, w.TreasureLeft())

	// Standing on an already collected treasure must not count it again.
	w.Step(Step)
	assert.Equal(t, 1, w.Player().Collected)
}

func TestAdjacentBoxesDoNotOverlap(t *testing.T) {
	assert.False(t, overlap(0, 0, Tile, Tile, Tile, 0, Tile, Tile))
	assert.False(t, overlap(0, 0, Tile, Tile, 0, Tile, Tile, Tile))
	assert.True(t, overlap(0, 0, Tile, Tile, Tile-1, 0, Tile, Tile))
	assert.True(t, overlap(0, 0, Tile, Tile, 0, 0, Tile, Tile))
}

func TestSubStepFrameLeavesWorldUntouched(t *testing.T) {
	w, err := NewWorld(testLevel(playerAt(32, 192)))
	require.NoError(t, err)

	before := *w.Player()

	// A frame shorter than one step yields no ticks, so nothing runs.
	c := NewClock(Step)
	steps := c.Advance(Step * 0.9)
	require.Equal(t, 0, steps)
	for i := 0; i < steps; i++ {
		w.Step(Step)
	}

	assert.Equal(t, before, *w.Player())
	assert.Equal(t, uint64(0), w.Ticks())
}

func TestStepCountsTicks(t *testing.T) {
	w, err := NewWorld(testLevel(playerAt(32, 192)))
	require.NoError(t, err)

	require.Equal(t, uint64(0), w.Ticks())
	w.Step(Step)
	w.Step(Step)
	assert.Equal(t, uint64(2), w.Ticks())
}

func TestMonsterSpawnIntent(t *testing.T) {
	w, err := NewWorld(testLevel(
		playerAt(32, 192),
		leveldata.Object{
			Type:  leveldata.ObjectMonster,
			X:     160,
			Y:     192,
			Props: leveldata.Properties{Left: true, MaxDX: floatPtr(8)},
		},
	))
	require.NoError(t, err)

	m := w.Monsters()[0]
	assert.True(t, m.Left)
	assert.False(t, m.Right)
	assert.Equal(t, float64(Meter*8), m.MaxDX)

	w.Step(Step)
	assert.Less(t, m.DX, 0.0, "patrol accelerates in the seeded direction")
}
