package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicJSON = `{
  "name": "basic",
  "width": 3,
  "height": 2,
  "tilesize": 32,
  "tiles": [0, 0, 0, 1, 2, 1],
  "objects": [
    {"type": "Player", "x": 32, "y": 0},
    {"type": "monster", "x": 64, "y": 0, "properties": {"left": true, "maxdx": 8}},
    {"type": "treasure", "x": 0, "y": 0}
  ]
}`

const castleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="4">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="8" columns="8">
  <image source="tiles.png" width="256" height="32"/>
 </tileset>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,2,0</data>
 </layer>
 <objectgroup id="2" name="spawns">
  <object id="1" name="player" x="32" y="32"/>
  <object id="2" type="monster" x="64" y="32">
   <properties>
    <property name="right" value="true"/>
    <property name="maxdx" value="8"/>
    <property name="accel" value="bogus"/>
   </properties>
  </object>
  <object id="3" type="treasure" x="96" y="32"/>
 </objectgroup>
</map>`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/basic.json": &fstest.MapFile{Data: []byte(basicJSON)},
		"levels/castle.tmx": &fstest.MapFile{Data: []byte(castleTMX)},
	}
}

func TestLoadJSON(t *testing.T) {
	level, err := LoadJSON(testFS(), "levels/basic.json")
	require.NoError(t, err)

	assert.Equal(t, "basic", level.Name)
	assert.Equal(t, 3, level.Width)
	assert.Equal(t, 2, level.Height)
	assert.Equal(t, 32, level.TileSize)
	assert.Equal(t, []int{0, 0, 0, 1, 2, 1}, level.Cells)

	require.Len(t, level.Objects, 3)
	assert.Equal(t, ObjectPlayer, level.Objects[0].Type, "object kinds are case-insensitive")
	assert.Equal(t, 32.0, level.Objects[0].X)

	monster := level.Objects[1]
	assert.Equal(t, ObjectMonster, monster.Type)
	assert.True(t, monster.Props.Left)
	require.NotNil(t, monster.Props.MaxDX)
	assert.Equal(t, 8.0, *monster.Props.MaxDX)
	assert.Nil(t, monster.Props.Gravity, "absent properties stay unset")
}

func TestLoadJSONNameFallsBackToFilename(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/pit.json": &fstest.MapFile{Data: []byte(`{"width": 1, "height": 1, "tiles": [0]}`)},
	}
	level, err := LoadJSON(fsys, "levels/pit.json")
	require.NoError(t, err)
	assert.Equal(t, "pit", level.Name)
}

func TestLoadJSONErrors(t *testing.T) {
	_, err := LoadJSON(testFS(), "levels/missing.json")
	assert.Error(t, err)

	fsys := fstest.MapFS{
		"levels/broken.json": &fstest.MapFile{Data: []byte(`{"width": `)},
	}
	_, err = LoadJSON(fsys, "levels/broken.json")
	assert.Error(t, err)
}

func TestLoadTMX(t *testing.T) {
	level, err := LoadTMX(testFS(), "levels/castle.tmx")
	require.NoError(t, err)

	assert.Equal(t, "castle", level.Name)
	assert.Equal(t, 4, level.Width)
	assert.Equal(t, 3, level.Height)
	assert.Equal(t, 32, level.TileSize)
	// Global tile IDs shift by one so any placed tile reads as solid.
	assert.Equal(t, []int{
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 1, 2, 0,
	}, level.Cells)

	require.Len(t, level.Objects, 3)
	assert.Equal(t, ObjectPlayer, level.Objects[0].Type, "name stands in for a missing class")

	monster := level.Objects[1]
	assert.Equal(t, ObjectMonster, monster.Type)
	assert.True(t, monster.Props.Right)
	require.NotNil(t, monster.Props.MaxDX)
	assert.Equal(t, 8.0, *monster.Props.MaxDX)
	assert.Nil(t, monster.Props.Accel, "unparseable values are treated as unset")

	assert.Equal(t, ObjectTreasure, level.Objects[2].Type)
}

func TestLoadAll(t *testing.T) {
	levels, err := LoadAll(testFS(), "levels")
	require.NoError(t, err)

	require.Len(t, levels, 2)
	assert.Equal(t, "basic", levels[0].Name)
	assert.Equal(t, "castle", levels[1].Name)
}

func TestLoadAllEmptyDir(t *testing.T) {
	_, err := LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
