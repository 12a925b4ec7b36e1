package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

type jsonLevel struct {
	Name     string       `json:"name"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	TileSize int          `json:"tilesize"`
	Tiles    []int        `json:"tiles"`
	Objects  []jsonObject `json:"objects"`
}

type jsonObject struct {
	Type       string     `json:"type"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Properties Properties `json:"properties"`
}

// LoadJSON parses a JSON level descriptor: a flat row-major tile code
// sequence plus placed objects with optional property bags. It takes an
// fs.FS so callers can pass embed.FS (the game binary) or os.DirFS (tests).
func LoadJSON(fsys fs.FS, path string) (*Level, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}

	var doc jsonLevel
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}

	level := &Level{
		Name:     doc.Name,
		Width:    doc.Width,
		Height:   doc.Height,
		TileSize: doc.TileSize,
		Cells:    doc.Tiles,
	}
	if level.Name == "" {
		level.Name = stem(path)
	}
	for _, o := range doc.Objects {
		level.Objects = append(level.Objects, Object{
			Type:  ObjectType(strings.ToLower(o.Type)),
			X:     o.X,
			Y:     o.Y,
			Props: o.Properties,
		})
	}
	return level, nil
}

// LoadTMX parses a Tiled TMX map into the same Level shape: the first tile
// layer becomes the grid (tile ID + 1 as the code, so placed tiles are
// always solid), and object group objects become spawns keyed by their
// class (or name). Unknown object kinds are carried through and ignored by
// world construction.
func LoadTMX(fsys fs.FS, path string) (*Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	level := &Level{
		Name:     stem(path),
		Width:    m.Width,
		Height:   m.Height,
		TileSize: m.TileWidth,
		Cells:    make([]int, m.Width*m.Height),
	}

	if len(m.Layers) > 0 {
		for i, tile := range m.Layers[0].Tiles {
			if tile.IsNil() {
				continue
			}
			level.Cells[i] = int(tile.ID) + 1
		}
	}

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			kind := o.Type
			if kind == "" {
				kind = o.Name
			}
			level.Objects = append(level.Objects, Object{
				Type:  ObjectType(strings.ToLower(kind)),
				X:     o.X,
				Y:     o.Y,
				Props: tmxProperties(o.Properties),
			})
		}
	}
	return level, nil
}

// tmxProperties maps a Tiled property list onto the override bag. Values
// that fail to parse are treated as unset, per the silent-defaulting policy
// for malformed object properties.
func tmxProperties(props tiled.Properties) Properties {
	var out Properties
	for _, p := range props {
		switch p.Name {
		case "gravity":
			out.Gravity = parseFloat(p.Value)
		case "maxdx":
			out.MaxDX = parseFloat(p.Value)
		case "maxdy":
			out.MaxDY = parseFloat(p.Value)
		case "impulse":
			out.Impulse = parseFloat(p.Value)
		case "accel":
			out.Accel = parseFloat(p.Value)
		case "friction":
			out.Friction = parseFloat(p.Value)
		case "left":
			out.Left = p.Value == "true"
		case "right":
			out.Right = p.Value == "true"
		}
	}
	return out
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// LoadAll discovers every .json and .tmx level in dir within fsys and
// returns them sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	var levels []*Level

	jsonPaths, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	for _, p := range jsonPaths {
		level, err := LoadJSON(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	tmxPaths, err := fs.Glob(fsys, path.Join(dir, "*.tmx"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	for _, p := range tmxPaths {
		level, err := LoadTMX(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
