// Package leveldata provides level document parsing shared between the game
// shell and the simulation core. It has no dependencies on ebitengine or
// donburi — pure data only.
package leveldata

// Level is a parsed level document: a row-major tile grid plus the objects
// placed on it. Cells holds one code per tile (0 empty, nonzero solid).
type Level struct {
	Name     string
	Width    int
	Height   int
	TileSize int
	Cells    []int
	Objects  []Object
}

// ObjectType tags a placed object.
type ObjectType string

const (
	ObjectPlayer   ObjectType = "player"
	ObjectMonster  ObjectType = "monster"
	ObjectTreasure ObjectType = "treasure"
)

// Object is a placed entity spawn with an optional property bag.
type Object struct {
	Type  ObjectType
	X, Y  float64
	Props Properties
}

// Properties is the per-object physics override bag. Pointer fields
// distinguish "unset" from an explicit zero; unset fields fall back to the
// simulation defaults. Left/Right seed a monster's initial patrol intent.
type Properties struct {
	Gravity  *float64 `json:"gravity,omitempty"`
	MaxDX    *float64 `json:"maxdx,omitempty"`
	MaxDY    *float64 `json:"maxdy,omitempty"`
	Impulse  *float64 `json:"impulse,omitempty"`
	Accel    *float64 `json:"accel,omitempty"`
	Friction *float64 `json:"friction,omitempty"`
	Left     bool     `json:"left,omitempty"`
	Right    bool     `json:"right,omitempty"`
}
