package sim

// Tile is the tile edge length in pixels. Entity positions, velocities and
// the grid all share this unit.
const Tile = 32

// Meter is the unit level-authored physics properties are expressed in.
// One meter is one tile.
const Meter = Tile

// Step is the fixed simulation time slice in seconds.
const Step = 1.0 / 60.0

// Default physics properties, applied when a placed object's property bag
// leaves a field unset. Speeds are in meters (tiles) per second, gravity in
// meters per second squared, accel and friction are the seconds it takes to
// reach max speed and to stop from it.
const (
	DefaultGravity  = 9.8 * 6 // exaggerated for a snappier arcade feel
	DefaultMaxDX    = 15
	DefaultMaxDY    = 60
	DefaultImpulse  = 1500
	DefaultAccel    = 1.0 / 2
	DefaultFriction = 1.0 / 6
)

// Tuning holds an entity's resolved physics parameters in pixel units:
// Gravity in px/s^2, MaxDX/MaxDY in px/s, Impulse in px/s^2 (applied for a
// single tick), Accel and Friction in px/s^2.
type Tuning struct {
	Gravity  float64
	MaxDX    float64
	MaxDY    float64
	Impulse  float64
	Accel    float64
	Friction float64
}

// Body is the shared physical state for entities that move (player and
// monsters). Positions are continuous pixel coordinates anchored at the
// entity's top-left corner; every entity occupies one tile's footprint.
type Body struct {
	X, Y     float64
	DX, DY   float64
	DDX, DDY float64

	Tuning

	// Movement intents. For the player these are written by the input
	// collaborator between ticks; for monsters the patrol AI owns them.
	Left  bool
	Right bool
	Jump  bool

	// Falling is true while the entity has no footing; Jumping is true
	// from the jump impulse until the next landing and gates air jumps.
	Falling bool
	Jumping bool

	// Spawn snapshot, used to respawn the player on death.
	StartX, StartY float64

	// Position at the start of the current tick, for render interpolation.
	PrevX, PrevY float64
}

// SetIntent sets the body's movement intents. Callers must only invoke this
// between simulation ticks; the physics core reads but never writes intents
// for the player.
func (b *Body) SetIntent(left, right, jump bool) {
	b.Left = left
	b.Right = right
	b.Jump = jump
}

// Player is the controllable entity. It is a singleton per world and is
// reset in place on death, never reallocated.
type Player struct {
	Body

	Collected int // treasures picked up
	Killed    int // monsters stomped
	Deaths    int
}

// Monster patrols and kills the player on contact unless stomped. A dead
// monster stays in the world's collection but is skipped by update, render
// and collision.
type Monster struct {
	Body

	Dead bool
}

// Treasure is a static pickup. It has no velocity and is excluded from
// physics integration; collection just flips the flag.
type Treasure struct {
	X, Y      float64
	Collected bool
}
