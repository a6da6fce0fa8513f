package object

import (
	"math"

	"github.com/tomz197/roids/internal/loop/config"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Radius returns the collision radius for the size. A large asteroid is
// half of RoidsSize across its radius and each split halves it again.
func (s AsteroidSize) Radius(t config.Tuning) float64 {
	switch s {
	case AsteroidLarge:
		return t.RoidsSize / 2
	case AsteroidMedium:
		return t.RoidsSize / 4
	case AsteroidSmall:
		return t.RoidsSize / 8
	default:
		return 0
	}
}

// Score returns the points for destroying an asteroid of this size.
// Smaller rocks are harder to hit and worth more.
func (s AsteroidSize) Score(t config.Tuning) int {
	switch s {
	case AsteroidLarge:
		return t.ScoreLarge
	case AsteroidMedium:
		return t.ScoreMedium
	case AsteroidSmall:
		return t.ScoreSmall
	default:
		return 0
	}
}

// Fragment returns the size of the pieces a destroyed asteroid breaks into.
// ok is false for the smallest size, which breaks into nothing.
func (s AsteroidSize) Fragment() (size AsteroidSize, ok bool) {
	if s <= AsteroidSmall {
		return 0, false
	}
	return s - 1, true
}

// fragmentsPerSplit is how many pieces a splitting asteroid produces.
const fragmentsPerSplit = 2

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y    float64      // Position (center)
	VX, VY  float64      // Velocity per tick
	Angle   float64      // Static heading, only used to orient the outline
	Size    AsteroidSize // Size category
	Radius  float64      // Collision/draw radius
	Vert    int          // Number of outline vertices
	Offsets []float64    // Per-vertex radius multipliers, fixed at creation
}

// NewAsteroid creates an asteroid at (x, y) with a random velocity scaled
// for the level and a random jagged outline.
func NewAsteroid(rng Rand, t config.Tuning, x, y float64, size AsteroidSize, level int) *Asteroid {
	speed := t.PerTick(t.RoidsSpeed * t.LevelMultiplier(level))

	vert := int(math.Floor(rng.Float64()*float64(t.RoidsVert+1) + float64(t.RoidsVert)/2))
	if vert < 3 {
		vert = 3
	}
	offsets := make([]float64, vert)
	for i := range offsets {
		offsets[i] = rng.Float64()*t.RoidsJag*2 + 1 - t.RoidsJag
	}

	return &Asteroid{
		X:       x,
		Y:       y,
		VX:      rng.Float64() * speed * randomSign(rng),
		VY:      rng.Float64() * speed * randomSign(rng),
		Angle:   rng.Float64() * math.Pi * 2,
		Size:    size,
		Radius:  size.Radius(t),
		Vert:    vert,
		Offsets: offsets,
	}
}

// Drift moves the asteroid one tick and wraps it around the field once it
// is fully off screen.
func (a *Asteroid) Drift(field Playfield) {
	a.X += a.VX
	a.Y += a.VY
	field.WrapMargin(&a.X, &a.Y, a.Radius)
}

// Split returns the fragments of a destroyed asteroid: two of the next
// size down at the same position with fresh velocity and shape, or nil for
// the smallest size.
func (a *Asteroid) Split(rng Rand, t config.Tuning, level int) []*Asteroid {
	size, ok := a.Size.Fragment()
	if !ok {
		return nil
	}
	fragments := make([]*Asteroid, fragmentsPerSplit)
	for i := range fragments {
		fragments[i] = NewAsteroid(rng, t, a.X, a.Y, size, level)
	}
	return fragments
}
