package object

import (
	"math"

	"github.com/tomz197/roids/internal/loop/config"
)

// Projectile is a laser bolt fired by the ship.
type Projectile struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per tick
	Angle  float64 // Heading, for drawing
	Dist   float64 // Distance travelled so far
}

// NewProjectile creates a projectile at (x, y) travelling along angle at
// the configured laser speed.
func NewProjectile(t config.Tuning, x, y, angle float64) *Projectile {
	return &Projectile{
		X:     x,
		Y:     y,
		VX:    t.PerTick(t.LaserSpeed * math.Cos(angle)),
		VY:    t.PerTick(t.LaserSpeed * math.Sin(angle)),
		Angle: angle,
	}
}

// Advance moves the projectile one tick, records the distance travelled
// and wraps it exactly at the field edges.
func (p *Projectile) Advance(field Playfield) {
	p.X += p.VX
	p.Y += p.VY
	p.Dist += math.Hypot(p.VX, p.VY)
	field.WrapEdge(&p.X, &p.Y)
}

// Spent reports whether the projectile has exceeded its range.
func (p *Projectile) Spent(t config.Tuning) bool {
	return p.Dist > t.LaserRange()
}
