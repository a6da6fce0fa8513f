package object

import (
	"math"

	"github.com/tomz197/roids/internal/loop/config"
)

// ExplosionKind tags an explosion group with the event that created it.
type ExplosionKind int

const (
	ExplosionShip  ExplosionKind = iota // Ship destroyed; costs a life when it completes
	ExplosionLaser                      // Laser impact on an asteroid
)

func (k ExplosionKind) String() string {
	switch k {
	case ExplosionShip:
		return "ship"
	case ExplosionLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// explosionParams are the kind-specific constants of a burst.
type explosionParams struct {
	dots   int
	speed  float64 // per tick
	radius float64
	ticks  int
	radial bool // evenly spaced directions instead of random per-axis speeds
	vary   bool // per-particle lifetime between half and full duration
}

func paramsFor(kind ExplosionKind, t config.Tuning) explosionParams {
	switch kind {
	case ExplosionShip:
		// Ship particles all live exactly as long as the ship explosion so
		// the life is deducted by the time the ship is due to respawn.
		return explosionParams{
			dots:   t.ShipExplodeDots,
			speed:  t.PerTick(t.ShipDotsSpeed),
			radius: t.ShipDotRadius,
			ticks:  t.ExplodeTicks(),
			radial: true,
		}
	default:
		return explosionParams{
			dots:   t.LaserExplodeDots,
			speed:  t.PerTick(t.LaserDotsSpeed),
			radius: t.LaserDotRadius,
			ticks:  t.Ticks(t.LaserExplodeSeconds),
			vary:   true,
		}
	}
}

// Particle is one dot of an explosion.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per tick
	Radius float64
	TTL    int // Ticks remaining; inert at 0
}

// Alive reports whether the particle still moves and draws.
func (p *Particle) Alive() bool {
	return p.TTL > 0
}

// ExplosionGroup is a burst of particles created for one destruction event.
type ExplosionGroup struct {
	Kind      ExplosionKind
	Particles []Particle
}

// NewExplosion creates a burst of the given kind centred at (x, y).
func NewExplosion(rng Rand, t config.Tuning, kind ExplosionKind, x, y float64) *ExplosionGroup {
	p := paramsFor(kind, t)
	if p.dots < 1 {
		p.dots = 1
	}
	if p.ticks < 1 {
		p.ticks = 1
	}

	particles := make([]Particle, p.dots)
	for i := range particles {
		var vx, vy float64
		if p.radial {
			angle := float64(i)*2*math.Pi/float64(p.dots) + (rng.Float64()-0.5)*0.2
			spd := p.speed * (0.5 + rng.Float64()*0.5)
			vx = math.Cos(angle) * spd
			vy = math.Sin(angle) * spd
		} else {
			vx = rng.Float64() * p.speed * randomSign(rng)
			vy = rng.Float64() * p.speed * randomSign(rng)
		}

		ttl := p.ticks
		if p.vary {
			ttl = int(math.Ceil(float64(p.ticks) * (0.5 + rng.Float64()*0.5)))
		}

		particles[i] = Particle{X: x, Y: y, VX: vx, VY: vy, Radius: p.radius, TTL: ttl}
	}

	return &ExplosionGroup{Kind: kind, Particles: particles}
}

// Advance moves every live particle one tick and counts down its lifetime.
func (g *ExplosionGroup) Advance() {
	for i := range g.Particles {
		p := &g.Particles[i]
		if !p.Alive() {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.TTL--
	}
}

// Done reports whether every particle has expired.
func (g *ExplosionGroup) Done() bool {
	for i := range g.Particles {
		if g.Particles[i].Alive() {
			return false
		}
	}
	return true
}
