package object

import (
	"math"

	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/physics"
)

// ShipState is the phase of the ship state machine.
type ShipState int

const (
	ShipFlying    ShipState = iota // Under player control
	ShipExploding                  // Drifting explosion, counting down
	ShipDead                       // Out of lives, waiting for a new game
)

func (s ShipState) String() string {
	switch s {
	case ShipFlying:
		return "flying"
	case ShipExploding:
		return "exploding"
	case ShipDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Ship is the player-controlled spaceship.
//
// Sign convention: the ship moves by x -= ThrustX, y += ThrustY, and
// thrust accumulates as ThrustX -= cos(Angle), ThrustY += sin(Angle).
// The net motion is along (cos Angle, sin Angle), the same direction the
// nose points after rotation.
type Ship struct {
	X, Y             float64 // Position (center of ship)
	Angle            float64 // Heading in radians
	Rot              float64 // Heading change per tick
	ThrustX, ThrustY float64 // Momentum, see sign convention above
	Thrusting        bool
	CanShoot         bool
	ExplodeTime      int // Ticks left in the explosion, 0 when not exploding
	BlinkTime        int // Ticks left in the current blink half-cycle
	BlinkNum         int // Blink half-cycles left; invulnerable while > 0
	Dead             bool

	Lasers []*Projectile
}

// NewShip creates a ship at the centre of the field, facing up, with a full
// invulnerability window.
func NewShip(t config.Tuning) *Ship {
	return &Ship{
		X:         t.FieldWidth / 2,
		Y:         t.FieldHeight / 2,
		Angle:     physics.DegToRad(270),
		CanShoot:  true,
		BlinkTime: t.BlinkTicks(),
		BlinkNum:  t.BlinkCount(),
	}
}

// State derives the state machine phase from the ship fields.
func (s *Ship) State() ShipState {
	switch {
	case s.ExplodeTime > 0:
		return ShipExploding
	case s.Dead:
		return ShipDead
	default:
		return ShipFlying
	}
}

// Invulnerable reports whether the post-spawn blink window is still running.
func (s *Ship) Invulnerable() bool {
	return s.BlinkNum > 0
}

// Visible reports whether the ship is drawn this tick (even blink parity).
func (s *Ship) Visible() bool {
	return s.BlinkNum%2 == 0
}

// Blink advances the invulnerability countdown by one tick.
func (s *Ship) Blink(t config.Tuning) {
	if s.BlinkNum <= 0 {
		return
	}
	s.BlinkTime--
	if s.BlinkTime <= 0 {
		s.BlinkTime = t.BlinkTicks()
		s.BlinkNum--
	}
}

// Accelerate pushes the ship along its heading while thrusting and applies
// friction otherwise.
func (s *Ship) Accelerate(t config.Tuning) {
	if !s.Thrusting {
		s.applyFriction(t)
		return
	}
	s.ThrustX -= t.PerTick(t.ShipThrust * math.Cos(s.Angle))
	s.ThrustY += t.PerTick(t.ShipThrust * math.Sin(s.Angle))
}

// applyFriction decays momentum by F*thrust/FPS each tick.
func (s *Ship) applyFriction(t config.Tuning) {
	s.ThrustX -= t.PerTick(t.Friction * s.ThrustX)
	s.ThrustY -= t.PerTick(t.Friction * s.ThrustY)
}

// Move applies momentum to position.
func (s *Ship) Move() {
	s.X -= s.ThrustX
	s.Y += s.ThrustY
}

// Turn applies the per-tick rotation.
func (s *Ship) Turn() {
	s.Angle += s.Rot
}

// Explode starts the explosion countdown.
func (s *Ship) Explode(t config.Tuning) {
	s.ExplodeTime = t.ExplodeTicks()
	s.Thrusting = false
	s.CanShoot = false
}

// Drift advances an exploding ship by one tick: it keeps its momentum
// under friction and counts down. Returns true when the explosion is over.
func (s *Ship) Drift(t config.Tuning) bool {
	s.CanShoot = false
	s.applyFriction(t)
	s.Move()
	s.ExplodeTime--
	if s.ExplodeTime <= 0 {
		s.ExplodeTime = 0
		return true
	}
	return false
}

// Wrap keeps the ship on the toroidal field, using its size as margin.
func (s *Ship) Wrap(field Playfield, t config.Tuning) {
	field.WrapMargin(&s.X, &s.Y, t.ShipSize)
}

// Nose returns the position of the ship's nose.
func (s *Ship) Nose(t config.Tuning) (float64, float64) {
	return physics.Rotate(t.ShipSize, 0, s.Angle, s.X, s.Y)
}

// Fire handles a fire request. A projectile is spawned at the nose when
// the ship is flying, armed and below the laser cap. The ship is disarmed
// either way until the fire control is released.
func (s *Ship) Fire(t config.Tuning) bool {
	fired := false
	if s.State() == ShipFlying && s.CanShoot && len(s.Lasers) < t.LaserMax {
		x, y := s.Nose(t)
		s.Lasers = append(s.Lasers, NewProjectile(t, x, y, s.Angle))
		fired = true
	}
	s.CanShoot = false
	return fired
}

// ExplosionRadius is the radius of the outer explosion ring.
func (s *Ship) ExplosionRadius(t config.Tuning) float64 {
	return t.ShipSize * 1.7
}
