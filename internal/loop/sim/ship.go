package sim

import "github.com/tomz197/roids/internal/object"

// stepShip runs the ship state machine for one tick and moves the lasers
// it owns along with it.
func (s *State) stepShip() {
	ship := s.Ship
	t := s.Tuning

	switch ship.State() {
	case object.ShipDead:
		return

	case object.ShipExploding:
		if ship.Drift(t) {
			s.explosionOver()
			return
		}
		ship.Wrap(s.Field, t)

	case object.ShipFlying:
		ship.Blink(t)
		if s.collideShip() {
			ship.Wrap(s.Field, t)
			return
		}

		ship.Thrusting = s.Controls.Thrust
		ship.Rot = s.turnInput() * t.TurnRate()
		ship.Accelerate(t)
		ship.Move()
		ship.Turn()
		ship.Wrap(s.Field, t)
	}
}

// turnInput is -1 for left, 1 for right and 0 when both or neither are held.
func (s *State) turnInput() float64 {
	var dir float64
	if s.Controls.Left {
		dir--
	}
	if s.Controls.Right {
		dir++
	}
	return dir
}

// collideShip checks the flying ship against every asteroid. On the first
// hit the ship starts exploding and the asteroid is destroyed.
func (s *State) collideShip() bool {
	ship := s.Ship
	for i, a := range s.Asteroids {
		if !shipHits(ship, s.Tuning.ShipSize, a) {
			continue
		}
		ship.Explode(s.Tuning)
		s.Explosions = append(s.Explosions,
			object.NewExplosion(s.rng, s.Tuning, object.ExplosionShip, ship.X, ship.Y))
		s.notify(Notice{Type: NoticeShipDestroyed, Value: s.Session.Lives})

		marked := make([]bool, len(s.Asteroids))
		marked[i] = true
		s.destroyAsteroids(marked)
		return true
	}
	return false
}

// explosionOver replaces the wrecked ship with a fresh one, or leaves it
// dead when the game is over. The life itself is deducted when the ship
// explosion group completes, which happens no later than this.
func (s *State) explosionOver() {
	if s.Session.Lives <= 0 {
		s.gameOver()
		return
	}
	s.Ship = object.NewShip(s.Tuning)
}
