package sim

import "github.com/tomz197/roids/internal/object"

// stepLasers moves the ship's projectiles, culls the spent ones and
// resolves projectile-asteroid hits.
//
// Hits are marked first and both collections are compacted once at the
// end, so removal never disturbs the indices being iterated.
func (s *State) stepLasers() {
	lasers := s.Ship.Lasers
	if len(lasers) == 0 {
		return
	}

	spent := make([]bool, len(lasers))
	for i, p := range lasers {
		p.Advance(s.Field)
		spent[i] = p.Spent(s.Tuning)
	}

	hit := make([]bool, len(s.Asteroids))
	anyHit := false
	for ai := len(s.Asteroids) - 1; ai >= 0; ai-- {
		a := s.Asteroids[ai]
		for pi := len(lasers) - 1; pi >= 0; pi-- {
			p := lasers[pi]
			if spent[pi] || !laserHits(p, a) {
				continue
			}
			hit[ai] = true
			spent[pi] = true
			anyHit = true
			s.Explosions = append(s.Explosions,
				object.NewExplosion(s.rng, s.Tuning, object.ExplosionLaser, p.X, p.Y))
			break
		}
	}

	kept := lasers[:0]
	for i, p := range lasers {
		if !spent[i] {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(lasers); i++ {
		lasers[i] = nil
	}
	s.Ship.Lasers = kept

	if anyHit {
		s.destroyAsteroids(hit)
	}
}
