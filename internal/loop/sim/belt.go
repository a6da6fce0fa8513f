package sim

import (
	"fmt"

	"github.com/tomz197/roids/internal/object"
)

// stepBelt drifts every asteroid one tick.
func (s *State) stepBelt() {
	for _, a := range s.Asteroids {
		a.Drift(s.Field)
	}
}

// destroyAsteroids removes every marked asteroid in one pass, appending
// its fragments and awarding its score. When the field ends up empty the
// next level starts, exactly once for the whole batch.
func (s *State) destroyAsteroids(marked []bool) {
	var fragments []*object.Asteroid
	kept := s.Asteroids[:0]
	for i, a := range s.Asteroids {
		if !marked[i] {
			kept = append(kept, a)
			continue
		}
		fragments = append(fragments, a.Split(s.rng, s.Tuning, s.Session.Level)...)
		s.addScore(a.Size.Score(s.Tuning))
	}
	// Clear the tail so dropped asteroids are not retained by the backing array.
	for i := len(kept); i < len(s.Asteroids); i++ {
		s.Asteroids[i] = nil
	}
	s.Asteroids = append(kept, fragments...)

	if len(s.Asteroids) == 0 {
		s.nextLevel()
	}
}

// nextLevel advances the level and regenerates the belt around the ship.
func (s *State) nextLevel() {
	s.Session.Level++
	s.newBelt()
	s.notify(Notice{Type: NoticeLevelUp, Value: s.Session.Level})
}

// newBelt creates the asteroids for the current level and shows its banner.
func (s *State) newBelt() {
	s.Asteroids = object.NewBelt(s.rng, s.Tuning, s.Session.Level, s.Ship.X, s.Ship.Y)
	s.Session.Banner.Show(fmt.Sprintf("LEVEL %d", s.Session.Level+1))
}
