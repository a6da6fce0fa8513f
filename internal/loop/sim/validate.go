package sim

import (
	"errors"
	"fmt"
)

// Validate reports every broken invariant of the state. A non-nil result
// is a programming defect, never a runtime condition.
func (s *State) Validate() error {
	var errs []error
	t := s.Tuning
	ship := s.Ship

	if ship == nil {
		return errors.New("no ship")
	}
	if ship.Dead && ship.ExplodeTime > 0 {
		errs = append(errs, errors.New("ship is both dead and exploding"))
	}
	if ship.ExplodeTime < 0 || ship.BlinkNum < 0 {
		errs = append(errs, fmt.Errorf("negative ship timers: explode=%d blink=%d", ship.ExplodeTime, ship.BlinkNum))
	}
	if len(ship.Lasers) > t.LaserMax {
		errs = append(errs, fmt.Errorf("%d lasers exceed cap %d", len(ship.Lasers), t.LaserMax))
	}
	if ship.Dead && s.Session.Lives > 0 {
		errs = append(errs, fmt.Errorf("ship dead with %d lives left", s.Session.Lives))
	}

	for i, a := range s.Asteroids {
		if a == nil {
			errs = append(errs, fmt.Errorf("asteroid %d is nil", i))
			continue
		}
		if r := a.Size.Radius(t); r == 0 || a.Radius != r {
			errs = append(errs, fmt.Errorf("asteroid %d: size %v with radius %g", i, a.Size, a.Radius))
		}
		if len(a.Offsets) != a.Vert {
			errs = append(errs, fmt.Errorf("asteroid %d: %d offsets for %d vertices", i, len(a.Offsets), a.Vert))
		}
	}

	if s.Session.Lives < 0 || s.Session.Lives > t.Lives {
		errs = append(errs, fmt.Errorf("lives %d outside 0..%d", s.Session.Lives, t.Lives))
	}
	if s.Session.Score < 0 || s.Session.HighScore < s.Session.Score {
		errs = append(errs, fmt.Errorf("score %d, high score %d", s.Session.Score, s.Session.HighScore))
	}
	if a := s.Session.Banner.Alpha; a < 0 || a > 1 {
		errs = append(errs, fmt.Errorf("banner alpha %g outside 0..1", a))
	}
	return errors.Join(errs...)
}
