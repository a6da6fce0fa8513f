package sim

import "github.com/tomz197/roids/internal/object"

// stepExplosions advances every explosion group and retires the finished
// ones. A finished ship group costs a life.
func (s *State) stepExplosions() {
	if len(s.Explosions) == 0 {
		return
	}

	kept := s.Explosions[:0]
	var shipDone int
	for _, g := range s.Explosions {
		g.Advance()
		if !g.Done() {
			kept = append(kept, g)
			continue
		}
		if g.Kind == object.ExplosionShip {
			shipDone++
		}
	}
	for i := len(kept); i < len(s.Explosions); i++ {
		s.Explosions[i] = nil
	}
	s.Explosions = kept

	for ; shipDone > 0; shipDone-- {
		s.loseLife()
	}
}
