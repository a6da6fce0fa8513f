// Package sim is the simulation and collision engine: one owned State
// aggregate advanced by Step at a fixed tick rate.
//
// Nothing in this package blocks or reads the clock except Engine, which
// drives Step from a ticker and publishes snapshots for renderers.
package sim

import (
	"fmt"

	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/object"
)

// Controls are the held control flags set by input events and read once
// per tick by the ship stage.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
}

// Session holds the score counters and the banner.
type Session struct {
	Score     int
	HighScore int
	Lives     int
	Level     int // 0-based, shown as Level+1
	Banner    object.Banner
	Restart   int // ticks left before a new game once dead and the banner has faded
}

// State is the whole simulation. It is owned by a single goroutine; Step
// mutates it and Snapshot copies out what renderers need.
type State struct {
	Tuning     config.Tuning
	Field      object.Playfield
	Ship       *object.Ship
	Asteroids  []*object.Asteroid
	Explosions []*object.ExplosionGroup
	Session    Session
	Controls   Controls
	Tick       uint64

	rng     object.Rand
	pending []Event
	notices []Notice
}

// NewState creates a fresh game on level 0 with the given high score
// carried over from storage.
func NewState(t config.Tuning, rng object.Rand, highScore int) *State {
	s := &State{
		Tuning: t,
		Field:  object.Playfield{Width: t.FieldWidth, Height: t.FieldHeight},
		rng:    rng,
	}
	s.Session.HighScore = highScore
	s.newGame()
	s.notices = s.notices[:0]
	return s
}

// Queue schedules an input event for the start of the next Step.
func (s *State) Queue(ev Event) {
	s.pending = append(s.pending, ev)
}

// Step advances the simulation by one tick and returns the notices it
// produced. The returned slice is only valid until the next Step.
func (s *State) Step() []Notice {
	s.notices = s.notices[:0]

	for _, ev := range s.pending {
		s.ApplyEvent(ev)
	}
	s.pending = s.pending[:0]

	s.stepShip()
	s.stepBelt()
	s.stepLasers()
	s.stepExplosions()
	s.stepSession()
	s.Tick++

	if debugInvariants {
		if err := s.Validate(); err != nil {
			panic(fmt.Sprintf("sim: invariant violated at tick %d: %v", s.Tick, err))
		}
	}
	return s.notices
}

// notify records a notice for the caller of Step.
func (s *State) notify(n Notice) {
	s.notices = append(s.notices, n)
}
