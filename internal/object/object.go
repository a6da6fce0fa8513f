// Package object defines the simulation entities and their factories:
// the ship, asteroids, projectiles, explosion groups and banners.
//
// Entities only know their own kinematics. Orchestration (who collides
// with whom, when things spawn) lives in the sim package.
package object

import "math/rand"

// Rand is the random source entity factories draw from.
// *rand.Rand satisfies it; tests pass a seeded one for determinism.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// Playfield is the toroidal area the simulation runs on.
type Playfield struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (p Playfield) Center() (float64, float64) {
	return p.Width / 2, p.Height / 2
}

// WrapMargin teleports a point that has left the field by more than margin
// to the opposite edge, just outside it. Axes wrap independently and the
// comparisons are strict, so a point placed on the far side by a wrap is
// never wrapped back in the same or the following tick.
func (p Playfield) WrapMargin(x, y *float64, margin float64) {
	if *x < -margin {
		*x = p.Width + margin
	} else if *x > p.Width+margin {
		*x = -margin
	}
	if *y < -margin {
		*y = p.Height + margin
	} else if *y > p.Height+margin {
		*y = -margin
	}
}

// WrapEdge wraps a dimensionless point exactly at the field edges.
func (p Playfield) WrapEdge(x, y *float64) {
	if *x < 0 {
		*x = p.Width
	} else if *x > p.Width {
		*x = 0
	}
	if *y < 0 {
		*y = p.Height
	} else if *y > p.Height {
		*y = 0
	}
}

// randomSign returns 1 or -1 with equal probability.
func randomSign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
