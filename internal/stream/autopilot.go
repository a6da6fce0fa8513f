package stream

import (
	"context"
	"math"
	"time"

	"github.com/tomz197/roids/internal/input"
	"github.com/tomz197/roids/internal/loop/sim"
)

// Autopilot steering limits.
const (
	aimTolerance  = 0.12 // radians; turn until the target is this close to the nose
	fireTolerance = 0.25 // radians
	cruiseDist    = 220  // thrust toward targets further than this
	evadeDist     = 90   // turn away and thrust when a rock is this close
)

// Player is a game the autopilot can steer. *sim.Engine implements it.
type Player interface {
	Send(ev sim.Event)
	Snapshot() *sim.Snapshot
}

// Autopilot plays a game on its own so the spectator stream always has
// something to show.
type Autopilot struct {
	game     Player
	interval time.Duration
	tracker  input.Tracker
	fired    bool
}

// NewAutopilot creates an autopilot deciding every interval.
func NewAutopilot(game Player, interval time.Duration) *Autopilot {
	return &Autopilot{game: game, interval: interval}
}

// Run steers until ctx is cancelled.
func (a *Autopilot) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Step()
		}
	}
}

// Step reads the latest snapshot and sends the control changes it calls for.
func (a *Autopilot) Step() {
	want := a.decide(a.game.Snapshot())
	for _, ev := range input.Events(a.tracker.Update(want)) {
		a.game.Send(ev)
	}
}

// decide picks the controls to hold: turn toward the nearest asteroid,
// fire while it is ahead and close in on far targets. Fire alternates
// between held and released since every shot needs a fresh press.
func (a *Autopilot) decide(snap *sim.Snapshot) input.Input {
	var in input.Input
	if snap == nil || snap.Ship.Dead || snap.Ship.Exploding {
		return in
	}
	ship := snap.Ship

	target, dist := nearest(snap)
	if target == nil {
		return in
	}

	aim := angleDiff(math.Atan2(target.Y-ship.Y, target.X-ship.X), ship.Angle)
	if dist-target.Radius < evadeDist {
		// Too close: point away and run.
		away := angleDiff(aim+math.Pi, 0)
		in.Left, in.Right = away < -aimTolerance, away > aimTolerance
		in.Thrust = math.Abs(away) < math.Pi/2
		return in
	}

	in.Left, in.Right = aim < -aimTolerance, aim > aimTolerance
	in.Thrust = dist > cruiseDist && math.Abs(aim) < math.Pi/4
	if math.Abs(aim) < fireTolerance {
		a.fired = !a.fired
		in.Fire = a.fired
	} else {
		a.fired = false
	}
	return in
}

// nearest returns the closest asteroid to the ship and its distance.
func nearest(snap *sim.Snapshot) (*sim.AsteroidView, float64) {
	var best *sim.AsteroidView
	bestDist := math.Inf(1)
	for i := range snap.Asteroids {
		r := &snap.Asteroids[i]
		if d := math.Hypot(r.X-snap.Ship.X, r.Y-snap.Ship.Y); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, bestDist
}

// angleDiff returns target-current normalized to [-pi, pi).
func angleDiff(target, current float64) float64 {
	d := math.Mod(target-current+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}
