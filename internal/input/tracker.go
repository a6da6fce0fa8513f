package input

import "github.com/tomz197/roids/internal/loop/sim"

// Control is one of the ship controls.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlThrust
	ControlFire
)

func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlThrust:
		return "thrust"
	case ControlFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Change is a press (Down) or release of a control.
type Change struct {
	Control Control
	Down    bool
}

// Tracker turns successive held-control states into press and release
// transitions.
type Tracker struct {
	held [4]bool
}

// Update compares in with the previous state and returns the transitions,
// in control order.
func (t *Tracker) Update(in Input) []Change {
	now := [4]bool{in.Left, in.Right, in.Thrust, in.Fire}
	var changes []Change
	for c := range now {
		if now[c] != t.held[c] {
			changes = append(changes, Change{Control: Control(c), Down: now[c]})
		}
	}
	t.held = now
	return changes
}

// Release returns the releases for every held control and forgets them.
func (t *Tracker) Release() []Change {
	return t.Update(Input{})
}

// Events maps control transitions to simulation events.
func Events(changes []Change) []sim.Event {
	events := make([]sim.Event, 0, len(changes))
	for _, ch := range changes {
		var down, up sim.Event
		switch ch.Control {
		case ControlLeft:
			down, up = sim.TurnLeftDown, sim.TurnLeftUp
		case ControlRight:
			down, up = sim.TurnRightDown, sim.TurnRightUp
		case ControlThrust:
			down, up = sim.ThrustDown, sim.ThrustUp
		case ControlFire:
			down, up = sim.FireRequested, sim.FireReleased
		default:
			continue
		}
		if ch.Down {
			events = append(events, down)
		} else {
			events = append(events, up)
		}
	}
	return events
}
