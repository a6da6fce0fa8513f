package sim

// Event is a discrete input event from the input collaborator.
type Event int

const (
	TurnLeftDown Event = iota
	TurnLeftUp
	TurnRightDown
	TurnRightUp
	ThrustDown
	ThrustUp
	FireRequested
	FireReleased
)

func (e Event) String() string {
	switch e {
	case TurnLeftDown:
		return "turn-left-down"
	case TurnLeftUp:
		return "turn-left-up"
	case TurnRightDown:
		return "turn-right-down"
	case TurnRightUp:
		return "turn-right-up"
	case ThrustDown:
		return "thrust-down"
	case ThrustUp:
		return "thrust-up"
	case FireRequested:
		return "fire-requested"
	case FireReleased:
		return "fire-released"
	default:
		return "unknown"
	}
}

// ApplyEvent updates the control flags for ev. Input is ignored while the
// ship is dead. Fire requests are handled immediately: the ship fires if
// armed and below the laser cap, and is disarmed until FireReleased.
func (s *State) ApplyEvent(ev Event) {
	if s.Ship.Dead {
		return
	}
	switch ev {
	case TurnLeftDown:
		s.Controls.Left = true
	case TurnLeftUp:
		s.Controls.Left = false
	case TurnRightDown:
		s.Controls.Right = true
	case TurnRightUp:
		s.Controls.Right = false
	case ThrustDown:
		s.Controls.Thrust = true
	case ThrustUp:
		s.Controls.Thrust = false
	case FireRequested:
		s.Ship.Fire(s.Tuning)
	case FireReleased:
		if s.Ship.ExplodeTime == 0 {
			s.Ship.CanShoot = true
		}
	}
}

// NoticeType identifies what happened during a tick.
type NoticeType int

const (
	NoticeHighScore     NoticeType = iota // Value: new high score, persist it
	NoticeLevelUp                         // Value: new level (0-based)
	NoticeShipDestroyed                   // Value: lives left before the deduction
	NoticeLifeLost                        // Value: lives left
	NoticeGameOver                        // Value: final score
	NoticeNewGame
)

func (t NoticeType) String() string {
	switch t {
	case NoticeHighScore:
		return "high-score"
	case NoticeLevelUp:
		return "level-up"
	case NoticeShipDestroyed:
		return "ship-destroyed"
	case NoticeLifeLost:
		return "life-lost"
	case NoticeGameOver:
		return "game-over"
	case NoticeNewGame:
		return "new-game"
	default:
		return "unknown"
	}
}

// Notice is an output event of Step, consumed by the engine for logging
// and persistence.
type Notice struct {
	Type  NoticeType
	Value int
}
