package client

import "time"

// Screen is the client's current phase.
type Screen int

const (
	ScreenStart   Screen = iota // Title screen, engine not started yet
	ScreenPlaying               // Engine running
)

// ClientState holds per-connection state: the phase, idle tracking and
// what was on screen last frame.
type ClientState struct {
	Screen     Screen
	Running    bool      // Client loop running
	lastInput  time.Time // Last time any byte arrived
	isInactive bool      // Inactivity warning shown

	prevScreen  Screen
	wasInactive bool
}

// NewClientState creates a new initialized client state.
func NewClientState(now time.Time) *ClientState {
	return &ClientState{
		Screen:    ScreenStart,
		Running:   true,
		lastInput: now,
	}
}
