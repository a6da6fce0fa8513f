// Package input turns raw terminal bytes into held controls.
//
// Terminals report key presses but never releases, so a key counts as held
// while it keeps auto-repeating within keyHoldDuration.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 80 * time.Millisecond

// Input is the control state for one frame.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
	Enter  bool
	Any    bool // any byte arrived this frame
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	thrust time.Time
	fire   time.Time
	enter  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Read drains all available bytes (non-blocking) and returns the held
// controls as of now.
func (s *Stream) Read(now time.Time) Input {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return s.apply(buf, now)
}

// apply records the keys in buf as pressed at now and builds the input.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}
		applyByteToState(&s.state, b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Quit:   held(s.state.quit),
		Left:   held(s.state.left),
		Right:  held(s.state.right),
		Thrust: held(s.state.thrust),
		Fire:   held(s.state.fire),
		Enter:  held(s.state.enter),
		Any:    len(buf) > 0,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case 'u', 'U': // thrust + left
		state.thrust = now
		state.left = now
	case 'o', 'O': // thrust + right
		state.thrust = now
		state.right = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	}
}
