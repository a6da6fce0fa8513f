package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/roids/internal/loop/sim"
)

func TestApplyMapsKeys(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"wasd left", "a", Input{Left: true, Any: true}},
		{"arrow right", "\x1b[C", Input{Right: true, Any: true}},
		{"arrow up thrusts", "\x1b[A", Input{Thrust: true, Any: true}},
		{"space fires", " ", Input{Fire: true, Any: true}},
		{"combo key", "u", Input{Thrust: true, Left: true, Any: true}},
		{"quit", "q", Input{Quit: true, Any: true}},
		{"enter", "\r", Input{Enter: true, Any: true}},
		{"several at once", "dw ", Input{Right: true, Thrust: true, Fire: true, Any: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{}
			if got := s.apply([]byte(tt.in), now); got != tt.want {
				t.Errorf("apply(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyHeldWhileRepeating(t *testing.T) {
	s := &Stream{}
	start := time.Now()

	s.apply([]byte("a"), start)
	if in := s.apply(nil, start.Add(keyHoldDuration/2)); !in.Left {
		t.Error("key released before the hold duration")
	}
	if in := s.apply(nil, start.Add(keyHoldDuration)); in.Left {
		t.Error("key still held after the hold duration")
	}
}

func TestStreamReadsFromReader(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	deadline := time.Now().Add(time.Second)
	for {
		now := time.Now()
		if in := s.Read(now); in.Thrust {
			break
		}
		if now.After(deadline) {
			t.Fatal("byte never arrived")
		}
		time.Sleep(time.Millisecond)
	}

	for !s.Closed() {
		s.Read(time.Now())
		if time.Now().After(deadline) {
			t.Fatal("stream never reported EOF")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTrackerTransitions(t *testing.T) {
	var tr Tracker

	got := tr.Update(Input{Left: true, Fire: true})
	want := []Change{{ControlLeft, true}, {ControlFire, true}}
	if !equalChanges(got, want) {
		t.Fatalf("press = %v, want %v", got, want)
	}

	if got := tr.Update(Input{Left: true, Fire: true}); len(got) != 0 {
		t.Errorf("held keys produced %v", got)
	}

	got = tr.Update(Input{Fire: true, Thrust: true})
	want = []Change{{ControlLeft, false}, {ControlThrust, true}}
	if !equalChanges(got, want) {
		t.Errorf("change = %v, want %v", got, want)
	}

	got = tr.Release()
	want = []Change{{ControlThrust, false}, {ControlFire, false}}
	if !equalChanges(got, want) {
		t.Errorf("release = %v, want %v", got, want)
	}
}

func equalChanges(a, b []Change) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEvents(t *testing.T) {
	tests := []struct {
		change Change
		want   sim.Event
	}{
		{Change{Control: ControlLeft, Down: true}, sim.TurnLeftDown},
		{Change{Control: ControlLeft}, sim.TurnLeftUp},
		{Change{Control: ControlRight, Down: true}, sim.TurnRightDown},
		{Change{Control: ControlRight}, sim.TurnRightUp},
		{Change{Control: ControlThrust, Down: true}, sim.ThrustDown},
		{Change{Control: ControlThrust}, sim.ThrustUp},
		{Change{Control: ControlFire, Down: true}, sim.FireRequested},
		{Change{Control: ControlFire}, sim.FireReleased},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := Events([]Change{tt.change})
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Events(%+v) = %v, want [%v]", tt.change, got, tt.want)
			}
		})
	}
}
