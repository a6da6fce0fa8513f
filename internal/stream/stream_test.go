package stream

import (
	"context"
	"math"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomz197/roids/internal/loop/sim"
)

type fakeSource struct {
	snap atomic.Pointer[sim.Snapshot]
}

func (f *fakeSource) Snapshot() *sim.Snapshot { return f.snap.Load() }

func (f *fakeSource) set(tick uint64) {
	f.snap.Store(&sim.Snapshot{
		Tick:      tick,
		Width:     760,
		Height:    570,
		Asteroids: []sim.AsteroidView{{X: 10, Y: 20, Radius: 50, Offsets: []float64{1, 0.8, 1.2}}},
		HUD:       sim.HUD{Score: 40, Lives: 3},
	})
}

// startHub runs a hub behind an httptest server and returns its ws URL.
func startHub(t *testing.T, src Source) (*Hub, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(src, 5*time.Millisecond, nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial WS: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) *sim.Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read WS: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", msgType)
	}
	snap, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return snap
}

func TestHubStreamsSnapshots(t *testing.T) {
	src := &fakeSource{}
	src.set(7)
	_, url := startHub(t, src)
	conn := dialWS(t, url)

	snap := readSnapshot(t, conn)
	if snap.Tick != 7 || snap.HUD.Score != 40 || len(snap.Asteroids) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if got := snap.Asteroids[0].Offsets; len(got) != 3 || got[2] != 1.2 {
		t.Errorf("offsets = %v", got)
	}

	src.set(8)
	if snap := readSnapshot(t, conn); snap.Tick != 8 {
		t.Errorf("next tick = %d, want 8", snap.Tick)
	}
}

func TestHubSkipsUnchangedSnapshot(t *testing.T) {
	src := &fakeSource{}
	src.set(1)
	_, url := startHub(t, src)
	conn := dialWS(t, url)
	readSnapshot(t, conn)

	conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("received a frame for an unchanged snapshot")
	}
}

func TestHubUnregistersClosedClients(t *testing.T) {
	src := &fakeSource{}
	src.set(1)
	hub, url := startHub(t, src)

	conn := dialWS(t, url)
	readSnapshot(t, conn)
	if hub.ClientCount() != 1 {
		t.Fatalf("clients = %d, want 1", hub.ClientCount())
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("closed client never unregistered")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestConnectionLimitPerIP(t *testing.T) {
	hub := NewHub(&fakeSource{}, time.Second, nil)
	for i := 0; i < maxConnsPerIP; i++ {
		hub.TrackConnect("10.0.0.1")
	}
	if hub.CanAccept("10.0.0.1") {
		t.Error("accepted a connection above the per-IP limit")
	}
	if !hub.CanAccept("10.0.0.2") {
		t.Error("other address rejected")
	}
	hub.TrackDisconnect("10.0.0.1")
	if !hub.CanAccept("10.0.0.1") {
		t.Error("address still rejected after a disconnect")
	}
}

type fakePlayer struct {
	mu     sync.Mutex
	snap   *sim.Snapshot
	events []sim.Event
}

func (p *fakePlayer) Send(ev sim.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *fakePlayer) Snapshot() *sim.Snapshot { return p.snap }

func shipAt(x, y, angle float64, rocks ...sim.AsteroidView) *sim.Snapshot {
	return &sim.Snapshot{
		Width:     760,
		Height:    570,
		Ship:      sim.ShipView{X: x, Y: y, Angle: angle, Size: 18, Visible: true},
		Asteroids: rocks,
	}
}

func TestAutopilotTurnsTowardNearest(t *testing.T) {
	tests := []struct {
		name      string
		rock      sim.AsteroidView
		wantLeft  bool
		wantRight bool
	}{
		{"below turns right", sim.AsteroidView{X: 100, Y: 400, Radius: 10}, false, true},
		{"above turns left", sim.AsteroidView{X: 100, Y: -200, Radius: 10}, true, false},
		{"ahead holds course", sim.AsteroidView{X: 400, Y: 100, Radius: 10}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAutopilot(&fakePlayer{}, time.Millisecond)
			in := a.decide(shipAt(100, 100, 0, tt.rock))
			if in.Left != tt.wantLeft || in.Right != tt.wantRight {
				t.Errorf("left=%v right=%v, want %v/%v", in.Left, in.Right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestAutopilotFiresInBursts(t *testing.T) {
	a := NewAutopilot(&fakePlayer{}, time.Millisecond)
	snap := shipAt(100, 100, 0, sim.AsteroidView{X: 400, Y: 100, Radius: 10})

	first := a.decide(snap)
	second := a.decide(snap)
	if !first.Fire || second.Fire {
		t.Errorf("fire = %v then %v, want press then release", first.Fire, second.Fire)
	}
	if !first.Thrust {
		t.Error("far target should be approached")
	}
}

func TestAutopilotEvadesCloseRock(t *testing.T) {
	a := NewAutopilot(&fakePlayer{}, time.Millisecond)
	in := a.decide(shipAt(100, 100, 0, sim.AsteroidView{X: 150, Y: 100, Radius: 20}))
	if in.Fire {
		t.Error("fired while evading")
	}
	if !in.Left && !in.Right {
		t.Error("should turn away from a close rock")
	}
}

func TestAutopilotIdleWhileDead(t *testing.T) {
	a := NewAutopilot(&fakePlayer{}, time.Millisecond)
	snap := shipAt(100, 100, 0, sim.AsteroidView{X: 100, Y: 400, Radius: 10})
	snap.Ship.Dead = true
	if in := a.decide(snap); in.Left || in.Right || in.Thrust || in.Fire {
		t.Errorf("dead ship got controls %+v", in)
	}
}

func TestAutopilotStepSendsTransitions(t *testing.T) {
	p := &fakePlayer{snap: shipAt(100, 100, 0, sim.AsteroidView{X: 100, Y: 400, Radius: 10})}
	a := NewAutopilot(p, time.Millisecond)

	a.Step()
	a.Step()
	if len(p.events) != 1 || p.events[0] != sim.TurnRightDown {
		t.Fatalf("events = %v, want a single right turn press", p.events)
	}

	p.snap.Ship.Angle = math.Pi / 2
	a.Step()
	if last := p.events[len(p.events)-1]; last != sim.FireRequested {
		t.Errorf("events = %v, want fire once aligned", p.events)
	}
}

func TestAngleDiff(t *testing.T) {
	if d := angleDiff(0.1, 2*math.Pi); math.Abs(d-0.1) > 1e-9 {
		t.Errorf("angleDiff across wrap = %f, want 0.1", d)
	}
	if d := angleDiff(-3, 3); math.Abs(d-(2*math.Pi-6)) > 1e-9 {
		t.Errorf("angleDiff(-3,3) = %f", d)
	}
}
