// Package stream broadcasts game snapshots to websocket spectators as
// msgpack binary frames.
package stream

import (
	"context"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/loop/sim"
)

const (
	maxTotalConns = 200
	maxConnsPerIP = 5
)

// Source is anything that publishes snapshots. *sim.Engine implements it.
type Source interface {
	Snapshot() *sim.Snapshot
}

// Hub tracks spectators and pushes the latest snapshot to all of them at
// a fixed rate.
type Hub struct {
	source   Source
	interval time.Duration
	log      *zap.Logger

	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // closed when Run returns

	// Last broadcast tick, owned by Run
	lastTick uint64
	sentAny  bool

	// Connection limiting (accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int
}

// NewHub creates a hub broadcasting source every interval.
func NewHub(source Source, interval time.Duration, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		source:     source,
		interval:   interval,
		log:        log,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		done:       make(chan struct{}),
		ipConns:    make(map[string]int),
	}
}

func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns < maxTotalConns && h.ipConns[ip] < maxConnsPerIP
}

func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
}

func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Run processes register/unregister events and broadcasts snapshots
// until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			h.log.Debug("spectator joined", zap.String("addr", c.remoteAddr))

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.log.Debug("spectator left", zap.String("addr", c.remoteAddr))

		case <-ticker.C:
			h.broadcast()
		}
	}
}

// broadcast encodes the current snapshot once and queues it for every
// client. Nothing is sent when the snapshot has not advanced.
func (h *Hub) broadcast() {
	snap := h.source.Snapshot()
	if snap == nil || (h.sentAny && snap.Tick == h.lastTick) {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}

	data, err := Encode(snap)
	if err != nil {
		h.log.Warn("encode snapshot", zap.Error(err))
		return
	}
	h.lastTick, h.sentAny = snap.Tick, true
	for c := range h.clients {
		c.Send(data)
	}
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Encode serializes a snapshot for the wire.
func Encode(snap *sim.Snapshot) ([]byte, error) {
	return msgpack.Marshal(snap)
}

// Decode parses a frame produced by Encode.
func Decode(data []byte) (*sim.Snapshot, error) {
	var snap sim.Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
