// Package highscore persists the best score per player.
//
// The simulation never touches a store directly: the engine loads the
// high score when a game starts and hands write requests to a Saver,
// which persists them off the tick goroutine.
package highscore

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when no score is stored for the key.
var ErrNotFound = errors.New("highscore: not found")

// Store reads and writes high scores keyed by player name.
type Store interface {
	Load(ctx context.Context, key string) (int, error)
	Save(ctx context.Context, key string, score int) error
}

// MemoryStore keeps scores in memory. It is used when persistence is
// disabled and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

func (m *MemoryStore) Load(_ context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	score, ok := m.scores[key]
	if !ok {
		return 0, ErrNotFound
	}
	return score, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.scores[key] {
		m.scores[key] = score
	}
	return nil
}
