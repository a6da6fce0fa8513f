package highscore

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// flushTimeout bounds the final write when the saver is stopped.
const flushTimeout = 2 * time.Second

// Saver persists high score write requests in the background. Requests
// made faster than the store can take them are coalesced so only the
// highest pending score is written.
type Saver struct {
	store   Store
	key     string
	log     *zap.Logger
	pending chan int
}

func NewSaver(store Store, key string, log *zap.Logger) *Saver {
	return &Saver{
		store:   store,
		key:     key,
		log:     log,
		pending: make(chan int, 1),
	}
}

// Request queues score for writing. It never blocks.
func (s *Saver) Request(score int) {
	for {
		select {
		case s.pending <- score:
			return
		default:
		}
		select {
		case old := <-s.pending:
			if old > score {
				score = old
			}
		default:
		}
	}
}

// Run writes queued scores until ctx is cancelled, then flushes the last
// pending one.
func (s *Saver) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			select {
			case score := <-s.pending:
				flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
				s.save(flushCtx, score)
				cancel()
			default:
			}
			return
		case score := <-s.pending:
			s.save(ctx, score)
		}
	}
}

func (s *Saver) save(ctx context.Context, score int) {
	if err := s.store.Save(ctx, s.key, score); err != nil {
		s.log.Warn("save high score failed",
			zap.String("player", s.key),
			zap.Int("score", score),
			zap.Error(err))
		return
	}
	s.log.Debug("high score saved", zap.String("player", s.key), zap.Int("score", score))
}

// LoadOrZero reads the stored high score for key. A missing or unreadable
// score counts as zero; read failures are logged.
func LoadOrZero(ctx context.Context, store Store, key string, log *zap.Logger) int {
	score, err := store.Load(ctx, key)
	switch {
	case err == nil:
		return score
	case errors.Is(err, ErrNotFound):
		return 0
	default:
		log.Warn("load high score failed, starting from zero",
			zap.String("player", key), zap.Error(err))
		return 0
	}
}
