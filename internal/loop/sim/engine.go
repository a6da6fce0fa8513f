package sim

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/highscore"
	"github.com/tomz197/roids/internal/loop/config"
)

// eventBuffer is how many input events may queue between two ticks.
const eventBuffer = 256

// EngineOptions configures an Engine. Zero values pick sensible defaults.
type EngineOptions struct {
	Tuning config.Tuning
	Store  highscore.Store // nil keeps scores in memory
	Player string          // high score key
	Seed   int64           // 0 seeds from the clock
	Logger *zap.Logger
}

// Engine runs a State at its fixed tick rate. Input is sent from any
// goroutine; renderers read the latest published Snapshot.
type Engine struct {
	state    *State
	events   chan Event
	snapshot atomic.Pointer[Snapshot]
	store    highscore.Store
	saver    *highscore.Saver
	player   string
	log      *zap.Logger
}

func NewEngine(opts EngineOptions) *Engine {
	if opts.Tuning.TicksPerSecond == 0 {
		opts.Tuning = config.Default()
	}
	if opts.Store == nil {
		opts.Store = highscore.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	log := opts.Logger.With(zap.String("player", opts.Player))

	e := &Engine{
		state:  NewState(opts.Tuning, rand.New(rand.NewSource(opts.Seed)), 0),
		events: make(chan Event, eventBuffer),
		store:  opts.Store,
		saver:  highscore.NewSaver(opts.Store, opts.Player, log),
		player: opts.Player,
		log:    log,
	}
	e.snapshot.Store(e.state.Snapshot())
	return e
}

// Send queues an input event for the next tick. Events are dropped when
// the queue is full.
func (e *Engine) Send(ev Event) {
	select {
	case e.events <- ev:
	default:
		e.log.Debug("input queue full, dropping event", zap.Stringer("event", ev))
	}
}

// Snapshot returns the most recently published snapshot.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Run loads the stored high score and steps the simulation every tick
// until ctx is cancelled. Pending high score writes are flushed on return.
func (e *Engine) Run(ctx context.Context) {
	if stored := highscore.LoadOrZero(ctx, e.store, e.player, e.log); stored > e.state.Session.HighScore {
		e.state.Session.HighScore = stored
		e.snapshot.Store(e.state.Snapshot())
	}

	saverDone := make(chan struct{})
	go func() {
		e.saver.Run(ctx)
		close(saverDone)
	}()
	defer func() { <-saverDone }()

	e.log.Info("game started",
		zap.Int("high_score", e.state.Session.HighScore),
		zap.Duration("tick", e.state.Tuning.TickDuration()))

	ticker := time.NewTicker(e.state.Tuning.TickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.log.Info("game stopped",
				zap.Int("score", e.state.Session.Score),
				zap.Int("level", e.state.Session.Level))
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick drains the input queue, steps once and publishes the result.
func (e *Engine) tick() {
drain:
	for {
		select {
		case ev := <-e.events:
			e.state.Queue(ev)
		default:
			break drain
		}
	}

	for _, n := range e.state.Step() {
		e.handle(n)
	}
	e.snapshot.Store(e.state.Snapshot())
}

func (e *Engine) handle(n Notice) {
	switch n.Type {
	case NoticeHighScore:
		e.saver.Request(n.Value)
	case NoticeLevelUp:
		e.log.Debug("level up", zap.Int("level", n.Value))
	case NoticeShipDestroyed:
		e.log.Debug("ship destroyed", zap.Int("lives", n.Value))
	case NoticeLifeLost:
		e.log.Debug("life lost", zap.Int("lives", n.Value))
	case NoticeGameOver:
		e.log.Info("game over", zap.Int("score", n.Value), zap.Int("level", e.state.Session.Level))
	case NoticeNewGame:
		e.log.Debug("new game")
	}
}
