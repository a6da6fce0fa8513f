package sim

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/highscore"
	"github.com/tomz197/roids/internal/loop/config"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEngineLoadsStoredHighScore(t *testing.T) {
	store := highscore.NewMemoryStore()
	store.Save(context.Background(), "hana", 4200)

	e := NewEngine(EngineOptions{
		Tuning: config.Default(),
		Store:  store,
		Player: "hana",
		Seed:   3,
		Logger: zap.NewNop(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	waitFor(t, "first tick", func() bool { return e.Snapshot().Tick > 0 })
	if got := e.Snapshot().HUD.HighScore; got != 4200 {
		t.Errorf("high score = %d, want 4200", got)
	}
}

func TestEngineAppliesInput(t *testing.T) {
	e := NewEngine(EngineOptions{Tuning: config.Default(), Seed: 5})
	start := e.Snapshot().Ship.Angle

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	e.Send(TurnRightDown)
	e.Send(FireRequested)

	waitFor(t, "ship to turn", func() bool { return e.Snapshot().Ship.Angle > start })
	waitFor(t, "laser", func() bool { return len(e.Snapshot().Lasers) == 1 })
}

func TestEnginePersistsHighScoreOnStop(t *testing.T) {
	store := highscore.NewMemoryStore()
	e := NewEngine(EngineOptions{Tuning: config.Default(), Store: store, Player: "ivan", Seed: 9})

	// Score by hand so the value is deterministic, then let Run write it.
	want := e.state.Tuning.ScoreSmall
	e.state.addScore(want)
	for _, n := range e.state.notices {
		e.handle(n)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()

	waitFor(t, "high score write", func() bool {
		got, err := store.Load(context.Background(), "ivan")
		return err == nil && got == want
	})
	cancel()
	<-done
}
