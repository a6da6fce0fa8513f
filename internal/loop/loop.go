// Package loop runs one game in a terminal: a simulation engine ticking
// in the background and a client drawing it and feeding it keys.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/highscore"
	"github.com/tomz197/roids/internal/loop/client"
	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/loop/sim"
)

// Options configures a terminal game.
type Options struct {
	Tuning       config.Tuning
	Store        highscore.Store // nil keeps scores in memory
	Player       string          // high score key and log field
	TermSizeFunc draw.TermSizeFunc
	Idle         bool // warn and disconnect idle players
	Logger       *zap.Logger
}

// Run plays one game reading keys from r and drawing to w. It returns
// when the player quits, the input closes or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := sim.NewEngine(sim.EngineOptions{
		Tuning: opts.Tuning,
		Store:  opts.Store,
		Player: opts.Player,
		Logger: log,
	})

	clientOpts := client.ClientOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Username:     opts.Player,
		Logger:       log,
	}
	if opts.Idle {
		clientOpts.IdleWarn = config.InactivityWarnUser * time.Second
		clientOpts.IdleDisconnect = config.InactivityDisconnectUser * time.Second
	}

	return client.NewClient(engine, r, w, clientOpts).Run(ctx)
}
