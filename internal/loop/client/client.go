// Package client runs one terminal session: it reads keys, forwards them
// to a game as events and draws the game's snapshots on a half-block
// canvas.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/input"
	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/loop/sim"
)

// Game is the simulation a client drives. *sim.Engine implements it.
type Game interface {
	Run(ctx context.Context)
	Send(ev sim.Event)
	Snapshot() *sim.Snapshot
}

// Client handles rendering and input for a single connection.
type Client struct {
	game         Game
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	tracker      input.Tracker
	in           input.Input
	username     string
	termSizeFunc draw.TermSizeFunc
	idleWarn     time.Duration
	idleQuit     time.Duration
	log          *zap.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	// Idle limits; zero disables the inactivity warning and disconnect.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
	Logger         *zap.Logger
}

// NewClient creates a client for game reading keys from r and drawing to w.
func NewClient(game Game, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Create canvas with clamped dimensions for max render resolution
	snap := game.Snapshot()
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTerminal(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, snap.Width, snap.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		game:         game,
		state:        NewClientState(time.Now()),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		idleWarn:     opts.IdleWarn,
		idleQuit:     opts.IdleDisconnect,
		log:          log,
	}
}

// Run starts the client loop. It blocks until the player quits, the input
// closes or ctx is cancelled, then stops the game and waits for it.
func (c *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	gameDone := make(chan struct{})
	started := false
	defer func() {
		cancel()
		if started {
			<-gameDone
		}
	}()

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	ticker := time.NewTicker(config.ClientTargetFrameTime)
	defer ticker.Stop()

	for c.state.Running {
		now := time.Now()

		// Process input
		c.processInput(now)

		// Handle screen resize
		c.updateScreen()

		if c.state.Screen == ScreenStart && (c.in.Fire || c.in.Enter) {
			c.startGame()
			started = true
			go func() {
				c.game.Run(ctx)
				close(gameDone)
			}()
			c.log.Info("game session started", zap.String("user", c.username))
		}

		// Draw frame
		if err := c.drawFrame(now); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			c.state.Running = false
		case <-ticker.C:
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads the held keys from the terminal.
func (c *Client) processInput(now time.Time) {
	in := c.inputStream.Read(now)
	if c.inputStream.Closed() {
		c.state.Running = false
	}
	c.handleInput(in, now)
}

// handleInput tracks idleness and forwards control changes to the game
// while playing.
func (c *Client) handleInput(in input.Input, now time.Time) {
	c.in = in
	if in.Quit {
		c.state.Running = false
	}

	if in.Any {
		c.state.lastInput = now
		c.state.isInactive = false
	} else if c.idleQuit > 0 && now.Sub(c.state.lastInput) > c.idleQuit {
		c.log.Info("disconnecting idle player", zap.String("user", c.username))
		c.state.Running = false
	} else if c.idleWarn > 0 && now.Sub(c.state.lastInput) > c.idleWarn {
		c.state.isInactive = true
	}

	if c.state.Screen != ScreenPlaying {
		return
	}
	changes := c.tracker.Update(in)
	if !c.state.Running {
		changes = append(changes, c.tracker.Release()...)
	}
	for _, ev := range input.Events(changes) {
		c.game.Send(ev)
	}
}

// startGame leaves the title screen. The keys used to start are treated
// as already held so they do not also steer or fire.
func (c *Client) startGame() {
	c.tracker.Update(c.in)
	c.state.Screen = ScreenPlaying
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTerminal(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}
