package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/config"
	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/highscore"
	"github.com/tomz197/roids/internal/loop"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	// Shared servers keep per-user scores in SQLite unless told otherwise.
	if _, set := os.LookupEnv("ROIDS_STORE"); !set && config.GetEnv(config.ConfigEnv, "") == "" {
		cfg.Store = config.StoreConfig{Driver: config.StoreSQLite, Path: "roids.db"}
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := serve(cfg, log); err != nil {
		log.Fatal("ssh server", zap.Error(err))
	}
}

func serve(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := cfg.Store.OpenStore(ctx, log)
	if err != nil {
		return err
	}
	defer closeStore()

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		log.Warn("failed to get working directory", zap.Error(workErr))
	}
	log.Info("ssh config",
		zap.String("host", cfg.SSH.Host),
		zap.String("port", cfg.SSH.Port),
		zap.String("host_key", cfg.SSH.HostKeyPath),
		zap.String("store", cfg.Store.Driver),
		zap.String("working_dir", workingDir))

	games := &sessions{
		ctx:   ctx,
		cfg:   cfg,
		store: store,
		log:   log,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	log.Info("starting ssh server", zap.String("addr", net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-done:
	case err := <-serveErr:
		return err
	}
	log.Info("shutting down server")

	// Stop every game so pending high scores are flushed, then wait for
	// the sessions to end.
	cancel()
	games.wait(15 * time.Second)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	return s.Shutdown(shutdownCtx)
}

// sessions runs one independent game per SSH session.
type sessions struct {
	ctx   context.Context
	cfg   *config.Config
	store highscore.Store
	log   *zap.Logger
	wg    sync.WaitGroup
}

// middleware handles SSH sessions and runs the game.
func (g *sessions) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		g.wg.Add(1)
		defer g.wg.Done()

		log := g.log.With(zap.String("user", sess.User()), zap.String("remote", sess.RemoteAddr().String()))
		log.Info("new game session",
			zap.String("terminal", pty.Term),
			zap.Int("width", pty.Window.Width),
			zap.Int("height", pty.Window.Height))

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(g.ctx)
		defer cancel()
		go func() {
			// The session context ends when the client disconnects.
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
			Tuning:       g.cfg.Game,
			Store:        g.store,
			Player:       sess.User(),
			TermSizeFunc: sizeTracker.getSize,
			Idle:         true,
			Logger:       log,
		})
		if err != nil {
			log.Warn("game error", zap.Error(err))
		}

		log.Info("session ended")
		next(sess)
	}
}

// wait blocks until every session ended or the timeout passed.
func (g *sessions) wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		g.log.Warn("sessions still running after shutdown timeout")
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
