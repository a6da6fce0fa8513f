package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/roids/internal/config"
	"github.com/tomz197/roids/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	// The game owns the terminal, so logs go to a file.
	if cfg.Logging.File == "" {
		cfg.Logging.File = config.GetEnv("ROIDS_LOG_FILE", "roids.log")
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := cfg.Store.OpenStore(ctx, log)
	if err != nil {
		return err
	}
	defer closeStore()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	player := config.GetEnv("USER", "player")
	log.Info("starting local game", zap.String("player", player), zap.String("store", cfg.Store.Driver))

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.Options{
		Tuning: cfg.Game,
		Store:  store,
		Player: player,
		Logger: log,
	})
}
