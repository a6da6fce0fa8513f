package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/config"
	"github.com/tomz197/roids/internal/highscore"
	"github.com/tomz197/roids/internal/loop/sim"
	"github.com/tomz197/roids/internal/stream"
)

const (
	broadcastInterval = time.Second / 30
	autopilotInterval = time.Second / 20
)

//go:embed index.html
var htmlPage string

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := serve(cfg, log); err != nil {
		log.Fatal("web server", zap.Error(err))
	}
}

func serve(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Attract mode: a game nobody owns, played by the autopilot.
	engine := sim.NewEngine(sim.EngineOptions{
		Tuning: cfg.Game,
		Store:  highscore.NewMemoryStore(),
		Player: "autopilot",
		Logger: log.Named("attract"),
	})
	go engine.Run(ctx)
	go stream.NewAutopilot(engine, autopilotInterval).Run(ctx)

	hub := stream.NewHub(engine, broadcastInterval, log.Named("stream"))
	go hub.Run(ctx)

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", cfg.Web.DisplayHost)
	page = strings.ReplaceAll(page, "{{.SSHPort}}", cfg.SSH.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		fmt.Fprint(w, page)
	})
	mux.Handle("/ws", hub)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Web.Host, cfg.Web.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	log.Info("starting web server", zap.String("addr", "http://"+srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return err
	}
	log.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
