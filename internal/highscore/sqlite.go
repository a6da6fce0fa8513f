package highscore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore keeps high scores in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path and applies pending
// migrations.
func OpenSQLite(ctx context.Context, path string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("high score database ready", zap.String("path", path))
	return &SQLiteStore{db: db, log: log}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM high_scores WHERE player = ?`, key,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("load high score for %q: %w", key, err)
	}
	return score, nil
}

// Save stores score unless a higher one is already recorded.
func (s *SQLiteStore) Save(ctx context.Context, key string, score int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO high_scores (player, score, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(player) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		key, score, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save high score for %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
