package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tomz197/roids/internal/highscore"
)

// OpenStore opens the configured high score store. The returned close
// function is never nil.
func (s StoreConfig) OpenStore(ctx context.Context, log *zap.Logger) (highscore.Store, func() error, error) {
	noop := func() error { return nil }
	switch s.Driver {
	case StoreSQLite:
		db, err := highscore.OpenSQLite(ctx, s.Path, log)
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	case StoreFile:
		return highscore.NewFileStore(s.Path), noop, nil
	case StoreMemory:
		return highscore.NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("store: unknown driver %q", s.Driver)
	}
}
