package highscore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps high scores in a YAML file mapping player to score.
// It suits the single-player terminal game.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(_ context.Context, key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return 0, err
	}
	score, ok := scores[key]
	if !ok {
		return 0, ErrNotFound
	}
	return score, nil
}

// Save stores score unless a higher one is already recorded. A malformed
// file is replaced.
func (f *FileStore) Save(_ context.Context, key string, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil && !errors.Is(err, ErrNotFound) {
		scores = nil
	}
	if scores == nil {
		scores = make(map[string]int)
	}
	if score <= scores[key] {
		return nil
	}
	scores[key] = score

	data, err := yaml.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// read returns ErrNotFound for a missing file.
func (f *FileStore) read() (map[string]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	var scores map[string]int
	if err := yaml.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return scores, nil
}
