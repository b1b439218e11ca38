// Package linestore persists production lines as a single JSON document
// on disk. The document is the ordered list of lines with their recipe
// instances flattened, which is also the import/export format of the
// planner CLI.
package linestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// Store is a file-backed repository.ProductionLine
type Store struct {
	mu   sync.RWMutex
	path string
}

var _ repository.ProductionLine = (*Store)(nil)

// New creates a store persisting to path. The file is created on the
// first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Decode parses a persisted document
func Decode(data []byte) ([]domain.ProductionLine, error) {
	var lines []domain.ProductionLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	return lines, nil
}

// Encode renders lines in the persisted format
func Encode(lines []domain.ProductionLine) ([]byte, error) {
	if lines == nil {
		lines = []domain.ProductionLine{}
	}
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	return append(data, '\n'), nil
}

func (s *Store) read(ctx context.Context) ([]domain.ProductionLine, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Debug(LogMsgFileMissing, "path", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return Decode(data)
}

// write replaces the file atomically: a temp file in the same directory
// is renamed over the old one.
func (s *Store) write(ctx context.Context, lines []domain.ProductionLine) error {
	data, err := Encode(lines)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err := os.Remove(tmpName); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Warn(LogMsgTempCleanup, "path", tmpName, "error", err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := tmp.Chmod(FileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgLinesWritten, "path", s.path, "lines", len(lines))
	return nil
}

func indexOf(lines []domain.ProductionLine, slug string) int {
	for i := range lines {
		if lines[i].Slug == slug {
			return i
		}
	}
	return -1
}

// List returns the listing view of every line
func (s *Store) List(ctx context.Context) ([]domain.LineInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.LineInfo, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Info())
	}
	return out, nil
}

// GetBySlug returns a single line
func (s *Store) GetBySlug(ctx context.Context, slug string) (*domain.ProductionLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(lines, slug)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrLineNotFound, slug)
	}
	line := lines[i]
	return &line, nil
}

// SlugExists reports whether a line uses slug
func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, err := s.read(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(lines, slug) >= 0, nil
}

// Create appends a new line
func (s *Store) Create(ctx context.Context, line *domain.ProductionLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.read(ctx)
	if err != nil {
		return err
	}
	if indexOf(lines, line.Slug) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, line.Slug)
	}
	return s.write(ctx, append(lines, line.Clone()))
}

// Update replaces the line with the same slug
func (s *Store) Update(ctx context.Context, line *domain.ProductionLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.read(ctx)
	if err != nil {
		return err
	}
	i := indexOf(lines, line.Slug)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrLineNotFound, line.Slug)
	}
	lines[i] = line.Clone()
	return s.write(ctx, lines)
}

// Delete removes a line
func (s *Store) Delete(ctx context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.read(ctx)
	if err != nil {
		return err
	}
	i := indexOf(lines, slug)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrLineNotFound, slug)
	}
	return s.write(ctx, append(lines[:i], lines[i+1:]...))
}

// Load returns every line in order
func (s *Store) Load(ctx context.Context) ([]domain.ProductionLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.ProductionLine{}
	}
	return lines, nil
}

// Save replaces every line. Slugs must be unique.
func (s *Store) Save(ctx context.Context, lines []domain.ProductionLine) error {
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, dup := seen[l.Slug]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, l.Slug)
		}
		seen[l.Slug] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, lines)
}

// Ping checks that the file, if present, can be read
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.read(ctx)
	return err
}
