package birthday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/phrazzld/fortune/internal/fortune"
	"github.com/phrazzld/fortune/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// StorageKey is the single well-known key the birthday is stored under.
const StorageKey = "thai-fortune-birthday"

// Store errors
var (
	// ErrNotSet is returned by Load when no birthday has been saved.
	ErrNotSet = errors.New("birthday not set")

	// ErrCorrupt is returned by Load when the stored value cannot be read as a date.
	ErrCorrupt = errors.New("stored birthday is corrupt")
)

// Store persists a single birthday.
type Store interface {
	// Load returns the saved birthday.
	// Returns ErrNotSet if nothing has been saved.
	Load(ctx context.Context) (fortune.Date, error)

	// Save replaces the saved birthday.
	Save(ctx context.Context, d fortune.Date) error

	// Reset removes the saved birthday. Resetting an empty store is not an error.
	Reset(ctx context.Context) error
}

// FileStore keeps the birthday in a small YAML document on disk:
//
//	thai-fortune-birthday: "1990-01-15"
type FileStore struct {
	path   string
	loc    *time.Location
	logger *slog.Logger
}

// NewFileStore creates a FileStore at path. Timestamps written by older
// clients are read in loc; a nil loc means time.Local.
// If logger is nil, a default logger will be used.
func NewFileStore(path string, loc *time.Location, l *slog.Logger) *FileStore {
	if loc == nil {
		loc = time.Local
	}
	if l == nil {
		l = slog.Default()
	}
	return &FileStore{
		path:   path,
		loc:    loc,
		logger: l,
	}
}

// log returns the logger for one call: the context's logger when it carries
// one, otherwise the store's, tagged with the store component either way.
func (s *FileStore) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger).With(slog.String("component", "birthday_store"))
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (fortune.Date, error) {
	if err := ctx.Err(); err != nil {
		return fortune.Date{}, err
	}
	log := s.log(ctx)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("no birthday file", slog.String("path", s.path))
		return fortune.Date{}, ErrNotSet
	}
	if err != nil {
		return fortune.Date{}, fmt.Errorf("failed to read birthday file: %w", err)
	}

	doc := map[string]string{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Warn("birthday file is not valid YAML",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return fortune.Date{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	raw, ok := doc[StorageKey]
	if !ok || raw == "" {
		return fortune.Date{}, ErrNotSet
	}

	d, err := decode(raw, s.loc)
	if err != nil {
		log.Warn("stored birthday could not be decoded",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return fortune.Date{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	log.Debug("birthday loaded", slog.String("path", s.path))
	return d, nil
}

// Save implements Store. The file is replaced atomically.
func (s *FileStore) Save(ctx context.Context, d fortune.Date) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.IsZero() {
		return fortune.ErrZeroDate
	}
	log := s.log(ctx)

	data, err := yaml.Marshal(map[string]string{StorageKey: d.String()})
	if err != nil {
		return fmt.Errorf("failed to encode birthday: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create birthday directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".birthday-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary birthday file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename has succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write birthday file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write birthday file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace birthday file: %w", err)
	}

	log.Info("birthday saved", slog.String("path", s.path))
	return nil
}

// Reset implements Store.
func (s *FileStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := s.log(ctx)

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove birthday file: %w", err)
	}

	log.Info("birthday reset", slog.String("path", s.path))
	return nil
}

// MemoryStore is an in-process Store, safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	birthday fortune.Date
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context) (fortune.Date, error) {
	if err := ctx.Err(); err != nil {
		return fortune.Date{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.birthday.IsZero() {
		return fortune.Date{}, ErrNotSet
	}
	return s.birthday, nil
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, d fortune.Date) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.IsZero() {
		return fortune.ErrZeroDate
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.birthday = d
	return nil
}

// Reset implements Store.
func (s *MemoryStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.birthday = fortune.Date{}
	return nil
}
