package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// jsonFile is a JSON array persisted as a single file. Every read decodes the
// whole file and every write replaces it.
type jsonFile struct {
	fs     afero.Fs
	path   string
	strict bool
	log    zerolog.Logger

	// mu serializes read-modify-write cycles inside this process only.
	mu sync.Mutex
}

// Option configures a JSON-backed repository.
type Option func(*jsonFile)

// WithStrictLoad makes mutations fail with ErrMalformedStorage instead of
// treating an unreadable file as an empty collection and overwriting it.
func WithStrictLoad(strict bool) Option {
	return func(f *jsonFile) {
		f.strict = strict
	}
}

// WithLogger sets the logger used to report lenient load fallbacks.
func WithLogger(l zerolog.Logger) Option {
	return func(f *jsonFile) {
		f.log = l
	}
}

func newJSONFile(fs afero.Fs, path string, opts ...Option) *jsonFile {
	f := &jsonFile{fs: fs, path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// EnsureFile creates path holding an empty JSON array if it does not exist.
// An existing file is left untouched.
func EnsureFile(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if exists {
		return nil
	}
	return afero.WriteFile(fs, path, []byte("[]"), 0o644)
}

// loadJSON decodes the array stored at path. A missing file is an empty
// collection; any other failure returns an empty collection together with an
// error wrapping ErrMalformedStorage.
func loadJSON[T any](fs afero.Fs, path string) ([]T, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return []T{}, fmt.Errorf("%w: read %s: %v", ErrMalformedStorage, path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, fmt.Errorf("%w: decode %s: %v", ErrMalformedStorage, path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveJSON writes items pretty-printed to a temp file next to path and renames
// it over path, so readers never observe a partially written array.
func saveJSON[T any](fs afero.Fs, path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := afero.TempFile(fs, dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// loadForUpdate is the load step of a mutation. In lenient mode a malformed
// file is logged and replaced by an empty collection.
func loadForUpdate[T any](f *jsonFile) ([]T, error) {
	items, err := loadJSON[T](f.fs, f.path)
	if err != nil {
		if f.strict {
			return nil, err
		}
		f.log.Warn().Err(err).Str("path", f.path).Msg("store unreadable, continuing with an empty collection")
	}
	return items, nil
}
