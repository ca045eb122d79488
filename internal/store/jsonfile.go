package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	domainerrors "github.com/aibandlist/submission-server/internal/errors"
)

// fileLocks holds one mutex per absolute file path, shared by every JSONFile
// opened on that path.
var fileLocks sync.Map // map[string]*sync.Mutex

func lockFor(path string) *sync.Mutex {
	mu, _ := fileLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// JSONFile is a Collection stored as a single JSON array in a file.
type JSONFile[T any] struct {
	path   string
	mu     *sync.Mutex
	logger *slog.Logger
}

// NewJSONFile returns a collection backed by the file at path.
// The file is not touched until the first call.
func NewJSONFile[T any](path string, logger *slog.Logger) (*JSONFile[T], error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	abs = filepath.Clean(abs)

	return &JSONFile[T]{
		path:   abs,
		mu:     lockFor(abs),
		logger: logger,
	}, nil
}

// Path returns the absolute path of the backing file.
func (f *JSONFile[T]) Path() string {
	return f.path
}

// Ensure creates the backing file holding an empty array if it does not exist.
func (f *JSONFile[T]) Ensure(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return domainerrors.Storagef(err, "stat %s", f.path)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return domainerrors.Storagef(err, "create directory for %s", f.path)
	}
	if err := f.write(nil); err != nil {
		return err
	}

	f.logger.Info("created empty collection file", "path", f.path)
	return nil
}

// LoadAll reads every record from the file.
// A file containing JSON null yields an empty collection.
func (f *JSONFile[T]) LoadAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.read()
}

// SaveAll replaces the file content with records.
func (f *JSONFile[T]) SaveAll(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.write(records)
}

// Update loads the collection, applies fn and saves the result, holding the
// file's lock for the whole cycle. If fn returns an error nothing is written.
func (f *JSONFile[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	records, err := f.read()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return f.write(updated)
}

func (f *JSONFile[T]) read() ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, domainerrors.Storagef(err, "read %s", f.path)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domainerrors.Storagef(err, "decode %s", f.path)
	}
	if records == nil {
		records = make([]T, 0)
	}
	return records, nil
}

// write encodes records with two-space indentation into a temp file next to
// the target and renames it into place.
func (f *JSONFile[T]) write(records []T) error {
	if records == nil {
		records = make([]T, 0)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return domainerrors.Storagef(err, "encode %s", f.path)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return domainerrors.Storagef(err, "write %s", f.path)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return domainerrors.Storagef(err, "write %s", f.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return domainerrors.Storagef(err, "write %s", f.path)
	}
	if err := os.Chmod(tmpPath, filePerm(f.path)); err != nil {
		_ = os.Remove(tmpPath)
		return domainerrors.Storagef(err, "write %s", f.path)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return domainerrors.Storagef(err, "replace %s", f.path)
	}

	f.logger.Debug("collection saved", "path", f.path, "records", len(records))
	return nil
}

// filePerm keeps the mode of an existing file, defaulting to 0644.
func filePerm(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
