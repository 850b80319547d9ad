package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"measurekit/internal/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File keeps preferences in a flat YAML mapping on disk, in the manner of a
// user-defaults plist:
//
//	distance: kilometers
//	temperature: celsius
//	emoji: true
//
// Every write rewrites the whole file through a temporary file and rename.
type File struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
	closed bool
}

// NewFile opens the defaults file at path. A missing file is an empty store.
func NewFile(path string) (*File, error) {
	f := &File{path: path, values: map[string]any{}}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the defaults file path.
func (f *File) Path() string {
	return f.path
}

// Reload re-reads the file. On error the previous values are kept.
func (f *File) Reload() error {
	values, err := readDefaults(f.path)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.values = values
	f.mu.Unlock()
	return nil
}

func readDefaults(path string) (map[string]any, error) {
	values := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, fmt.Errorf("failed to read defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse defaults %s: %w", path, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

// GetString returns the string stored under key. Non-string values are absent.
func (f *File) GetString(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key].(string)
	return v, ok
}

// GetBool returns the bool stored under key, or false.
func (f *File) GetBool(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, _ := f.values[key].(bool)
	return v
}

// SetString stores value under key and rewrites the file.
func (f *File) SetString(key, value string) error {
	return f.set(key, value)
}

// SetBool stores value under key and rewrites the file.
func (f *File) SetBool(key string, value bool) error {
	return f.set(key, value)
}

func (f *File) set(key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	next := make(map[string]any, len(f.values)+1)
	for k, v := range f.values {
		next[k] = v
	}
	next[key] = value

	if err := writeDefaults(f.path, next); err != nil {
		return err
	}
	f.values = next
	logging.Get(logging.CategoryStore).Debug("defaults file written",
		zap.String("path", f.path), zap.String("key", key))
	return nil
}

func writeDefaults(path string, values map[string]any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create defaults directory: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal defaults: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write defaults: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write defaults: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace defaults: %w", err)
	}
	return nil
}

// Close stops further writes.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
