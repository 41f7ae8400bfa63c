// Package jsondoc persists each record list as one whole JSON document.
// Every mutation rewrites the full file; writes go to a temp file in the same
// directory and are renamed into place so a crash never leaves a torn
// document. All access to one collection is serialised by its mutex.
package jsondoc

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a JSON-document-backed list of records of type T.
// The zero value is not usable; create with New.
type Collection[T any] struct {
	path string
	mu   sync.RWMutex
}

// New creates a collection stored at the given file path.
func New[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads the whole document. A missing file yields an empty list. A
// corrupt file is surfaced as a diagnostic and treated as empty rather than
// failing the request.
// POST: never returns a nil slice
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadLocked()
}

// Replace overwrites the document with the given list.
// POST: file contains exactly items, atomically replaced
func (c *Collection[T]) Replace(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(items)
}

// Mutate runs fn over the current list under the collection's exclusive lock
// and persists the returned list with a single save. When fn returns an
// error nothing is written.
// INVARIANT: load, fn, and save run as one critical section; concurrent
// mutations on the same collection never interleave
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked()
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.saveLocked(updated)
}

func (c *Collection[T]) loadLocked() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("store_corrupt", "path", c.path, "error", err.Error())
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) saveLocked(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", c.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp for %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp for %s: %w", c.path, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}
