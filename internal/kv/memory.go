// Package kv provides the key-value stores preferences are persisted in:
// an in-memory map, a SQLite table and a YAML defaults file.
package kv

import (
	"errors"
	"sync"

	"measurekit/internal/prefs"
)

// ErrClosed is returned by writes to a closed store.
var ErrClosed = errors.New("store closed")

// Backend is a prefs.KV that holds resources.
type Backend interface {
	prefs.KV
	Close() error
}

var (
	_ Backend = (*Memory)(nil)
	_ Backend = (*SQLite)(nil)
	_ Backend = (*File)(nil)
)

// Memory is a process-local store. Values do not survive the process.
type Memory struct {
	mu      sync.RWMutex
	strings map[string]string
	bools   map[string]bool
	closed  bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		strings: make(map[string]string),
		bools:   make(map[string]bool),
	}
}

// GetString returns the string stored under key.
func (m *Memory) GetString(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.strings[key]
	return v, ok
}

// GetBool returns the bool stored under key, or false.
func (m *Memory) GetBool(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bools[key]
}

// SetString stores value under key.
func (m *Memory) SetString(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.bools, key)
	m.strings[key] = value
	return nil
}

// SetBool stores value under key.
func (m *Memory) SetBool(key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.strings, key)
	m.bools[key] = value
	return nil
}

// Close marks the store closed. Reads keep working.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
