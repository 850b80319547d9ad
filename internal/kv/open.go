package kv

import (
	"fmt"

	"measurekit/internal/config"
	"measurekit/internal/logging"

	"go.uber.org/zap"
)

// Open returns the backend selected by cfg.Store.
func Open(cfg *config.Config) (Backend, error) {
	path := cfg.StorePath()
	logging.Get(logging.CategoryStore).Debug("opening preferences store",
		zap.String("backend", cfg.Store.Backend), zap.String("path", path))

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendSQLite:
		return NewSQLite(path, cfg.Store.Driver)
	case config.BackendFile:
		return NewFile(path)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
