package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"measurekit/internal/logging"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLite drivers. DriverModernc is pure Go; DriverMattn needs cgo.
const (
	DriverModernc = "sqlite"
	DriverMattn   = "sqlite3"
)

const (
	kindString = "string"
	kindBool   = "bool"
)

// SQLite stores preferences in a single table of a SQLite database.
type SQLite struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
	closed bool
}

// NewSQLite creates or opens the database at dbPath with the given driver
// (DriverModernc when empty).
func NewSQLite(dbPath, driver string) (*SQLite, error) {
	if driver == "" {
		driver = DriverModernc
	}

	dsn, err := sqliteDSN(dbPath, driver)
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLite{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Get(logging.CategoryStore).Debug("sqlite store opened",
		zap.String("path", dbPath), zap.String("driver", driver))
	return s, nil
}

func sqliteDSN(dbPath, driver string) (string, error) {
	switch driver {
	case DriverModernc:
		return dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", nil
	case DriverMattn:
		return dbPath + "?_journal_mode=WAL&_busy_timeout=5000", nil
	}
	return "", fmt.Errorf("unsupported sqlite driver %q (valid: %s, %s)", driver, DriverModernc, DriverMattn)
}

func (s *SQLite) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS defaults (
		key TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		value TEXT NOT NULL
	);`)
	return err
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.dbPath
}

func (s *SQLite) get(key, kind string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM defaults WHERE key = ? AND kind = ?`, key, kind).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		logging.Get(logging.CategoryStore).Warn("sqlite read failed",
			zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, true
}

func (s *SQLite) set(key, kind, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO defaults (key, kind, value) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET kind = excluded.kind, value = excluded.value
	`, key, kind, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetString returns the string stored under key.
func (s *SQLite) GetString(key string) (string, bool) {
	return s.get(key, kindString)
}

// GetBool returns the bool stored under key, or false.
func (s *SQLite) GetBool(key string) bool {
	raw, ok := s.get(key, kindBool)
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

// SetString stores value under key.
func (s *SQLite) SetString(key, value string) error {
	return s.set(key, kindString, value)
}

// SetBool stores value under key.
func (s *SQLite) SetBool(key string, value bool) error {
	return s.set(key, kindBool, strconv.FormatBool(value))
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
