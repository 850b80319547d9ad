// Package prefs maps the three user preferences (distance unit, temperature
// unit, emoji visibility) onto an injected key-value store.
package prefs

import (
	"fmt"

	"measurekit/internal/logging"
	"measurekit/internal/units"

	"go.uber.org/zap"
)

// Keys under which preferences are persisted.
const (
	KeyDistance    = "distance"
	KeyTemperature = "temperature"
	KeyEmoji       = "emoji"
)

// Defaults used when a key is absent or holds an unparseable value.
const (
	DefaultDistanceUnit    = units.Miles
	DefaultTemperatureUnit = units.Fahrenheit
	DefaultEmojiVisible    = false
)

// KV is the key-value collaborator preferences are stored in. Reads never
// fail: implementations report unreadable keys as absent (or false).
type KV interface {
	GetString(key string) (string, bool)
	GetBool(key string) bool
	SetString(key, value string) error
	SetBool(key string, value bool) error
}

// Settings is a snapshot of all three preferences, as edited by a
// preferences form.
type Settings struct {
	DistanceUnit    units.DistanceUnit    `json:"distance" yaml:"distance"`
	TemperatureUnit units.TemperatureUnit `json:"temperature" yaml:"temperature"`
	EmojiVisible    bool                  `json:"emoji" yaml:"emoji"`
}

// DefaultSettings returns the settings of an empty store.
func DefaultSettings() Settings {
	return Settings{
		DistanceUnit:    DefaultDistanceUnit,
		TemperatureUnit: DefaultTemperatureUnit,
		EmojiVisible:    DefaultEmojiVisible,
	}
}

// Store is a stateless typed view over a KV.
type Store struct {
	kv KV
}

// New returns a Store reading and writing kv.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// DistanceUnit returns the preferred distance unit, or Miles.
func (s *Store) DistanceUnit() units.DistanceUnit {
	u, ok := s.StoredDistanceUnit()
	if !ok {
		return DefaultDistanceUnit
	}
	return u
}

// StoredDistanceUnit returns the persisted distance unit and whether one is
// present and parseable.
func (s *Store) StoredDistanceUnit() (units.DistanceUnit, bool) {
	raw, ok := s.kv.GetString(KeyDistance)
	if !ok {
		return "", false
	}
	u, ok := units.DistanceUnitFromStored(raw)
	if !ok {
		logging.Get(logging.CategoryPrefs).Debug("ignoring stored distance unit",
			zap.String("value", raw))
		return "", false
	}
	return u, true
}

// TemperatureUnit returns the preferred temperature unit, or Fahrenheit.
func (s *Store) TemperatureUnit() units.TemperatureUnit {
	u, ok := s.StoredTemperatureUnit()
	if !ok {
		return DefaultTemperatureUnit
	}
	return u
}

// StoredTemperatureUnit returns the persisted temperature unit and whether
// one is present and parseable.
func (s *Store) StoredTemperatureUnit() (units.TemperatureUnit, bool) {
	raw, ok := s.kv.GetString(KeyTemperature)
	if !ok {
		return "", false
	}
	u, ok := units.TemperatureUnitFromStored(raw)
	if !ok {
		logging.Get(logging.CategoryPrefs).Debug("ignoring stored temperature unit",
			zap.String("value", raw))
		return "", false
	}
	return u, true
}

// EmojiVisible returns whether mood emoji are shown. Defaults to false.
func (s *Store) EmojiVisible() bool {
	return s.kv.GetBool(KeyEmoji)
}

// SetDistanceUnit persists the preferred distance unit.
func (s *Store) SetDistanceUnit(u units.DistanceUnit) error {
	if err := s.kv.SetString(KeyDistance, string(u)); err != nil {
		return fmt.Errorf("failed to save %s preference: %w", KeyDistance, err)
	}
	logging.Get(logging.CategoryPrefs).Debug("saved preference",
		zap.String("key", KeyDistance), zap.String("value", string(u)))
	return nil
}

// SetTemperatureUnit persists the preferred temperature unit.
func (s *Store) SetTemperatureUnit(u units.TemperatureUnit) error {
	if err := s.kv.SetString(KeyTemperature, string(u)); err != nil {
		return fmt.Errorf("failed to save %s preference: %w", KeyTemperature, err)
	}
	logging.Get(logging.CategoryPrefs).Debug("saved preference",
		zap.String("key", KeyTemperature), zap.String("value", string(u)))
	return nil
}

// SetEmojiVisible persists emoji visibility.
func (s *Store) SetEmojiVisible(visible bool) error {
	if err := s.kv.SetBool(KeyEmoji, visible); err != nil {
		return fmt.Errorf("failed to save %s preference: %w", KeyEmoji, err)
	}
	logging.Get(logging.CategoryPrefs).Debug("saved preference",
		zap.String("key", KeyEmoji), zap.Bool("value", visible))
	return nil
}

// Load reads all three preferences, substituting defaults.
func (s *Store) Load() Settings {
	return Settings{
		DistanceUnit:    s.DistanceUnit(),
		TemperatureUnit: s.TemperatureUnit(),
		EmojiVisible:    s.EmojiVisible(),
	}
}

// Save writes distance, temperature and emoji in that order, stopping at the
// first failure. Keys written before the failure stay written.
func (s *Store) Save(settings Settings) error {
	if err := s.SetDistanceUnit(settings.DistanceUnit); err != nil {
		return err
	}
	if err := s.SetTemperatureUnit(settings.TemperatureUnit); err != nil {
		return err
	}
	return s.SetEmojiVisible(settings.EmojiVisible)
}
