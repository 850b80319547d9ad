// Package units defines the distance and temperature unit families used by
// measurekit, their conversion math, mood thresholds and display formatting.
//
// Canonical units are miles for distance and Fahrenheit for temperature.
// Every other unit is derived from those by conversion.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit name cannot be parsed.
var ErrUnknownUnit = errors.New("unknown unit")

// DistanceUnit is a unit of length. The string value is the persisted form.
type DistanceUnit string

const (
	Miles      DistanceUnit = "miles"
	Kilometers DistanceUnit = "kilometers"
)

// kilometersPerMile is the exact international mile.
const kilometersPerMile = 1.609344

// DistanceUnits lists the distance units in display order.
var DistanceUnits = []DistanceUnit{Miles, Kilometers}

// ParseDistanceUnit parses a distance unit name typed by a user. Case and
// surrounding space are ignored. Persisted values are matched exactly with
// DistanceUnitFromStored.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch u := DistanceUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case Miles, Kilometers:
		return u, nil
	}
	return "", fmt.Errorf("%w: distance %q", ErrUnknownUnit, s)
}

// DistanceUnitFromStored returns the distance unit whose persisted form is
// exactly s.
func DistanceUnitFromStored(s string) (DistanceUnit, bool) {
	u := DistanceUnit(s)
	return u, u.Valid()
}

// Valid reports whether u is a known distance unit.
func (u DistanceUnit) Valid() bool {
	return u == Miles || u == Kilometers
}

// Title returns the label shown in option lists.
func (u DistanceUnit) Title() string {
	switch u {
	case Miles:
		return "Miles"
	case Kilometers:
		return "Kilometers"
	}
	return string(u)
}

// Symbol returns the short unit label used when formatting.
func (u DistanceUnit) Symbol() string {
	switch u {
	case Miles:
		return "mi"
	case Kilometers:
		return "km"
	}
	return string(u)
}

// perMile returns how many u make up one mile.
func (u DistanceUnit) perMile() float64 {
	if u == Kilometers {
		return kilometersPerMile
	}
	return 1
}

// ConvertDistance converts value from one distance unit to another.
// Converting a unit to itself returns value unchanged.
func ConvertDistance(value float64, from, to DistanceUnit) float64 {
	if from == to {
		return value
	}
	miles := value / from.perMile()
	if to == Miles {
		return miles
	}
	return miles * to.perMile()
}

// TemperatureUnit is a unit of temperature. The string value is the persisted form.
type TemperatureUnit string

const (
	Fahrenheit TemperatureUnit = "fahrenheit"
	Celsius    TemperatureUnit = "celsius"
)

// TemperatureUnits lists the temperature units in display order.
var TemperatureUnits = []TemperatureUnit{Fahrenheit, Celsius}

// ParseTemperatureUnit parses a temperature unit name typed by a user,
// ignoring case and surrounding space.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch u := TemperatureUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case Fahrenheit, Celsius:
		return u, nil
	}
	return "", fmt.Errorf("%w: temperature %q", ErrUnknownUnit, s)
}

// TemperatureUnitFromStored returns the temperature unit whose persisted
// form is exactly s.
func TemperatureUnitFromStored(s string) (TemperatureUnit, bool) {
	u := TemperatureUnit(s)
	return u, u.Valid()
}

// Valid reports whether u is a known temperature unit.
func (u TemperatureUnit) Valid() bool {
	return u == Fahrenheit || u == Celsius
}

// Title returns the label shown in option lists.
func (u TemperatureUnit) Title() string {
	switch u {
	case Fahrenheit:
		return "Fahrenheit"
	case Celsius:
		return "Celsius"
	}
	return string(u)
}

// Symbol returns the short unit label used when formatting.
func (u TemperatureUnit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Celsius:
		return "°C"
	}
	return string(u)
}

// ConvertTemperature converts value from one temperature unit to another.
// Converting a unit to itself returns value unchanged.
func ConvertTemperature(value float64, from, to TemperatureUnit) float64 {
	if from == to {
		return value
	}
	switch {
	case from == Fahrenheit && to == Celsius:
		return (value - 32) * 5 / 9
	case from == Celsius && to == Fahrenheit:
		return value*9/5 + 32
	}
	return value
}
