package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrIncompatibleUnits is returned when converting between unit families.
var ErrIncompatibleUnits = errors.New("incompatible units")

// Unit is implemented by DistanceUnit and TemperatureUnit.
type Unit interface {
	Title() string
	Symbol() string
}

// ParseUnit parses a unit name from either family.
func ParseUnit(s string) (Unit, error) {
	if d, err := ParseDistanceUnit(s); err == nil {
		return d, nil
	}
	if t, err := ParseTemperatureUnit(s); err == nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Measurement pairs a value with the unit it is expressed in.
type Measurement struct {
	Value float64
	Unit  Unit
}

// Converted returns m expressed in unit to.
func (m Measurement) Converted(to Unit) (Measurement, error) {
	switch from := m.Unit.(type) {
	case DistanceUnit:
		if d, ok := to.(DistanceUnit); ok && from.Valid() && d.Valid() {
			return Measurement{Value: ConvertDistance(m.Value, from, d), Unit: d}, nil
		}
	case TemperatureUnit:
		if t, ok := to.(TemperatureUnit); ok && from.Valid() && t.Valid() {
			return Measurement{Value: ConvertTemperature(m.Value, from, t), Unit: t}, nil
		}
	}
	return Measurement{}, fmt.Errorf("%w: %v to %v", ErrIncompatibleUnits, m.Unit, to)
}

// String formats m with the default formatter.
func (m Measurement) String() string {
	return defaultFormatter.Format(m.Value, m.Unit)
}

// Formatter renders measurements for one locale at medium precision.
type Formatter struct {
	printer *message.Printer
}

var defaultFormatter = NewFormatter(language.AmericanEnglish)

// NewFormatter returns a formatter using the number conventions of tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// NewFormatterForLocale parses a BCP 47 locale such as "en-US" or "de".
// An unparseable locale falls back to American English.
func NewFormatterForLocale(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		return defaultFormatter
	}
	return NewFormatter(tag)
}

// Format renders value with one decimal place and the unit's symbol.
// The value is shown in the unit given; no conversion happens here.
func (f *Formatter) Format(value float64, unit Unit) string {
	// Round here so values that round to zero print as 0.0, never -0.0.
	if math.Abs(value) < 1e15 {
		value = math.Round(value*10) / 10
		if value == 0 {
			value = 0
		}
	}
	n := f.printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
	if unit == nil {
		return n
	}
	if _, ok := unit.(TemperatureUnit); ok {
		return n + unit.Symbol()
	}
	return n + " " + unit.Symbol()
}

// FormatMeasurement renders value in unit with the default formatter.
func FormatMeasurement(value float64, unit Unit) string {
	return defaultFormatter.Format(value, unit)
}

// ParseReading parses data-entry text into a number. Empty or malformed
// text reads as 0. Out-of-range text such as "1e400" reads as ±Inf.
func ParseReading(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}
