package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestConvertDistance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.609344, ConvertDistance(1, Miles, Kilometers), 1e-12)
	assert.InDelta(t, 1.0, ConvertDistance(1.609344, Kilometers, Miles), 1e-12)
	assert.InDelta(t, 16.09344, ConvertDistance(10, Miles, Kilometers), 1e-9)
}

func TestConvertTemperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		from, to TemperatureUnit
		want     float64
	}{
		{"freezing F to C", 32, Fahrenheit, Celsius, 0},
		{"boiling F to C", 212, Fahrenheit, Celsius, 100},
		{"body C to F", 37, Celsius, Fahrenheit, 98.6},
		{"minus forty", -40, Celsius, Fahrenheit, -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ConvertTemperature(tt.value, tt.from, tt.to), 1e-9)
		})
	}
}

func TestIdentityConversionsAreExact(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 1, -3.75, 1e12, math.SmallestNonzeroFloat64} {
		for _, u := range DistanceUnits {
			assert.Equal(t, v, ConvertDistance(v, u, u))
		}
		for _, u := range TemperatureUnits {
			assert.Equal(t, v, ConvertTemperature(v, u, u))
		}
	}
}

func TestRoundTrips(t *testing.T) {
	t.Parallel()

	relClose := func(t *testing.T, want, got float64) {
		t.Helper()
		tol := 1e-9 * math.Max(1, math.Abs(want))
		assert.InDelta(t, want, got, tol)
	}

	for _, v := range []float64{0, 0.5, 1, 999.999, 1000, 26.2, 12345.678} {
		for _, a := range DistanceUnits {
			for _, b := range DistanceUnits {
				relClose(t, v, ConvertDistance(ConvertDistance(v, a, b), b, a))
			}
		}
	}
	for _, v := range []float64{-459.67, -40, 0, 32, 67, 72.9, 73.5, 98.6, 451} {
		for _, a := range TemperatureUnits {
			for _, b := range TemperatureUnits {
				relClose(t, v, ConvertTemperature(ConvertTemperature(v, a, b), b, a))
			}
		}
	}
}

func TestParseUnits(t *testing.T) {
	t.Parallel()

	d, err := ParseDistanceUnit("kilometers")
	require.NoError(t, err)
	assert.Equal(t, Kilometers, d)

	d, err = ParseDistanceUnit(" Miles ")
	require.NoError(t, err)
	assert.Equal(t, Miles, d)

	_, err = ParseDistanceUnit("furlongs")
	assert.True(t, errors.Is(err, ErrUnknownUnit))

	tu, err := ParseTemperatureUnit("celsius")
	require.NoError(t, err)
	assert.Equal(t, Celsius, tu)

	_, err = ParseTemperatureUnit("kelvin")
	assert.ErrorIs(t, err, ErrUnknownUnit)

	u, err := ParseUnit("fahrenheit")
	require.NoError(t, err)
	assert.Equal(t, Fahrenheit, u)

	_, err = ParseUnit("")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestUnitLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Miles", Miles.Title())
	assert.Equal(t, "Kilometers", Kilometers.Title())
	assert.Equal(t, "Fahrenheit", Fahrenheit.Title())
	assert.Equal(t, "Celsius", Celsius.Title())
	assert.Equal(t, []DistanceUnit{Miles, Kilometers}, DistanceUnits)
	assert.Equal(t, []TemperatureUnit{Fahrenheit, Celsius}, TemperatureUnits)
	assert.False(t, DistanceUnit("leagues").Valid())
	assert.False(t, TemperatureUnit("").Valid())
}

func TestMeasurementConverted(t *testing.T) {
	t.Parallel()

	m, err := Measurement{Value: 212, Unit: Fahrenheit}.Converted(Celsius)
	require.NoError(t, err)
	assert.Equal(t, Celsius, m.Unit)
	assert.InDelta(t, 100, m.Value, 1e-9)

	m, err = Measurement{Value: 5, Unit: Kilometers}.Converted(Miles)
	require.NoError(t, err)
	assert.InDelta(t, 3.106856, m.Value, 1e-6)

	_, err = Measurement{Value: 5, Unit: Kilometers}.Converted(Celsius)
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestFormatMeasurement(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.3 mi", FormatMeasurement(12.34, Miles))
	assert.Equal(t, "19.9 km", FormatMeasurement(19.86, Kilometers))
	assert.Equal(t, "70.0°F", FormatMeasurement(70, Fahrenheit))
	assert.Equal(t, "21.1°C", FormatMeasurement(ConvertTemperature(70, Fahrenheit, Celsius), Celsius))
	assert.Equal(t, "0.0 mi", Measurement{Unit: Miles}.String())
}

func TestFormatNearZeroHasNoSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.0°C", FormatMeasurement(-0.04, Celsius))
	assert.Equal(t, "0.0 km", FormatMeasurement(math.Copysign(0, -1), Kilometers))
	assert.Equal(t, "-0.1°C", FormatMeasurement(-0.06, Celsius))
}

func TestFormatterLocale(t *testing.T) {
	t.Parallel()

	de := NewFormatter(language.German)
	assert.Equal(t, "21,1°C", de.Format(21.1, Celsius))

	fallback := NewFormatterForLocale("not a locale!")
	assert.Equal(t, "5.0 km", fallback.Format(5, Kilometers))
}

func TestParseReading(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12.5, ParseReading("12.5"))
	assert.Equal(t, 70.0, ParseReading(" 70 "))
	assert.Equal(t, 0.0, ParseReading(""))
	assert.Equal(t, 0.0, ParseReading("twelve"))
	assert.True(t, math.IsInf(ParseReading("1e400"), 1))
	assert.True(t, math.IsInf(ParseReading("-1e400"), -1))
}

func TestUnitFromStoredIsExact(t *testing.T) {
	t.Parallel()

	d, ok := DistanceUnitFromStored("kilometers")
	assert.True(t, ok)
	assert.Equal(t, Kilometers, d)
	for _, raw := range []string{"Kilometers", " miles", "km", ""} {
		_, ok := DistanceUnitFromStored(raw)
		assert.False(t, ok, "distance %q", raw)
	}

	tu, ok := TemperatureUnitFromStored("celsius")
	assert.True(t, ok)
	assert.Equal(t, Celsius, tu)
	for _, raw := range []string{"Celsius", " celsius", "fahrenheit "} {
		_, ok := TemperatureUnitFromStored(raw)
		assert.False(t, ok, "temperature %q", raw)
	}
}
