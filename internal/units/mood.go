package units

import "math"

// Mood is a coarse reaction to a measurement, derived from fixed thresholds.
type Mood int

const (
	MoodUnknown Mood = iota
	MoodDelighted
	MoodAlarmed
	MoodCold
	MoodHot
)

// distanceAlarm is the distance in miles at which the mood turns to alarm.
const distanceAlarm = 1000

// String returns the mood name.
func (m Mood) String() string {
	switch m {
	case MoodDelighted:
		return "delighted"
	case MoodAlarmed:
		return "alarmed"
	case MoodCold:
		return "cold"
	case MoodHot:
		return "hot"
	}
	return "unknown"
}

// Emoji returns the emoji shown next to a measurement with this mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodDelighted:
		return "😍"
	case MoodAlarmed:
		return "😱"
	case MoodCold:
		return "🥶"
	case MoodHot:
		return "🥵"
	}
	return "❓"
}

// ClassifyDistanceMood classifies a distance given in miles.
// Negative and non-finite distances are MoodUnknown.
func ClassifyDistanceMood(miles float64) Mood {
	switch {
	case math.IsNaN(miles) || math.IsInf(miles, 0) || miles < 0:
		return MoodUnknown
	case miles < distanceAlarm:
		return MoodDelighted
	default:
		return MoodAlarmed
	}
}

// ClassifyTemperatureMood classifies a temperature given in Fahrenheit.
//
// The bands are ...67 cold, 68..<73 delighted and 74... hot. Values falling
// between bands, such as 67.5 or 73.5, are MoodUnknown, as are NaN and ±Inf.
func ClassifyTemperatureMood(fahrenheit float64) Mood {
	switch {
	case math.IsNaN(fahrenheit) || math.IsInf(fahrenheit, 0):
		return MoodUnknown
	case fahrenheit <= 67:
		return MoodCold
	case fahrenheit >= 68 && fahrenheit < 73:
		return MoodDelighted
	case fahrenheit >= 74:
		return MoodHot
	default:
		return MoodUnknown
	}
}
