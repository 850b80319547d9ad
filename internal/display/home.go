// Package display computes what the home screen shows: each reading
// converted to the preferred unit, formatted, and paired with a mood emoji.
package display

import (
	"measurekit/internal/logging"
	"measurekit/internal/prefs"
	"measurekit/internal/units"

	"go.uber.org/zap"
)

// Placeholders shown until a unit preference has been saved.
const (
	DistancePlaceholder    = "Distance will appear here..."
	TemperaturePlaceholder = "Temperature will appear here..."
)

// Readings are the last values entered, in canonical units. They live only
// as long as the process.
type Readings struct {
	DistanceMiles         float64
	TemperatureFahrenheit float64
}

// Line is one measurement row of the home screen.
type Line struct {
	Title string
	Text  string
	Mood  units.Mood
	Emoji string
	Set   bool // false while the unit preference is unset
}

// Home is the full home screen.
type Home struct {
	Distance     Line
	Temperature  Line
	EmojiVisible bool
}

// Build reads the preferences and renders readings with f. A nil formatter
// uses the default locale.
func Build(store *prefs.Store, r Readings, f *units.Formatter) Home {
	if f == nil {
		f = units.NewFormatterForLocale("en-US")
	}

	h := Home{
		EmojiVisible: store.EmojiVisible(),
		Distance: Line{
			Title: "Distance",
			Text:  DistancePlaceholder,
			Mood:  units.MoodUnknown,
			Emoji: units.MoodUnknown.Emoji(),
		},
		Temperature: Line{
			Title: "Temperature",
			Text:  TemperaturePlaceholder,
			Mood:  units.MoodUnknown,
			Emoji: units.MoodUnknown.Emoji(),
		},
	}

	if u, ok := store.StoredDistanceUnit(); ok {
		v := units.ConvertDistance(r.DistanceMiles, units.Miles, u)
		mood := units.ClassifyDistanceMood(r.DistanceMiles)
		h.Distance.Text = f.Format(v, u)
		h.Distance.Mood = mood
		h.Distance.Emoji = mood.Emoji()
		h.Distance.Set = true
	}

	if u, ok := store.StoredTemperatureUnit(); ok {
		v := units.ConvertTemperature(r.TemperatureFahrenheit, units.Fahrenheit, u)
		mood := units.ClassifyTemperatureMood(r.TemperatureFahrenheit)
		h.Temperature.Text = f.Format(v, u)
		h.Temperature.Mood = mood
		h.Temperature.Emoji = mood.Emoji()
		h.Temperature.Set = true
	}

	logging.Get(logging.CategoryDisplay).Debug("home built",
		zap.String("distance", h.Distance.Text),
		zap.String("temperature", h.Temperature.Text),
		zap.Bool("emoji", h.EmojiVisible))
	return h
}

// Lines returns the rows in display order.
func (h Home) Lines() []Line {
	return []Line{h.Distance, h.Temperature}
}

// Render returns the row as "Title: text", with the emoji appended when
// visible.
func (l Line) Render(emojiVisible bool) string {
	s := l.Title + ": " + l.Text
	if emojiVisible {
		s += " " + l.Emoji
	}
	return s
}
