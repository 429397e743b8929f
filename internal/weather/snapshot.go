package weather

import (
	"strconv"
	"strings"
)

// Snapshot is one weather reading handed from the poller to the display.
// Fields are unexported so a Snapshot cannot change after NewSnapshot.
type Snapshot struct {
	temperature float64
	iconID      string
}

// NewSnapshot builds a Snapshot from a parsed forecast reading.
func NewSnapshot(temperature float64, iconID string) Snapshot {
	return Snapshot{temperature: temperature, iconID: iconID}
}

// Temperature returns the air temperature in degrees Celsius.
func (s Snapshot) Temperature() float64 {
	return s.temperature
}

// IconID returns the met.no symbol code, e.g. "clearsky_day".
func (s Snapshot) IconID() string {
	return s.iconID
}

// TemperatureText formats the temperature for display. It uses the shortest
// decimal that parses back to the same value and always keeps a fractional
// part, so 2 renders as "2.0" and 5.3 as "5.3".
func (s Snapshot) TemperatureText() string {
	return FormatTemperature(s.temperature)
}

// FormatTemperature is the formatting behind Snapshot.TemperatureText.
func FormatTemperature(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(text, ".NI") {
		return text
	}
	return text + ".0"
}
