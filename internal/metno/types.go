package metno

import "time"

// Forecast mirrors the GeoJSON payload of /locationforecast/2.0/compact.
type Forecast struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry is the forecast point; coordinates are [lon, lat, altitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Properties holds the forecast metadata and time series.
type Properties struct {
	Meta       Meta         `json:"meta"`
	Timeseries []Timeseries `json:"timeseries"`
}

// Meta describes when the forecast was produced and its units.
type Meta struct {
	UpdatedAt string            `json:"updated_at"`
	Units     map[string]string `json:"units"`
}

// Timeseries is one forecast step. The first step is "now".
type Timeseries struct {
	Time string         `json:"time"`
	Data TimeseriesData `json:"data"`
}

// TimeseriesData carries the instant values and the period summaries.
// Period summaries are absent towards the end of the series.
type TimeseriesData struct {
	Instant     Instant `json:"instant"`
	Next1Hours  *Period `json:"next_1_hours"`
	Next6Hours  *Period `json:"next_6_hours"`
	Next12Hours *Period `json:"next_12_hours"`
}

// Instant wraps the instantaneous details.
type Instant struct {
	Details InstantDetails `json:"details"`
}

// InstantDetails are the values valid at the step's time.
type InstantDetails struct {
	AirPressureAtSeaLevel *float64 `json:"air_pressure_at_sea_level"`
	AirTemperature        *float64 `json:"air_temperature"`
	CloudAreaFraction     *float64 `json:"cloud_area_fraction"`
	RelativeHumidity      *float64 `json:"relative_humidity"`
	WindFromDirection     *float64 `json:"wind_from_direction"`
	WindSpeed             *float64 `json:"wind_speed"`
}

// Period summarises a forecast window.
type Period struct {
	Summary Summary       `json:"summary"`
	Details PeriodDetails `json:"details"`
}

// Summary names the weather symbol for a period.
type Summary struct {
	SymbolCode string `json:"symbol_code"`
}

// PeriodDetails holds the accumulated values for a period.
type PeriodDetails struct {
	PrecipitationAmount *float64 `json:"precipitation_amount"`
}

// ParsedTime returns the step time, or zero when it cannot be parsed.
func (t Timeseries) ParsedTime() time.Time {
	parsed, err := time.Parse(time.RFC3339, t.Time)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// Reading is what the widget needs from a forecast.
type Reading struct {
	Temperature float64
	SymbolCode  string
	Time        time.Time
}

// Current extracts the first step's air temperature and next-hour symbol
// code. Both are required; a missing one yields an ErrMissingField error.
func Current(f *Forecast) (Reading, error) {
	if f == nil || len(f.Properties.Timeseries) == 0 {
		return Reading{}, missing("no timeseries found")
	}
	first := f.Properties.Timeseries[0]
	temp := first.Data.Instant.Details.AirTemperature
	if temp == nil {
		return Reading{}, missing("air temperature not found")
	}
	next := first.Data.Next1Hours
	if next == nil || next.Summary.SymbolCode == "" {
		return Reading{}, missing("next 1-hour forecast not found")
	}
	return Reading{
		Temperature: *temp,
		SymbolCode:  next.Summary.SymbolCode,
		Time:        first.ParsedTime(),
	}, nil
}
