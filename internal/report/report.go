// Package report builds and renders display-ready weather reports. All unit
// conversion happens in Build; the renderers only lay out values.
package report

import (
	"time"

	"github.com/wxterm/wxterm/internal/models"
	"github.com/wxterm/wxterm/internal/units"
)

// Quantity is a measurement value paired with its explicit display unit.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Wind is a display-ready wind reading.
type Wind struct {
	Speed        Quantity `json:"speed"`
	DirectionDeg float64  `json:"direction_deg"`
	Compass      string   `json:"compass"`
}

// Current is the display-ready current-conditions block.
type Current struct {
	Location          string    `json:"location"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	ObservedAt        time.Time `json:"observed_at"`
	TimezoneOffsetSec int       `json:"timezone_offset_sec"`

	Temperature Quantity `json:"temperature"`
	FeelsLike   Quantity `json:"feels_like"`
	TempMin     Quantity `json:"temp_min"`
	TempMax     Quantity `json:"temp_max"`

	Pressure    Quantity `json:"pressure"`
	HumidityPct int      `json:"humidity_pct"`

	Wind Wind `json:"wind"`

	Condition   string `json:"condition"`
	Description string `json:"description"`

	RainMM float64 `json:"rain_mm"`
	SnowMM float64 `json:"snow_mm"`

	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

// Entry is one display-ready forecast timestep.
type Entry struct {
	At          time.Time `json:"at"`
	Temperature Quantity  `json:"temperature"`
	FeelsLike   Quantity  `json:"feels_like"`
	HumidityPct int       `json:"humidity_pct"`
	Wind        Wind      `json:"wind"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	RainMM      float64   `json:"rain_mm"`
	SnowMM      float64   `json:"snow_mm"`
}

// Report is the render-ready aggregate of one current observation and its
// forecast, tagged with the unit system the values were converted into. It
// lives for a single invocation; nothing is shared or persisted.
type Report struct {
	Units    string  `json:"units"`
	Current  Current `json:"current"`
	Forecast []Entry `json:"forecast"`
}

// Build converts the canonical-unit observation and forecast entries into a
// Report in the requested display system.
func Build(obs models.CurrentObservation, entries []models.ForecastEntry, sys units.System) Report {
	location := obs.Name
	if obs.Country != "" {
		location = obs.Name + " " + obs.Country
	}

	r := Report{
		Units: sys.String(),
		Current: Current{
			Location:          location,
			Latitude:          float64(obs.Coord.Lat),
			Longitude:         float64(obs.Coord.Lon),
			ObservedAt:        obs.ObservedAt,
			TimezoneOffsetSec: obs.TimezoneOffset,

			Temperature: temperature(obs.Temp, sys),
			FeelsLike:   temperature(obs.FeelsLike, sys),
			TempMin:     temperature(obs.TempMin, sys),
			TempMax:     temperature(obs.TempMax, sys),

			Pressure:    pressure(obs.Pressure, sys),
			HumidityPct: obs.Humidity,

			Wind: wind(obs.WindSpeed, obs.WindDir, sys),

			Condition:   obs.Condition.String(),
			Description: obs.Description,

			RainMM: obs.RainMM,
			SnowMM: obs.SnowMM,

			Sunrise: obs.Sunrise,
			Sunset:  obs.Sunset,
		},
	}

	r.Forecast = make([]Entry, 0, len(entries))
	for _, e := range entries {
		r.Forecast = append(r.Forecast, Entry{
			At:          e.At,
			Temperature: temperature(e.Temp, sys),
			FeelsLike:   temperature(e.FeelsLike, sys),
			HumidityPct: e.Humidity,
			Wind:        wind(e.WindSpeed, e.WindDir, sys),
			Condition:   e.Condition.String(),
			Description: e.Description,
			RainMM:      e.RainMM,
			SnowMM:      e.SnowMM,
		})
	}

	return r
}

func temperature(t units.Temperature, sys units.System) Quantity {
	return Quantity{Value: sys.Temperature(t), Unit: sys.TemperatureUnit()}
}

func pressure(p units.Pressure, sys units.System) Quantity {
	return Quantity{Value: sys.Pressure(p), Unit: sys.PressureUnit()}
}

func wind(sp units.Speed, dir units.Direction, sys units.System) Wind {
	return Wind{
		Speed:        Quantity{Value: sys.Speed(sp), Unit: sys.SpeedUnit()},
		DirectionDeg: dir.Degrees(),
		Compass:      dir.Compass(),
	}
}
