package models

import (
	"sort"
	"time"

	"github.com/wxterm/wxterm/internal/owm"
	"github.com/wxterm/wxterm/internal/units"
)

// CurrentObservation is one fully populated snapshot of current conditions.
// All quantities are held in canonical units; it is immutable after
// construction.
type CurrentObservation struct {
	Name           string
	Country        string
	Coord          units.Coord
	ObservedAt     time.Time // UTC
	TimezoneOffset int       // seconds east of UTC at the location

	Temp      units.Temperature
	FeelsLike units.Temperature
	TempMin   units.Temperature
	TempMax   units.Temperature

	Pressure units.Pressure
	Humidity int

	WindSpeed units.Speed
	WindDir   units.Direction

	Condition   Condition
	Description string

	RainMM float64
	SnowMM float64

	Sunrise time.Time
	Sunset  time.Time
}

// ForecastEntry is one forecast timestep with the subset of fields the
// forecast endpoint reports.
type ForecastEntry struct {
	At time.Time // UTC

	Temp      units.Temperature
	FeelsLike units.Temperature

	Pressure units.Pressure
	Humidity int

	WindSpeed units.Speed
	WindDir   units.Direction

	Condition   Condition
	Description string

	RainMM float64
	SnowMM float64
}

// SortEntries orders entries chronologically ascending in place.
func SortEntries(entries []ForecastEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
}

// ObservationFromOWM builds a CurrentObservation from a validated /weather
// payload. The payload's required pointers are guaranteed non-nil by
// owm.DecodeCurrent.
func ObservationFromOWM(cur *owm.CurrentResponse) CurrentObservation {
	obs := CurrentObservation{
		Name:           *cur.Name,
		Country:        cur.Sys.Country,
		ObservedAt:     time.Unix(*cur.Dt, 0).UTC(),
		TimezoneOffset: cur.Timezone,

		Temp:      units.FromKelvin(*cur.Main.Temp),
		FeelsLike: units.FromKelvin(*cur.Main.FeelsLike),
		TempMin:   units.FromKelvin(*cur.Main.TempMin),
		TempMax:   units.FromKelvin(*cur.Main.TempMax),

		Pressure: units.FromHPa(*cur.Main.Pressure),
		Humidity: *cur.Main.Humidity,

		WindSpeed: units.FromMetersPerSecond(*cur.Wind.Speed),
		WindDir:   units.FromDegrees(cur.Wind.Deg),

		RainMM: cur.Rain.MM(),
		SnowMM: cur.Snow.MM(),

		Sunrise: time.Unix(*cur.Sys.Sunrise, 0).UTC(),
		Sunset:  time.Unix(*cur.Sys.Sunset, 0).UTC(),
	}

	if coord, err := units.NewCoord(*cur.Coord.Lat, *cur.Coord.Lon); err == nil {
		obs.Coord = coord
	}
	if len(cur.Weather) > 0 {
		obs.Condition = ConditionFromOWM(cur.Weather[0].Main)
		obs.Description = cur.Weather[0].Description
	}
	return obs
}

// ForecastFromOWM builds chronological forecast entries from a validated
// /forecast payload. Only dt and main.temp are guaranteed present per item;
// everything else defaults to its neutral value.
func ForecastFromOWM(fc *owm.ForecastResponse) []ForecastEntry {
	entries := make([]ForecastEntry, 0, len(fc.List))
	for _, item := range fc.List {
		e := ForecastEntry{
			At:     time.Unix(*item.Dt, 0).UTC(),
			Temp:   units.FromKelvin(*item.Main.Temp),
			RainMM: item.Rain.MM(),
			SnowMM: item.Snow.MM(),
		}

		if item.Main.FeelsLike != nil {
			e.FeelsLike = units.FromKelvin(*item.Main.FeelsLike)
		} else {
			e.FeelsLike = e.Temp
		}
		if item.Main.Pressure != nil {
			e.Pressure = units.FromHPa(*item.Main.Pressure)
		}
		if item.Main.Humidity != nil {
			e.Humidity = *item.Main.Humidity
		}
		if item.Wind != nil && item.Wind.Speed != nil {
			e.WindSpeed = units.FromMetersPerSecond(*item.Wind.Speed)
			e.WindDir = units.FromDegrees(item.Wind.Deg)
		}
		if len(item.Weather) > 0 {
			e.Condition = ConditionFromOWM(item.Weather[0].Main)
			e.Description = item.Weather[0].Description
		}

		entries = append(entries, e)
	}

	SortEntries(entries)
	return entries
}
