package owm

import (
	"encoding/json"
	"fmt"
)

// Payload types mirror the OpenWeatherMap /data/2.5 JSON schemas. Required
// fields are decoded through pointers so a missing field is distinguishable
// from a zero value; optional fields default to their zero values. Unknown
// fields are ignored.

// WeatherCond is one entry of the "weather" array.
type WeatherCond struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Main carries the primary meteorological readings.
type Main struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *float64 `json:"pressure"`
	Humidity  *int     `json:"humidity"`
}

// Wind carries wind readings. Direction is optional and defaults to 0.
type Wind struct {
	Speed *float64 `json:"speed"`
	Deg   float64  `json:"deg"`
	Gust  float64  `json:"gust"`
}

// Volume is the rain/snow accumulation block. Both windows are optional.
type Volume struct {
	OneH   float64 `json:"1h"`
	ThreeH float64 `json:"3h"`
}

// MM returns the reported accumulation in millimeters, preferring the
// one-hour window when both are present.
func (v Volume) MM() float64 {
	if v.OneH != 0 {
		return v.OneH
	}
	return v.ThreeH
}

// Coord is the provider's coordinate block.
type Coord struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Sys carries country and sun times for current conditions.
type Sys struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
}

// CurrentResponse is the /weather payload.
type CurrentResponse struct {
	Coord      *Coord        `json:"coord"`
	Weather    []WeatherCond `json:"weather"`
	Main       *Main         `json:"main"`
	Visibility float64       `json:"visibility"`
	Wind       *Wind         `json:"wind"`
	Rain       Volume        `json:"rain"`
	Snow       Volume        `json:"snow"`
	Dt         *int64        `json:"dt"`
	Sys        *Sys          `json:"sys"`
	Timezone   int           `json:"timezone"`
	Name       *string       `json:"name"`
}

// City is the location block of the /forecast payload.
type City struct {
	Name     *string `json:"name"`
	Country  string  `json:"country"`
	Coord    *Coord  `json:"coord"`
	Timezone int     `json:"timezone"`
	Sunrise  int64   `json:"sunrise"`
	Sunset   int64   `json:"sunset"`
}

// ForecastItem is one timestep of the /forecast payload.
type ForecastItem struct {
	Dt      *int64        `json:"dt"`
	Main    *Main         `json:"main"`
	Weather []WeatherCond `json:"weather"`
	Wind    *Wind         `json:"wind"`
	Rain    Volume        `json:"rain"`
	Snow    Volume        `json:"snow"`
}

// ForecastResponse is the /forecast payload.
type ForecastResponse struct {
	City *City          `json:"city"`
	List []ForecastItem `json:"list"`
}

// DecodeCurrent parses and validates a /weather payload.
func DecodeCurrent(body []byte) (*CurrentResponse, error) {
	var cur CurrentResponse
	if err := json.Unmarshal(body, &cur); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if err := cur.validate(); err != nil {
		return nil, err
	}
	return &cur, nil
}

// DecodeForecast parses and validates a /forecast payload.
func DecodeForecast(body []byte) (*ForecastResponse, error) {
	var fc ForecastResponse
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if err := fc.validate(); err != nil {
		return nil, err
	}
	return &fc, nil
}

func (c *CurrentResponse) validate() error {
	if c.Name == nil {
		return &MalformedResponseError{Field: "name"}
	}
	if c.Dt == nil {
		return &MalformedResponseError{Field: "dt"}
	}
	if c.Coord == nil {
		return &MalformedResponseError{Field: "coord"}
	}
	if c.Coord.Lat == nil {
		return &MalformedResponseError{Field: "coord.lat"}
	}
	if c.Coord.Lon == nil {
		return &MalformedResponseError{Field: "coord.lon"}
	}
	if err := c.Main.validate("main"); err != nil {
		return err
	}
	if c.Wind == nil {
		return &MalformedResponseError{Field: "wind"}
	}
	if c.Wind.Speed == nil {
		return &MalformedResponseError{Field: "wind.speed"}
	}
	if c.Sys == nil {
		return &MalformedResponseError{Field: "sys"}
	}
	if c.Sys.Sunrise == nil {
		return &MalformedResponseError{Field: "sys.sunrise"}
	}
	if c.Sys.Sunset == nil {
		return &MalformedResponseError{Field: "sys.sunset"}
	}
	return nil
}

func (m *Main) validate(path string) error {
	if m == nil {
		return &MalformedResponseError{Field: path}
	}
	required := []struct {
		name string
		ok   bool
	}{
		{"temp", m.Temp != nil},
		{"feels_like", m.FeelsLike != nil},
		{"temp_min", m.TempMin != nil},
		{"temp_max", m.TempMax != nil},
		{"pressure", m.Pressure != nil},
		{"humidity", m.Humidity != nil},
	}
	for _, f := range required {
		if !f.ok {
			return &MalformedResponseError{Field: path + "." + f.name}
		}
	}
	return nil
}

func (f *ForecastResponse) validate() error {
	if f.City == nil {
		return &MalformedResponseError{Field: "city"}
	}
	if f.City.Name == nil {
		return &MalformedResponseError{Field: "city.name"}
	}
	if len(f.List) == 0 {
		return &MalformedResponseError{Field: "list"}
	}
	for i := range f.List {
		item := &f.List[i]
		path := fmt.Sprintf("list[%d]", i)
		if item.Dt == nil {
			return &MalformedResponseError{Field: path + ".dt"}
		}
		if item.Main == nil || item.Main.Temp == nil {
			return &MalformedResponseError{Field: path + ".main.temp"}
		}
	}
	return nil
}
