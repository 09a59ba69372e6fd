package units

import "fmt"

// System selects the display unit system for rendered reports. Measurements
// are always stored in canonical units; the system only affects display.
type System int

const (
	Metric System = iota
	Imperial
)

// ParseSystem parses a unit system name.
func ParseSystem(s string) (System, error) {
	switch s {
	case "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return Metric, fmt.Errorf("unknown unit system %q (want metric or imperial)", s)
	}
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// TemperatureUnit returns the display label for temperatures.
func (s System) TemperatureUnit() string {
	if s == Imperial {
		return "F"
	}
	return "C"
}

// SpeedUnit returns the display label for wind speeds.
func (s System) SpeedUnit() string {
	if s == Imperial {
		return "mph"
	}
	return "m/s"
}

// PressureUnit returns the display label for pressures.
func (s System) PressureUnit() string {
	if s == Imperial {
		return "inHg"
	}
	return "hPa"
}

// Temperature returns t in the system's display unit.
func (s System) Temperature(t Temperature) float64 {
	if s == Imperial {
		return t.Fahrenheit()
	}
	return t.Celsius()
}

// Speed returns sp in the system's display unit.
func (s System) Speed(sp Speed) float64 {
	if s == Imperial {
		return sp.MilesPerHour()
	}
	return sp.MetersPerSecond()
}

// Pressure returns p in the system's display unit.
func (s System) Pressure(p Pressure) float64 {
	if s == Imperial {
		return p.InHg()
	}
	return p.HPa()
}
