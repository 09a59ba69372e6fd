package models

// Condition is the normalized weather condition variant. Provider strings
// outside the known set map to ConditionUnknown rather than failing.
type Condition int

const (
	ConditionUnknown Condition = iota
	ConditionClear
	ConditionClouds
	ConditionRain
	ConditionDrizzle
	ConditionSnow
	ConditionThunderstorm
	ConditionMist
)

// ConditionFromOWM maps an OpenWeatherMap "weather[].main" string.
func ConditionFromOWM(main string) Condition {
	switch main {
	case "Clear":
		return ConditionClear
	case "Clouds":
		return ConditionClouds
	case "Rain":
		return ConditionRain
	case "Drizzle":
		return ConditionDrizzle
	case "Snow":
		return ConditionSnow
	case "Thunderstorm":
		return ConditionThunderstorm
	case "Mist", "Fog", "Haze":
		return ConditionMist
	default:
		return ConditionUnknown
	}
}

func (c Condition) String() string {
	switch c {
	case ConditionClear:
		return "Clear"
	case ConditionClouds:
		return "Clouds"
	case ConditionRain:
		return "Rain"
	case ConditionDrizzle:
		return "Drizzle"
	case ConditionSnow:
		return "Snow"
	case ConditionThunderstorm:
		return "Thunderstorm"
	case ConditionMist:
		return "Mist"
	default:
		return "Unknown"
	}
}
