package units

import "math"

// CompassUnknown is returned for directions that cannot be normalized.
const CompassUnknown = "?"

// compassLabels is the 16-point compass rose, clockwise from north.
var compassLabels = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// Direction is a wind direction in degrees, measured clockwise from north.
type Direction float64

// FromDegrees constructs a Direction from a degree value. Any finite value
// is accepted; it is normalized on access.
func FromDegrees(deg float64) Direction { return Direction(deg) }

// Degrees returns the direction normalized into [0,360). Non-finite values
// are returned unchanged.
func (d Direction) Degrees() float64 {
	deg := float64(d)
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return deg
	}
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// Compass returns the 16-point compass label for the direction. A direction
// that cannot be normalized (NaN, ±Inf) yields CompassUnknown rather than
// an error.
func (d Direction) Compass() string {
	deg := d.Degrees()
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return CompassUnknown
	}
	idx := int(math.Round(deg/22.5)) % 16
	return compassLabels[idx]
}
