package units

import "math"

// metersPerMile is the exact length of a statute mile in meters.
const metersPerMile = 1609.344

// Speed is stored canonically in meters per second.
type Speed float64

// FromMetersPerSecond constructs a Speed from a m/s value.
func FromMetersPerSecond(ms float64) Speed { return Speed(ms) }

// FromMilesPerHour constructs a Speed from a mph value.
func FromMilesPerHour(mph float64) Speed {
	return Speed(mph * metersPerMile / 3600.0)
}

// MetersPerSecond returns the speed in meters per second.
func (s Speed) MetersPerSecond() float64 { return float64(s) }

// MilesPerHour returns the speed in miles per hour.
func (s Speed) MilesPerHour() float64 {
	return float64(s) * 3600.0 / metersPerMile
}

// ApproxEqual reports whether two speeds are within tol m/s of each other.
func (s Speed) ApproxEqual(other Speed, tol float64) bool {
	return math.Abs(float64(s)-float64(other)) <= tol
}
