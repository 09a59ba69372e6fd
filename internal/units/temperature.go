package units

import "math"

// zeroCelsiusK is the Kelvin value of 0 degrees Celsius.
const zeroCelsiusK = 273.15

// Temperature is stored canonically in Kelvin. Display conversions are pure
// functions of the stored value.
type Temperature float64

// FromKelvin constructs a Temperature from a Kelvin value.
func FromKelvin(k float64) Temperature { return Temperature(k) }

// FromCelsius constructs a Temperature from a Celsius value.
func FromCelsius(c float64) Temperature { return Temperature(c + zeroCelsiusK) }

// FromFahrenheit constructs a Temperature from a Fahrenheit value.
func FromFahrenheit(f float64) Temperature {
	return Temperature((f-32.0)*5.0/9.0 + zeroCelsiusK)
}

// Kelvin returns the temperature in Kelvin.
func (t Temperature) Kelvin() float64 { return float64(t) }

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() float64 { return float64(t) - zeroCelsiusK }

// Fahrenheit returns the temperature in degrees Fahrenheit.
func (t Temperature) Fahrenheit() float64 { return t.Celsius()*9.0/5.0 + 32.0 }

// ApproxEqual reports whether two temperatures are within tol Kelvin of
// each other.
func (t Temperature) ApproxEqual(other Temperature, tol float64) bool {
	return math.Abs(float64(t)-float64(other)) <= tol
}
