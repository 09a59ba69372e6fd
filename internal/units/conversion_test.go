package units

import (
	"math"
	"testing"
)

const tol = 1e-6

func TestTemperature_KnownValues(t *testing.T) {
	tests := []struct {
		name       string
		temp       Temperature
		kelvin     float64
		celsius    float64
		fahrenheit float64
	}{
		{"freezing", FromCelsius(0), 273.15, 0, 32},
		{"boiling", FromCelsius(100), 373.15, 100, 212},
		{"london sample", FromKelvin(285.15), 285.15, 12.0, 53.6},
		{"parity point", FromCelsius(-40), 233.15, -40, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.temp.Kelvin(); math.Abs(got-tt.kelvin) > tol {
				t.Errorf("Kelvin() = %v, want %v", got, tt.kelvin)
			}
			if got := tt.temp.Celsius(); math.Abs(got-tt.celsius) > tol {
				t.Errorf("Celsius() = %v, want %v", got, tt.celsius)
			}
			if got := tt.temp.Fahrenheit(); math.Abs(got-tt.fahrenheit) > tol {
				t.Errorf("Fahrenheit() = %v, want %v", got, tt.fahrenheit)
			}
		})
	}
}

func TestTemperature_RoundTrip(t *testing.T) {
	for _, k := range []float64{0, 180.5, 233.15, 273.15, 285.15, 310.93, 400} {
		orig := FromKelvin(k)

		viaF := FromFahrenheit(orig.Fahrenheit())
		if !orig.ApproxEqual(viaF, tol) {
			t.Errorf("Fahrenheit round trip for %vK: got %vK", k, viaF.Kelvin())
		}

		viaC := FromCelsius(orig.Celsius())
		if !orig.ApproxEqual(viaC, tol) {
			t.Errorf("Celsius round trip for %vK: got %vK", k, viaC.Kelvin())
		}
	}
}

func TestSpeed_RoundTrip(t *testing.T) {
	for _, ms := range []float64{0, 0.5, 3.5, 11.2, 44.7} {
		orig := FromMetersPerSecond(ms)
		back := FromMilesPerHour(orig.MilesPerHour())
		if !orig.ApproxEqual(back, tol) {
			t.Errorf("mph round trip for %v m/s: got %v m/s", ms, back.MetersPerSecond())
		}
	}
}

func TestSpeed_KnownValue(t *testing.T) {
	// 1 m/s is 3600/1609.344 mph.
	got := FromMetersPerSecond(1).MilesPerHour()
	want := 2.2369362920544
	if math.Abs(got-want) > tol {
		t.Errorf("MilesPerHour() = %v, want %v", got, want)
	}
}

func TestPressure_InHg(t *testing.T) {
	// Standard atmosphere: 1013.25 hPa is 29.92 inHg.
	got := FromHPa(1013.25).InHg()
	if math.Abs(got-29.92) > 0.01 {
		t.Errorf("InHg() = %v, want about 29.92", got)
	}
}

func TestSystem_Display(t *testing.T) {
	temp := FromKelvin(285.15)

	if got := Metric.Temperature(temp); math.Abs(got-12.0) > tol {
		t.Errorf("Metric.Temperature = %v, want 12.0", got)
	}
	if got := Imperial.Temperature(temp); math.Abs(got-53.6) > tol {
		t.Errorf("Imperial.Temperature = %v, want 53.6", got)
	}

	if Metric.TemperatureUnit() != "C" || Imperial.TemperatureUnit() != "F" {
		t.Error("unexpected temperature unit labels")
	}
	if Metric.SpeedUnit() != "m/s" || Imperial.SpeedUnit() != "mph" {
		t.Error("unexpected speed unit labels")
	}
}

func TestParseSystem(t *testing.T) {
	if s, err := ParseSystem("imperial"); err != nil || s != Imperial {
		t.Errorf("ParseSystem(imperial) = %v, %v", s, err)
	}
	if s, err := ParseSystem("metric"); err != nil || s != Metric {
		t.Errorf("ParseSystem(metric) = %v, %v", s, err)
	}
	if _, err := ParseSystem("nautical"); err == nil {
		t.Error("ParseSystem(nautical) should fail")
	}
}
