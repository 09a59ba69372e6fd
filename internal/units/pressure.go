package units

// inHgPerHPa converts hectopascals to inches of mercury.
const inHgPerHPa = 0.029529983071445

// Pressure is stored canonically in hectopascals (millibars).
type Pressure float64

// FromHPa constructs a Pressure from a hectopascal value.
func FromHPa(hpa float64) Pressure { return Pressure(hpa) }

// HPa returns the pressure in hectopascals.
func (p Pressure) HPa() float64 { return float64(p) }

// InHg returns the pressure in inches of mercury.
func (p Pressure) InHg() float64 { return float64(p) * inHgPerHPa }
