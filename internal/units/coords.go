package units

import (
	"fmt"
	"math"
)

// Latitude in degrees, required to be within -90.0 to 90.0.
type Latitude float64

// Longitude in degrees, required to be within -180.0 to 180.0.
type Longitude float64

// NewLatitude validates and constructs a Latitude.
func NewLatitude(deg float64) (Latitude, error) {
	if math.IsNaN(deg) || deg < -90.0 || deg > 90.0 {
		return 0, fmt.Errorf("%v is not a valid latitude", deg)
	}
	return Latitude(deg), nil
}

// NewLongitude validates and constructs a Longitude.
func NewLongitude(deg float64) (Longitude, error) {
	if math.IsNaN(deg) || deg < -180.0 || deg > 180.0 {
		return 0, fmt.Errorf("%v is not a valid longitude", deg)
	}
	return Longitude(deg), nil
}

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat Latitude
	Lon Longitude
}

// NewCoord validates both components and constructs a Coord.
func NewCoord(lat, lon float64) (Coord, error) {
	la, err := NewLatitude(lat)
	if err != nil {
		return Coord{}, err
	}
	lo, err := NewLongitude(lon)
	if err != nil {
		return Coord{}, err
	}
	return Coord{Lat: la, Lon: lo}, nil
}

// String renders the coordinate as e.g. "51.51N -0.13E".
func (c Coord) String() string {
	return fmt.Sprintf("%.2fN %.2fE", float64(c.Lat), float64(c.Lon))
}
