// Package config resolves the invocation configuration from .env files,
// the environment, and CLI flag overrides. All validation happens here,
// before any network call.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/wxterm/wxterm/internal/owm"
	"github.com/wxterm/wxterm/internal/units"
)

// ErrInvalid marks configuration errors so the CLI layer can map them to a
// distinct exit code.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved configuration feeding the orchestrator.
type Config struct {
	APIKey string `validate:"required"`

	// Location selectors; exactly one must be set.
	City string
	Zip  string
	Lat  *float64
	Lon  *float64

	Units  string `validate:"oneof=metric imperial"`
	Format string `validate:"oneof=text json"`

	// ForecastCount is the number of forecast timesteps to request. The
	// provider caps it at 40 (5 days of 3-hour steps).
	ForecastCount int `validate:"min=1,max=40"`

	AttemptTimeout time.Duration `validate:"min=0"`
	MaxRetries     int           `validate:"min=0,max=10"`

	Verbose bool
}

var validate = validator.New()

// Load reads configuration from a .env file (when present) and the
// environment. Flag overrides are applied by the caller before Validate.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is the normal case.
		if !os.IsNotExist(err) {
			log.Printf("ignoring unreadable .env file: %v", err)
		}
	}

	cfg := &Config{
		APIKey:         os.Getenv("WXTERM_API_KEY"),
		City:           os.Getenv("WXTERM_LOCATION"),
		Zip:            os.Getenv("WXTERM_ZIP"),
		Units:          getenvDefault("WXTERM_UNITS", "metric"),
		Format:         getenvDefault("WXTERM_FORMAT", "text"),
		ForecastCount:  getenvInt("WXTERM_FORECAST_COUNT", 8),
		AttemptTimeout: getenvDuration("WXTERM_ATTEMPT_TIMEOUT", 10*time.Second),
		MaxRetries:     getenvInt("WXTERM_MAX_RETRIES", 3),
	}

	if lat, ok := getenvFloat("WXTERM_LAT"); ok {
		cfg.Lat = &lat
	}
	if lon, ok := getenvFloat("WXTERM_LON"); ok {
		cfg.Lon = &lon
	}

	return cfg
}

// Validate checks the configuration, including the one-selector rule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	selectors := 0
	if c.City != "" {
		selectors++
	}
	if c.Zip != "" {
		selectors++
	}
	if c.Lat != nil || c.Lon != nil {
		if c.Lat == nil || c.Lon == nil {
			return fmt.Errorf("%w: latitude and longitude must be given together", ErrInvalid)
		}
		if _, err := units.NewCoord(*c.Lat, *c.Lon); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		selectors++
	}
	if selectors == 0 {
		return fmt.Errorf("%w: no location given (set a city, zip, or lat/lon)", ErrInvalid)
	}
	if selectors > 1 {
		return fmt.Errorf("%w: give exactly one of city, zip, or lat/lon", ErrInvalid)
	}

	return nil
}

// Location builds the fetch-client selector. Validate must have passed.
func (c *Config) Location() owm.Location {
	switch {
	case c.City != "":
		return owm.Location{City: c.City}
	case c.Zip != "":
		return owm.Location{Zip: c.Zip}
	default:
		coord, _ := units.NewCoord(*c.Lat, *c.Lon)
		return owm.Location{Coord: &coord}
	}
}

// UnitSystem returns the parsed display unit system. Validate must have
// passed.
func (c *Config) UnitSystem() units.System {
	sys, _ := units.ParseSystem(c.Units)
	return sys
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
