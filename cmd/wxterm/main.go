package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wxterm/wxterm/internal/app"
	"github.com/wxterm/wxterm/internal/config"
	"github.com/wxterm/wxterm/internal/owm"
)

func main() {
	cfg := config.Load()

	location := flag.String("location", "", "City to fetch weather for (e.g. \"London\" or \"London,GB\")")
	zip := flag.String("zip", "", "Zipcode and country to fetch weather for (e.g. \"10001,us\")")
	lat := flag.Float64("lat", 0, "Latitude (requires -lon)")
	lon := flag.Float64("lon", 0, "Longitude (requires -lat)")
	unitsFlag := flag.String("units", "", "Display units: metric or imperial")
	format := flag.String("format", "", "Output format: text or json")
	count := flag.Int("count", 0, "Number of forecast timesteps (max 40)")
	apiKey := flag.String("api-key", "", "OpenWeatherMap API key (or set WXTERM_API_KEY)")
	verbose := flag.Bool("verbose", false, "Log each HTTP attempt to stderr")
	flag.Parse()

	// Flags override environment configuration.
	if *location != "" {
		cfg.City = *location
	}
	if *zip != "" {
		cfg.Zip = *zip
	}
	latSet, lonSet := flagSet("lat"), flagSet("lon")
	if latSet {
		cfg.Lat = lat
	}
	if lonSet {
		cfg.Lon = lon
	}
	if *unitsFlag != "" {
		cfg.Units = *unitsFlag
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *count > 0 {
		cfg.ForecastCount = *count
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	cfg.Verbose = *verbose

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "wxterm: %v\n", err)
		os.Exit(2)
	}

	clientCfg := owm.Config{
		APIKey:         cfg.APIKey,
		AttemptTimeout: cfg.AttemptTimeout,
		MaxRetries:     cfg.MaxRetries,
	}
	if cfg.Verbose {
		clientCfg.Logger = log.New(os.Stderr, "wxterm: ", log.LstdFlags)
	}

	outputFormat, err := app.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wxterm: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(owm.NewClient(clientCfg))
	out, err := a.Run(ctx, app.Config{
		Location:      cfg.Location(),
		Units:         cfg.UnitSystem(),
		Format:        outputFormat,
		ForecastCount: cfg.ForecastCount,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wxterm: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(out)
}

// flagSet reports whether a flag was given explicitly on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
