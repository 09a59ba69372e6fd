package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wxterm/wxterm/internal/config"
	"github.com/wxterm/wxterm/internal/owm"
	"github.com/wxterm/wxterm/internal/ui"
)

func main() {
	cfg := config.Load()

	location := flag.String("location", "", "City to fetch weather for (e.g. \"London,GB\")")
	unitsFlag := flag.String("units", "", "Display units: metric or imperial")
	count := flag.Int("count", 0, "Number of forecast timesteps (max 40)")
	flag.Parse()

	if *location != "" {
		cfg.City = *location
	}
	if *unitsFlag != "" {
		cfg.Units = *unitsFlag
	}
	if *count > 0 {
		cfg.ForecastCount = *count
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "wxterm-tui: %v\n", err)
		os.Exit(2)
	}

	client := owm.NewClient(owm.Config{
		APIKey:         cfg.APIKey,
		AttemptTimeout: cfg.AttemptTimeout,
		MaxRetries:     cfg.MaxRetries,
	})

	model := ui.NewModel(client, cfg.Location(), cfg.UnitSystem(), cfg.ForecastCount)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "wxterm-tui: error running application: %v\n", err)
		os.Exit(1)
	}
}
