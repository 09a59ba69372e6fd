package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wxterm/wxterm/internal/models"
	"github.com/wxterm/wxterm/internal/owm"
	"github.com/wxterm/wxterm/internal/report"
	"github.com/wxterm/wxterm/internal/units"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Fetching weather data
	StateDisplay                 // Display current conditions and forecast
	StateError                   // Error state
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Fetch parameters
	client        *owm.Client
	location      owm.Location
	forecastCount int

	// Display
	sys    units.System
	report report.Report

	// Data in canonical units, kept so unit toggling needs no refetch
	observation models.CurrentObservation
	forecast    []models.ForecastEntry

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(client *owm.Client, loc owm.Location, sys units.System, forecastCount int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:         StateLoading,
		client:        client,
		location:      loc,
		forecastCount: forecastCount,
		sys:           sys,
		spinner:       s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchWeather(m.client, m.location, m.forecastCount))
}

// fetchWeather fetches both endpoints and normalizes the payloads
func fetchWeather(client *owm.Client, loc owm.Location, count int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		cur, fc, err := client.FetchBoth(ctx, loc, count)
		if err != nil {
			return weatherFetchedMsg{err: err}
		}
		return weatherFetchedMsg{
			observation: models.ObservationFromOWM(cur),
			forecast:    models.ForecastFromOWM(fc),
		}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case weatherFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.observation = msg.observation
		m.forecast = msg.forecast
		m.report = report.Build(m.observation, m.forecast, m.sys)
		m.state = StateDisplay
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "u":
			// Toggle display units; data is canonical, so no refetch
			if m.state != StateDisplay {
				return m, nil
			}
			if m.sys == units.Metric {
				m.sys = units.Imperial
			} else {
				m.sys = units.Metric
			}
			m.report = report.Build(m.observation, m.forecast, m.sys)
			return m, nil

		case "r":
			if m.state == StateLoading {
				return m, nil
			}
			m.state = StateLoading
			return m, tea.Batch(m.spinner.Tick, fetchWeather(m.client, m.location, m.forecastCount))
		}
	}

	return m, nil
}

// View renders the application
func (m Model) View() string {
	switch m.state {
	case StateLoading:
		return "\n  " + m.spinner.View() + " Fetching weather for " + m.location.String() + "...\n"

	case StateError:
		return "\n  " + errorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
			helpStyle.Render("  r: retry • q: quit") + "\n"

	case StateDisplay:
		paneWidth := 44
		if m.width > 0 && m.width < paneWidth+4 {
			paneWidth = m.width - 4
		}

		body := lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderCurrentPane(paneWidth),
			m.renderForecastPane(paneWidth),
		)

		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("  wxterm — "+m.report.Current.Location),
			body,
			helpStyle.Render("  u: toggle units • r: refresh • q: quit"),
		)
	}

	return ""
}
