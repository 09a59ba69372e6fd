// Package app drives one fetch -> normalize -> format cycle. Retry policy
// lives entirely in the owm client; a failure here is terminal for the
// invocation.
package app

import (
	"context"
	"fmt"

	"github.com/wxterm/wxterm/internal/models"
	"github.com/wxterm/wxterm/internal/owm"
	"github.com/wxterm/wxterm/internal/report"
	"github.com/wxterm/wxterm/internal/units"
)

// Format selects the output rendering.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Stage identifies where in the pipeline an invocation currently is, so a
// terminal error can name the failing stage.
type Stage int

const (
	StageIdle Stage = iota
	StageFetching
	StageNormalizing
	StageFormatting
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageFetching:
		return "fetch"
	case StageNormalizing:
		return "normalize"
	case StageFormatting:
		return "format"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageError wraps a pipeline failure with the stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Config is the resolved per-invocation configuration the CLI layer hands
// to Run.
type Config struct {
	Location      owm.Location
	Units         units.System
	Format        Format
	ForecastCount int
}

// App runs weather report invocations against one fetch client.
type App struct {
	client *owm.Client
	stage  Stage
}

// New creates an App.
func New(client *owm.Client) *App {
	return &App{client: client, stage: StageIdle}
}

// Stage reports the pipeline stage of the most recent Run.
func (a *App) Stage() Stage { return a.stage }

// Run executes one invocation and returns the rendered report. On failure
// the returned error names the failing stage; no partial report is
// produced.
func (a *App) Run(ctx context.Context, cfg Config) (string, error) {
	a.stage = StageFetching
	cur, fc, err := a.client.FetchBoth(ctx, cfg.Location, cfg.ForecastCount)
	if err != nil {
		return "", a.fail(StageFetching, err)
	}

	a.stage = StageNormalizing
	obs := models.ObservationFromOWM(cur)
	entries := models.ForecastFromOWM(fc)
	rep := report.Build(obs, entries, cfg.Units)

	a.stage = StageFormatting
	var out string
	switch cfg.Format {
	case FormatText:
		out = report.RenderText(rep)
	case FormatJSON:
		out, err = report.RenderJSON(rep)
		if err != nil {
			return "", a.fail(StageFormatting, err)
		}
	default:
		return "", a.fail(StageFormatting, fmt.Errorf("unknown output format %d", cfg.Format))
	}

	a.stage = StageDone
	return out, nil
}

func (a *App) fail(stage Stage, err error) error {
	a.stage = StageFailed
	return &StageError{Stage: stage, Err: err}
}
