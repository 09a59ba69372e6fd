package ui

import "github.com/wxterm/wxterm/internal/models"

// Message types for async operations

// weatherFetchedMsg is sent when both endpoint calls have completed and the
// payloads were normalized.
type weatherFetchedMsg struct {
	observation models.CurrentObservation
	forecast    []models.ForecastEntry
	err         error
}
