package report

import (
	"encoding/json"
	"fmt"
)

// RenderJSON renders r as the machine-readable structured report. The form
// is self-describing: every quantity carries its unit label, timestamps are
// RFC 3339. Decode reverses it losslessly apart from float rounding.
func RenderJSON(r Report) (string, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		// Only reachable through a programming error in the Report type.
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(out) + "\n", nil
}

// Decode parses a structured report back into a Report value.
func Decode(data []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("decoding report: %w", err)
	}
	if r.Units != "metric" && r.Units != "imperial" {
		return Report{}, fmt.Errorf("decoding report: unknown unit system %q", r.Units)
	}
	return r, nil
}
