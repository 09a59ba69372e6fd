package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderForecastPane renders the forecast pane
func (m Model) renderForecastPane(width int) string {
	zone := time.FixedZone("local", m.report.Current.TimezoneOffsetSec)

	var content strings.Builder

	content.WriteString(titleStyle.Render("Forecast"))
	content.WriteString("\n")

	if len(m.report.Forecast) == 0 {
		content.WriteString("\n")
		content.WriteString(mutedStyle.Render("No forecast data available"))
		return paneStyle.Width(width).Render(content.String())
	}

	lastDay := ""
	for _, e := range m.report.Forecast {
		day := e.At.In(zone).Format("Mon Jan 2")
		if day != lastDay {
			content.WriteString("\n")
			content.WriteString(labelStyle.Render(day))
			content.WriteString("\n")
			lastDay = day
		}

		content.WriteString(valueStyle.Render(fmt.Sprintf("  %s  %5.1f %s  %-3s %4.1f %s  %s",
			e.At.In(zone).Format("15:04"),
			e.Temperature.Value, e.Temperature.Unit,
			e.Wind.Compass, e.Wind.Speed.Value, e.Wind.Speed.Unit,
			e.Description)))
		content.WriteString("\n")
	}

	return paneStyle.Width(width).Render(content.String())
}
