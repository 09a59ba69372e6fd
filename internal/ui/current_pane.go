package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderCurrentPane renders the current-conditions pane
func (m Model) renderCurrentPane(width int) string {
	cur := m.report.Current
	zone := time.FixedZone("local", cur.TimezoneOffsetSec)

	var content strings.Builder

	content.WriteString(titleStyle.Render("Current Conditions"))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Updated: "))
	content.WriteString(valueStyle.Render(cur.ObservedAt.In(zone).Format("Jan 2, 3:04 PM")))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Temperature: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f %s (feels like %.1f %s)",
		cur.Temperature.Value, cur.Temperature.Unit,
		cur.FeelsLike.Value, cur.FeelsLike.Unit)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Humidity: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%d%%", cur.HumidityPct)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Pressure: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f %s", cur.Pressure.Value, cur.Pressure.Unit)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Wind: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%s %.1f %s",
		cur.Wind.Compass, cur.Wind.Speed.Value, cur.Wind.Speed.Unit)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Conditions: "))
	content.WriteString(valueStyle.Render(cur.Description))
	content.WriteString("\n")

	if cur.RainMM > 0 {
		content.WriteString(labelStyle.Render("Rain: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%.2f mm", cur.RainMM)))
		content.WriteString("\n")
	}
	if cur.SnowMM > 0 {
		content.WriteString(labelStyle.Render("Snow: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%.2f mm", cur.SnowMM)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Sunrise: "))
	content.WriteString(valueStyle.Render(cur.Sunrise.In(zone).Format("3:04 PM")))
	content.WriteString("  ")
	content.WriteString(labelStyle.Render("Sunset: "))
	content.WriteString(valueStyle.Render(cur.Sunset.In(zone).Format("3:04 PM")))
	content.WriteString("\n")

	return paneStyle.Width(width).Render(content.String())
}
