package report

import (
	"fmt"
	"strings"
	"time"
)

// Text rendering follows the legacy fixed-layout report: a header with
// location and coordinates, a tab-indented current-conditions block, then
// one fixed-width line per forecast entry. Output is deterministic: the
// same Report always renders to the same bytes.

// RenderText renders r as the human-readable report.
func RenderText(r Report) string {
	var b strings.Builder

	zone := time.FixedZone("local", r.Current.TimezoneOffsetSec)
	cur := r.Current

	fmt.Fprintf(&b, "Current conditions %s %.2fN %.2fE\n",
		cur.Location, cur.Latitude, cur.Longitude)
	fmt.Fprintf(&b, "Last Updated %s\n",
		cur.ObservedAt.In(zone).Format("2006-01-02 15:04:05 -0700"))
	fmt.Fprintf(&b, "\tTemperature: %.1f %s (feels like %.1f %s)\n",
		cur.Temperature.Value, cur.Temperature.Unit,
		cur.FeelsLike.Value, cur.FeelsLike.Unit)
	fmt.Fprintf(&b, "\tLow/High: %.1f %s / %.1f %s\n",
		cur.TempMin.Value, cur.TempMin.Unit,
		cur.TempMax.Value, cur.TempMax.Unit)
	fmt.Fprintf(&b, "\tRelative Humidity: %d%%\n", cur.HumidityPct)
	fmt.Fprintf(&b, "\tPressure: %.1f %s\n", cur.Pressure.Value, cur.Pressure.Unit)
	fmt.Fprintf(&b, "\tWind: %s at %.1f %s\n",
		cur.Wind.Compass, cur.Wind.Speed.Value, cur.Wind.Speed.Unit)
	fmt.Fprintf(&b, "\tConditions: %s\n", cur.Description)
	if cur.RainMM > 0 {
		fmt.Fprintf(&b, "\tRain: %.2f mm\n", cur.RainMM)
	}
	if cur.SnowMM > 0 {
		fmt.Fprintf(&b, "\tSnow: %.2f mm\n", cur.SnowMM)
	}
	fmt.Fprintf(&b, "\tSunrise: %s\n", cur.Sunrise.In(zone).Format("15:04:05"))
	fmt.Fprintf(&b, "\tSunset: %s\n", cur.Sunset.In(zone).Format("15:04:05"))

	b.WriteString("\nForecast:\n")
	for _, e := range r.Forecast {
		fmt.Fprintf(&b, "%s  %5.1f %-4s %3d%%  %-3s %5.1f %-4s %s\n",
			e.At.In(zone).Format("2006-01-02 15:04"),
			e.Temperature.Value, e.Temperature.Unit,
			e.HumidityPct,
			e.Wind.Compass,
			e.Wind.Speed.Value, e.Wind.Speed.Unit,
			e.Description)
	}

	return b.String()
}
