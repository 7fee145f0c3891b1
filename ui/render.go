package ui

import (
	"fmt"
	"strings"

	"skycast/alerts"
	"skycast/charts"
	"skycast/insight"

	"github.com/charmbracelet/lipgloss"
)

const hourlyBarWidth = 14

// ─── Dashboard (current + hourly) ─────────────────────────────────────────────

func (m Model) renderDashboardContent() string {
	var sb strings.Builder

	// Fetch errors render inline; the previous snapshot stays on screen.
	if errMsg, ok := m.errors[opDashboard]; ok {
		sb.WriteString(StyleError.Render("⚠ "+errMsg) + "\n\n")
	}

	if m.snapshot == nil {
		if m.loading[opDashboard] {
			sb.WriteString("  " + m.spinner.View() + " fetching weather...")
		} else {
			sb.WriteString("  No weather data. Press / to pick a location.")
		}
		return sb.String()
	}

	snap := m.snapshot
	c := snap.Current

	if n := len(m.activeAlert); n > 0 {
		sb.WriteString(StyleWarning.Render(fmt.Sprintf("⚠ %d active alert(s) — see tab 6", n)) + "\n\n")
	}

	sb.WriteString(fmt.Sprintf("%s  %s\n", c.Icon,
		StyleTemp.Render(fmt.Sprintf("%.0f%s", c.Temp, snap.Unit))))
	sb.WriteString(StyleCondition.Render(c.Description) + "\n")
	sb.WriteString(StyleAge.Render(fmt.Sprintf("Feels like %.0f%s   H %.0f° / L %.0f°",
		c.FeelsLike, snap.Unit, c.High, c.Low)) + "\n\n")
	sb.WriteString(fmt.Sprintf("💧 %.0f%%   💨 %.0f mph   ☀ UV %.0f   🌧 %.2f mm/h\n",
		c.Humidity, c.Wind, c.UVIndex, c.Precipitation))
	if c.Pressure != nil {
		sb.WriteString(StyleMuted.Render(fmt.Sprintf("Pressure %.2f inHg   Dew point %.0f°   Visibility %.0f mi",
			*c.Pressure, c.DewPoint, c.Visibility)) + "\n")
	}

	sb.WriteString("\n" + StyleRecommendation.Render(insight.Recommend(c, snap.Hourly, m.unit)) + "\n")

	if len(snap.Hourly) > 0 {
		sb.WriteString("\n" + StyleTableHeader.Render(
			fmt.Sprintf("%-7s %6s  %-*s %7s %5s", "TIME", "TEMP", hourlyBarWidth, "PRECIP", "MM/H", "WIND")) + "\n")
		sb.WriteString(StyleDivider.Render(strings.Repeat("─", 46)) + "\n")

		precips := make([]float64, len(snap.Hourly))
		for i, h := range snap.Hourly {
			precips[i] = h.Precipitation
		}
		widths := charts.BarWidths(precips)

		for i, h := range snap.Hourly {
			bar := StyleBarFilled.Render(charts.Bar(widths[i], hourlyBarWidth))
			sb.WriteString(fmt.Sprintf("%-7s %5.0f°  %s %6.2f %4.0f\n",
				h.Time, h.Temp, bar, h.Precipitation, h.Wind))
		}
	}

	sb.WriteString("\n" + StyleMuted.Render("Source: "+snap.Source) + "\n")
	return sb.String()
}

// ─── Extended forecast ────────────────────────────────────────────────────────

func (m Model) renderForecastContent() string {
	var sb strings.Builder

	if errMsg, ok := m.errors[opDashboard]; ok {
		sb.WriteString(StyleError.Render("⚠ "+errMsg) + "\n\n")
	}

	if m.snapshot == nil || len(m.snapshot.Forecast) == 0 {
		if m.loading[opDashboard] {
			sb.WriteString("  " + m.spinner.View() + " fetching forecast...")
		} else {
			sb.WriteString("  No forecast data. Press r to refresh.")
		}
		return sb.String()
	}

	snap := m.snapshot
	sb.WriteString(StyleSectionHeader.Render(fmt.Sprintf(" %d-DAY FORECAST  %s", len(snap.Forecast), snap.Location)) + "\n\n")
	sb.WriteString(StyleTableHeader.Render(
		fmt.Sprintf("%-14s %-4s %6s %6s %8s  %s", "DATE", "", "HIGH", "LOW", "RAIN", "CONDITION")) + "\n")
	sb.WriteString(StyleDivider.Render(strings.Repeat("─", 60)) + "\n")

	// Rows keep the order the backend returned
	for _, d := range snap.Forecast {
		sb.WriteString(fmt.Sprintf("%-14s %s %5.0f° %5.0f° %6.2fmm  %s\n",
			d.Date, d.Icon, d.High, d.Low, d.Precipitation, d.Description))
	}

	sb.WriteString("\n" + StyleMuted.Render("Press p to save this series as a chart.") + "\n")
	return sb.String()
}

// ─── Historical ───────────────────────────────────────────────────────────────

func (m Model) renderHistoricalContent() string {
	var sb strings.Builder

	if errMsg, ok := m.errors[opHistorical]; ok {
		sb.WriteString(StyleError.Render("⚠ "+errMsg) + "\n\n")
	}

	if m.historical == nil {
		if m.loading[opHistorical] {
			sb.WriteString("  " + m.spinner.View() + " fetching historical data...")
		} else {
			sb.WriteString("  Press r to load historical data.")
		}
		return sb.String()
	}

	summary, ok := insight.Summarize(m.historical)
	if !ok {
		sb.WriteString("  No historical data available for this location.")
		return sb.String()
	}

	sym := m.unit.Symbol()
	sb.WriteString(StyleSectionHeader.Render(fmt.Sprintf(" LAST %d DAYS  %s", summary.Days, m.loc.Label)) + "\n\n")
	sb.WriteString(fmt.Sprintf("  Avg temp   %s\n", StyleTemp.Render(fmt.Sprintf("%.1f%s", summary.AvgTemp, sym))))
	sb.WriteString(fmt.Sprintf("  Max / Min  %.1f%s / %.1f%s\n", summary.MaxTemp, sym, summary.MinTemp, sym))
	sb.WriteString(fmt.Sprintf("  Avg precip %.2f mm/day   Avg humidity %.0f%%\n\n",
		summary.AvgPrecip, summary.AvgHumidity))

	sb.WriteString(StyleTableHeader.Render(
		fmt.Sprintf("%-8s %7s %9s %9s", "DATE", "TEMP", "PRECIP", "HUMIDITY")) + "\n")
	sb.WriteString(StyleDivider.Render(strings.Repeat("─", 38)) + "\n")
	for _, d := range m.historical {
		sb.WriteString(fmt.Sprintf("%-8s %5.0f%s %7.2fmm %8.0f%%\n",
			d.Date, d.AvgTemp, sym, d.Precipitation, d.Humidity))
	}
	return sb.String()
}

// ─── Comparison ───────────────────────────────────────────────────────────────

func (m Model) renderCompareContent() string {
	var sb strings.Builder

	labels := m.compare.Labels()
	sb.WriteString(StyleSectionHeader.Render(fmt.Sprintf(" COMPARING %d/%d LOCATIONS", len(labels), maxCompare)) + "\n\n")
	if len(labels) == 0 {
		sb.WriteString("  Press a to add a location (up to 5).")
		return sb.String()
	}
	for i, label := range labels {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, label))
	}
	sb.WriteString("\n")

	if errMsg, ok := m.errors[opCompare]; ok {
		sb.WriteString(StyleError.Render("⚠ "+errMsg) + "\n\n")
	}

	if len(m.comparison) == 0 {
		if m.loading[opCompare] {
			sb.WriteString("  " + m.spinner.View() + " comparing...")
		} else {
			sb.WriteString("  Press r to fetch the comparison.")
		}
		return sb.String()
	}

	sym := m.unit.Symbol()
	sb.WriteString(StyleTableHeader.Render(
		fmt.Sprintf("%-26s %7s %8s %6s %6s  %s", "LOCATION", "TEMP", "PRECIP", "HUM", "WIND", "CONDITION")) + "\n")
	sb.WriteString(StyleDivider.Render(strings.Repeat("─", 72)) + "\n")
	for _, e := range m.comparison {
		w := e.Weather
		sb.WriteString(fmt.Sprintf("%-26s %5.0f%s %6.2fmm %5.0f%% %5.0f  %s %s\n",
			truncate(e.Location, 26), w.Temp, sym, w.Precipitation, w.Humidity, w.Wind, w.Icon, w.Description))
	}

	if len(m.comparison) < len(labels) {
		sb.WriteString("\n" + StyleMuted.Render("Some locations could not be resolved and were skipped.") + "\n")
	}
	return sb.String()
}

// ─── Event advisor ────────────────────────────────────────────────────────────

func (m Model) renderEventContent() string {
	var sb strings.Builder

	sb.WriteString(StyleSectionHeader.Render(" PLAN AN EVENT") + "\n\n")
	if m.loc.HasCoords() {
		sb.WriteString(StyleMuted.Render("  Location: "+m.loc.Label) + "\n\n")
	} else {
		sb.WriteString(StyleWarning.Render("  No location selected — press / first.") + "\n\n")
	}

	for i, in := range m.form.inputs {
		label := fmt.Sprintf("  %-6s ", fieldLabels[i])
		if i == m.form.focused {
			sb.WriteString(StyleFieldFocused.Render(label) + in.View() + "\n")
		} else {
			sb.WriteString(StyleFieldLabel.Render(label) + in.View() + "\n")
		}
	}
	sb.WriteString("\n")

	if errMsg, ok := m.errors[opAdvice]; ok {
		sb.WriteString(StyleError.Render("⚠ "+errMsg) + "\n\n")
	}
	if m.loading[opAdvice] {
		sb.WriteString("  " + m.spinner.View() + " evaluating the window...\n")
		return sb.String()
	}
	if m.advice == nil {
		return sb.String()
	}

	a := m.advice
	badge := StyleUnfavorable.Render("NOT FAVORABLE")
	if a.Favorable {
		badge = StyleFavorable.Render("FAVORABLE")
	}
	sb.WriteString(fmt.Sprintf("%s  %s → %s\n\n", badge, a.Window.Start, a.Window.End))

	mt := a.Metrics
	sb.WriteString(fmt.Sprintf("  Max precip %.2f mm/h   Max wind %.0f mph", mt.MaxPrecipMM, mt.MaxWindMPH))
	if mt.MaxPopPercent != nil {
		sb.WriteString(fmt.Sprintf("   PoP %.0f%%", *mt.MaxPopPercent))
	}
	if mt.AvgTemp != nil {
		sb.WriteString(fmt.Sprintf("   Avg %.1f%s", *mt.AvgTemp, mt.Unit))
	}
	sb.WriteString("\n\n")

	sb.WriteString("  Risks: " +
		riskStyle(a.Risks.Precip).Render("rain "+a.Risks.Precip) + "  " +
		riskStyle(a.Risks.Wind).Render("wind "+a.Risks.Wind) + "  " +
		riskStyle(a.Risks.Temperature).Render("temp "+a.Risks.Temperature) + "  " +
		riskStyle(a.Risks.UV).Render("uv "+a.Risks.UV) + "\n")

	if len(a.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, s := range a.Suggestions {
			sb.WriteString("  • " + s + "\n")
		}
	}

	if len(a.Hourly) > 0 {
		sb.WriteString("\n" + StyleTableHeader.Render(
			fmt.Sprintf("%-18s %6s %8s %6s %5s", "HOUR", "TEMP", "PRECIP", "POP", "WIND")) + "\n")
		sb.WriteString(StyleDivider.Render(strings.Repeat("─", 48)) + "\n")
		for _, h := range a.Hourly {
			temp, pop := "-", "-"
			if h.Temp != nil {
				temp = fmt.Sprintf("%.1f", *h.Temp)
			}
			if h.Pop != nil {
				pop = fmt.Sprintf("%.0f%%", *h.Pop)
			}
			sb.WriteString(fmt.Sprintf("%-18s %6s %6.2fmm %6s %4.0f\n",
				h.Time, temp, h.PrecipMM, pop, h.WindMPH))
		}
	}
	return sb.String()
}

func riskStyle(tier string) lipgloss.Style {
	switch tier {
	case "high":
		return StyleNegative
	case "moderate":
		return StyleWarning
	default:
		return StylePositive
	}
}

// ─── Alerts ───────────────────────────────────────────────────────────────────

func (m Model) renderAlertsContent() string {
	var sb strings.Builder

	if errMsg, ok := m.errors[opAlerts]; ok {
		sb.WriteString(StyleError.Render("⚠ "+errMsg) + "\n\n")
	}

	if !m.loc.HasCoords() {
		sb.WriteString("  Alerts need coordinates — press / and enter lat,lon or search a place.")
		return sb.String()
	}

	if len(m.activeAlert) == 0 {
		if m.loading[opAlerts] {
			sb.WriteString("  " + m.spinner.View() + " checking for alerts...")
		} else {
			sb.WriteString("  No active alerts for " + m.loc.Label + ".")
		}
		return sb.String()
	}

	sb.WriteString(StyleSectionHeader.Render(fmt.Sprintf(" ACTIVE ALERTS  (%d)", len(m.activeAlert))) + "\n\n")
	wrapW := minInt(m.width-8, 100)
	for _, a := range m.activeAlert {
		badge := severityStyle(a.Severity).Render(fmt.Sprintf(" %-8s", a.Severity.String()))
		sb.WriteString(fmt.Sprintf("%s %s\n", badge, StyleAge.Render(formatAge(a.Published))))
		sb.WriteString("  " + a.Title + "\n")
		if a.Summary != "" {
			for _, line := range strings.Split(wordWrap(a.Summary, wrapW), "\n") {
				sb.WriteString("  " + StyleMuted.Render(line) + "\n")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func severityStyle(s alerts.Severity) lipgloss.Style {
	switch s {
	case alerts.SeverityHigh:
		return StyleSevWarning
	case alerts.SeverityMedium:
		return StyleSevWatch
	case alerts.SeverityLow:
		return StyleSevAdvisory
	default:
		return StyleSevInfo
	}
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	var lines []string
	var line strings.Builder
	for _, w := range words {
		if line.Len()+len(w)+1 > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(w)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
