package insight

import (
	"fmt"

	"skycast/api"
)

// Precipitation thresholds in mm/h
const (
	heavyPrecipMM    = 2.0
	moderatePrecipMM = 0.2
	windyMPH         = 20.0
)

// Temperature comfort thresholds per unit
const (
	hotF  = 85.0
	hotC  = 29.0
	coldF = 40.0
	coldC = 4.0
)

// Recommend produces the day-planning line for the dashboard. Priority order
// is fixed: heavy precipitation hours beat moderate ones, which beat heat,
// cold, then wind, then a default good-conditions message.
func Recommend(current api.Current, hourly []api.Hour, unit api.Unit) string {
	heavy, moderate := 0, 0
	for _, h := range hourly {
		switch {
		case h.Precipitation >= heavyPrecipMM:
			heavy++
		case h.Precipitation >= moderatePrecipMM:
			moderate++
		}
	}

	hot, cold := hotF, coldF
	if unit == api.UnitCelsius {
		hot, cold = hotC, coldC
	}

	switch {
	case heavy > 0:
		return fmt.Sprintf("Heavy rain expected (%d hr). Postpone outdoor plans and keep rain gear handy.", heavy)
	case moderate > 0:
		return "Light showers possible. Carry an umbrella just in case."
	case current.Temp >= hot:
		return "High heat today. Stay hydrated and avoid the midday sun."
	case current.Temp <= cold:
		return "Cold conditions. Dress in warm layers before heading out."
	case current.Wind > windyMPH:
		return "Windy conditions. Secure loose items if you're heading outdoors."
	default:
		return "Good conditions for outdoor activities."
	}
}

// Summary holds historical aggregate statistics
type Summary struct {
	AvgTemp     float64
	AvgPrecip   float64
	AvgHumidity float64
	MaxTemp     float64
	MinTemp     float64
	Days        int
}

// Summarize computes aggregates over exactly the returned historical series.
// ok is false for an empty series; no arithmetic runs in that case.
func Summarize(days []api.HistoricalDay) (Summary, bool) {
	if len(days) == 0 {
		return Summary{}, false
	}

	s := Summary{
		Days:    len(days),
		MaxTemp: days[0].AvgTemp,
		MinTemp: days[0].AvgTemp,
	}
	var tempSum, precipSum, humiditySum float64
	for _, d := range days {
		tempSum += d.AvgTemp
		precipSum += d.Precipitation
		humiditySum += d.Humidity
		if d.AvgTemp > s.MaxTemp {
			s.MaxTemp = d.AvgTemp
		}
		if d.AvgTemp < s.MinTemp {
			s.MinTemp = d.AvgTemp
		}
	}

	n := float64(len(days))
	s.AvgTemp = tempSum / n
	s.AvgPrecip = precipSum / n
	s.AvgHumidity = humiditySum / n
	return s, true
}
