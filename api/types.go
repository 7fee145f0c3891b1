package api

// Current holds the latest observed conditions for one location
type Current struct {
	Temp          float64  `json:"temp"`
	FeelsLike     float64  `json:"feelsLike"`
	High          float64  `json:"high"`
	Low           float64  `json:"low"`
	Condition     string   `json:"condition"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Precipitation float64  `json:"precipitation"`
	PrecipLast24h float64  `json:"precipLast24h"`
	Humidity      float64  `json:"humidity"`
	Wind          float64  `json:"wind"`
	Pressure      *float64 `json:"pressure"`
	Visibility    float64  `json:"visibility"`
	UVIndex       float64  `json:"uvIndex"`
	DewPoint      float64  `json:"dewPoint"`
}

// Hour is one row of the hourly trend
type Hour struct {
	Time          string   `json:"time"`
	Temp          float64  `json:"temp"`
	FeelsLike     float64  `json:"feelsLike"`
	Icon          string   `json:"icon"`
	Description   string   `json:"description"`
	Precipitation float64  `json:"precipitation"` // mm/h
	Humidity      float64  `json:"humidity"`
	Wind          float64  `json:"wind"` // mph
	Pressure      *float64 `json:"pressure"`
	UVIndex       float64  `json:"uvIndex"`
	DewPoint      float64  `json:"dewPoint"`
}

// Day is one row of the extended forecast
type Day struct {
	Date          string  `json:"date"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Precipitation float64 `json:"precipitation"` // mm
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Humidity      float64 `json:"humidity"`
	Wind          float64 `json:"wind"`
}

// HistoricalDay is one row of the historical series
type HistoricalDay struct {
	Date          string  `json:"date"`
	AvgTemp       float64 `json:"avgTemp"`
	Precipitation float64 `json:"precipitation"`
	Humidity      float64 `json:"humidity"`
}

// ComparisonEntry pairs a resolved location label with its current conditions
type ComparisonEntry struct {
	Location string  `json:"location"`
	Weather  Current `json:"weather"`
}

// Snapshot is the last successfully fetched payload for the active location:
// current conditions, the hourly trend, and the joined extended forecast.
// It is overwritten wholesale on each refresh and is the sole input to export.
type Snapshot struct {
	Location  string  `json:"location"`
	Current   Current `json:"current"`
	Hourly    []Hour  `json:"hourly"`
	Forecast  []Day   `json:"forecast"`
	Timestamp string  `json:"timestamp"`
	Source    string  `json:"source"`
	Unit      string  `json:"unit"` // display symbol, e.g. "°F"
}

// AdviceWindow is the requested event window echoed back by the backend
type AdviceWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AdviceRisks holds per-factor risk tiers ("low"/"moderate"/"high")
type AdviceRisks struct {
	Precip      string `json:"precip"`
	Wind        string `json:"wind"`
	Temperature string `json:"temperature"`
	UV          string `json:"uv"`
}

// AdviceMetrics summarizes the event window
type AdviceMetrics struct {
	MaxPrecipMM   float64  `json:"max_precip_mm"`
	MaxPopPercent *float64 `json:"max_pop_percent"`
	MaxWindMPH    float64  `json:"max_wind_mph"`
	AvgTemp       *float64 `json:"avg_temp"`
	Unit          string   `json:"unit"`
}

// AdviceHour is one forecast hour inside the event window
type AdviceHour struct {
	Time     string   `json:"time"`
	Temp     *float64 `json:"temp"`
	PrecipMM float64  `json:"precip_mm"`
	Pop      *float64 `json:"pop"`
	WindMPH  float64  `json:"wind_mph"`
	Cloud    *float64 `json:"cloud"`
	UV       *float64 `json:"uv"`
}

// Advice is the event-planning assessment for a time window
type Advice struct {
	Window      AdviceWindow  `json:"window"`
	Favorable   bool          `json:"favorable"`
	Summary     string        `json:"summary"`
	Risks       AdviceRisks   `json:"risks"`
	Metrics     AdviceMetrics `json:"metrics"`
	Hourly      []AdviceHour  `json:"hourly"`
	Suggestions []string      `json:"suggestions"`
	Source      string        `json:"source"`
}
