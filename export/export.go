package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"skycast/api"
)

// ErrNoSnapshot is returned when export is requested before any successful
// fetch.
var ErrNoSnapshot = errors.New("no weather data fetched yet")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Filename derives a filesystem-safe name from the location label: all runs
// of non-alphanumeric characters collapse to "_", plus a timestamp for
// uniqueness.
func Filename(label string, t time.Time, ext string) string {
	safe := strings.Trim(unsafeChars.ReplaceAllString(label, "_"), "_")
	if safe == "" {
		safe = "weather"
	}
	return fmt.Sprintf("%s_%s.%s", safe, t.Format("20060102_150405"), ext)
}

// document is the JSON export shape: the full snapshot plus export metadata
type document struct {
	Location   string        `json:"location"`
	ExportedAt string        `json:"exported_at"`
	Source     string        `json:"source"`
	Unit       string        `json:"unit"`
	Snapshot   *api.Snapshot `json:"snapshot"`
}

// WriteJSON serializes the snapshot to a JSON file in dir and returns its
// path.
func WriteJSON(dir string, snap *api.Snapshot, now time.Time) (string, error) {
	if snap == nil {
		return "", ErrNoSnapshot
	}

	doc := document{
		Location:   snap.Location,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Source:     snap.Source,
		Unit:       snap.Unit,
		Snapshot:   snap,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}

	path := filepath.Join(dir, Filename(snap.Location, now, "json"))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// WriteCSV serializes the snapshot to a sectioned CSV file in dir: current
// conditions as key/value pairs, then the hourly table, then the extended
// forecast table.
func WriteCSV(dir string, snap *api.Snapshot, now time.Time) (string, error) {
	if snap == nil {
		return "", ErrNoSnapshot
	}

	path := filepath.Join(dir, Filename(snap.Location, now, "csv"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	rows := [][]string{
		{"Current Weather", snap.Location},
		{"Field", "Value"},
		{"Temperature", num(snap.Current.Temp) + " " + snap.Unit},
		{"Feels Like", num(snap.Current.FeelsLike) + " " + snap.Unit},
		{"Condition", snap.Current.Description},
		{"Humidity", num(snap.Current.Humidity) + " %"},
		{"Wind", num(snap.Current.Wind) + " mph"},
		{"Precipitation", num(snap.Current.Precipitation) + " mm/h"},
		{"UV Index", num(snap.Current.UVIndex)},
		{"Source", snap.Source},
		{"Timestamp", snap.Timestamp},
		{},
		{"Hourly Forecast"},
		{"Time", "Temp " + snap.Unit, "Precipitation mm/h", "Humidity %", "Wind mph"},
	}
	for _, h := range snap.Hourly {
		rows = append(rows, []string{
			h.Time, num(h.Temp), num(h.Precipitation), num(h.Humidity), num(h.Wind),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Extended Forecast"},
		[]string{"Date", "High " + snap.Unit, "Low " + snap.Unit, "Precipitation mm", "Condition"},
	)
	for _, d := range snap.Forecast {
		rows = append(rows, []string{
			d.Date, num(d.High), num(d.Low), num(d.Precipitation), d.Description,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
