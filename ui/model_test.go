package ui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"skycast/api"
	"skycast/geo"
)

func TestSearchMissFallsBackToBackendLookup(t *testing.T) {
	m := testModel()
	m.loc.SetCoords(40.7829, -73.9654)

	nm, cmd := m.Update(searchResolvedMsg{query: "Atlantis", err: errors.New("no match")})
	m = nm.(Model)

	if m.loc.Label != "Atlantis" {
		t.Errorf("label = %q, want the raw search text", m.loc.Label)
	}
	if m.loc.HasCoords() {
		t.Error("stale coordinates kept for a label-only location")
	}
	if m.gen[opDashboard] != 1 {
		t.Error("no backend fetch issued for the label-only location")
	}
	if cmd == nil {
		t.Error("Update returned no command")
	}
}

func TestSearchResolveDropsPerLocationData(t *testing.T) {
	m := testModel()
	m.loc.SetCoords(40.7829, -73.9654)
	_ = m.fetchHistorical()
	nm, _ := m.Update(historicalMsg{gen: 1, days: []api.HistoricalDay{
		{Date: "06-01", AvgTemp: 90, Precipitation: 0, Humidity: 40},
	}})
	m = nm.(Model)
	m.advice = &api.Advice{Favorable: true}

	nm, _ = m.Update(searchResolvedMsg{place: geo.Place{Name: "Reykjavik, Iceland", Lat: 64.1466, Lon: -21.9426}})
	m = nm.(Model)

	if m.historical != nil {
		t.Error("previous location's historical series kept across the change")
	}
	if m.advice != nil {
		t.Error("previous location's event advice kept across the change")
	}
	out := m.renderHistoricalContent()
	if strings.Contains(out, "90") {
		t.Errorf("old series rendered under the new label:\n%s", out)
	}
}

func TestLocateDropsPerLocationData(t *testing.T) {
	m := testModel()
	m.historical = []api.HistoricalDay{{Date: "06-01", AvgTemp: 90}}
	m.advice = &api.Advice{Favorable: true}

	nm, _ := m.Update(locateMsg{place: geo.Place{Name: "Denver, Colorado", Lat: 39.7392, Lon: -104.9903}})
	m = nm.(Model)

	if m.historical != nil || m.advice != nil {
		t.Error("geolocation kept the previous location's data")
	}
	if !m.loc.At(39.7392, -104.9903) {
		t.Errorf("location not moved: %+v", m.loc)
	}
}

func TestCoordinateEntryDropsPerLocationData(t *testing.T) {
	m := testModel()
	m.historical = []api.HistoricalDay{{Date: "06-01", AvgTemp: 90}}
	m.advice = &api.Advice{Favorable: true}

	nm, cmd := m.commitInput(modeSearch, "64.14, -21.94")
	m = nm.(Model)

	if m.historical != nil || m.advice != nil {
		t.Error("coordinate entry kept the previous location's data")
	}
	if !m.loc.At(64.14, -21.94) {
		t.Errorf("location not moved: %+v", m.loc)
	}
	if cmd == nil {
		t.Error("no fetch issued for the new coordinates")
	}
}

func TestRepeatChartRendersKeepDistinctFiles(t *testing.T) {
	m := testModel()
	m.cfg.ExportDir = t.TempDir()
	m.snapshot = testSnapshot()
	m.activeTab = TabDashboard

	first, ok := m.chartCmd()().(chartSavedMsg)
	if !ok || first.err != nil {
		t.Fatalf("first render: %+v", first)
	}
	second, ok := m.chartCmd()().(chartSavedMsg)
	if !ok || second.err != nil {
		t.Fatalf("second render: %+v", second)
	}

	if first.path == second.path {
		t.Fatalf("both renders wrote %q; the slot disposal removes the file just written", first.path)
	}
	if _, err := os.Stat(second.path); err != nil {
		t.Errorf("latest chart missing: %v", err)
	}
	if _, err := os.Stat(first.path); !os.IsNotExist(err) {
		t.Error("previous chart not disposed when the slot was reused")
	}
}

func TestAdviceSuccessUpdatesTimestamp(t *testing.T) {
	m := testModel()
	m.gen[opAdvice] = 1

	nm, _ := m.Update(adviceMsg{gen: 1, advice: &api.Advice{Favorable: true}})
	m = nm.(Model)

	if m.lastUpdated.IsZero() {
		t.Error("successful advice fetch did not update the last-updated timestamp")
	}
	if m.advice == nil || !m.advice.Favorable {
		t.Errorf("advice not applied: %+v", m.advice)
	}
}
