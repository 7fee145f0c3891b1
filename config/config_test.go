package config

import (
	"testing"
)

func TestHasCoords(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want bool
	}{
		{"unset", Location{}, false},
		{"both set", Location{Latitude: 40.78, Longitude: -73.97}, true},
		{"zero longitude", Location{Latitude: 51.48}, true},
		{"zero latitude", Location{Longitude: -0.0077}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.HasCoords(); got != tt.want {
				t.Errorf("HasCoords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if ConfigExists() {
		t.Fatal("config exists in a fresh home")
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without a config file")
	}

	in := &Config{
		BackendURL: "http://localhost:9000",
		Location: Location{
			Label:     "Central Park, New York",
			Latitude:  40.7829,
			Longitude: -73.9654,
		},
		Unit:    "celsius",
		Compare: []string{"New York", "Chicago"},
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !ConfigExists() {
		t.Fatal("ConfigExists false after Save")
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.BackendURL != in.BackendURL {
		t.Errorf("backend = %q, want %q", out.BackendURL, in.BackendURL)
	}
	if out.Location != in.Location {
		t.Errorf("location = %+v, want %+v", out.Location, in.Location)
	}
	if out.Unit != "celsius" {
		t.Errorf("unit = %q", out.Unit)
	}
	if len(out.Compare) != 2 || out.Compare[0] != "New York" {
		t.Errorf("compare = %v", out.Compare)
	}

	// Unset numeric fields come back as the documented defaults
	if out.Hours != 24 || out.Days != 7 || out.HistoryDays != 30 || out.RefreshSec != 300 {
		t.Errorf("defaults not applied: %+v", out)
	}
	if out.ExportDir != "." {
		t.Errorf("export dir = %q, want .", out.ExportDir)
	}
}
