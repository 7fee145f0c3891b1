package ui

import (
	"errors"
	"testing"
)

func TestLocationState(t *testing.T) {
	var loc LocationState
	if loc.HasCoords() {
		t.Error("empty state claims coordinates")
	}

	loc.SetCoords(40.7829, -73.9654)
	if !loc.HasCoords() {
		t.Fatal("HasCoords false after SetCoords")
	}
	if loc.Label != "40.7829, -73.9654" {
		t.Errorf("fallback label = %q", loc.Label)
	}
	if !loc.At(40.7829, -73.9654) {
		t.Error("At false for current coordinates")
	}
	if loc.At(41.0, -73.9654) {
		t.Error("At true for different coordinates")
	}
}

func TestCompareSetAdd(t *testing.T) {
	var set CompareSet

	if err := set.Add("  "); !errors.Is(err, errCompareEmpty) {
		t.Errorf("blank add: err = %v, want empty error", err)
	}
	if set.Len() != 0 {
		t.Fatalf("blank add mutated the set: %v", set.Labels())
	}

	if err := set.Add("New York"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := set.Add("new york"); !errors.Is(err, errCompareDup) {
		t.Errorf("case-folded duplicate: err = %v, want duplicate error", err)
	}
	if set.Len() != 1 {
		t.Fatalf("duplicate add mutated the set: %v", set.Labels())
	}

	for _, label := range []string{"Chicago", "Denver", "Seattle", "Austin"} {
		if err := set.Add(label); err != nil {
			t.Fatalf("Add(%q): %v", label, err)
		}
	}
	if err := set.Add("Boston"); !errors.Is(err, errCompareFull) {
		t.Errorf("sixth add: err = %v, want full error", err)
	}
	if set.Len() != 5 {
		t.Fatalf("rejected sixth add mutated the set: %v", set.Labels())
	}

	want := []string{"New York", "Chicago", "Denver", "Seattle", "Austin"}
	got := set.Labels()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q (order must be insertion order)", i, got[i], want[i])
		}
	}
}

func TestCompareSetRemove(t *testing.T) {
	var set CompareSet
	set.Add("New York")
	set.Add("Chicago")

	set.Remove("NEW YORK")
	if set.Len() != 1 || set.Labels()[0] != "Chicago" {
		t.Errorf("labels after remove = %v", set.Labels())
	}

	set.Remove("not present")
	if set.Len() != 1 {
		t.Errorf("removing a missing label mutated the set: %v", set.Labels())
	}
}

// Toggling the unit re-fetches only what the active view shows.
func TestRefreshOpForTab(t *testing.T) {
	tests := []struct {
		tab  int
		want RefreshOp
	}{
		{TabDashboard, RefreshDashboard},
		{TabForecast, RefreshDashboard},
		{TabHistorical, RefreshHistorical},
		{TabCompare, RefreshCompare},
		{TabEvent, RefreshNone},
		{TabAlerts, RefreshNone},
	}
	for _, tt := range tests {
		if got := refreshOpForTab(tt.tab); got != tt.want {
			t.Errorf("refreshOpForTab(%d) = %v, want %v", tt.tab, got, tt.want)
		}
	}
}
