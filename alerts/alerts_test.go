package alerts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		title string
		want  Severity
	}{
		{"Severe Thunderstorm Warning issued for Cook County", SeverityHigh},
		{"Tornado Emergency", SeverityHigh},
		{"Flood Watch in effect until Friday", SeverityMedium},
		{"Heat Advisory until 8 PM", SeverityLow},
		{"Special Weather Statement", SeverityLow},
		{"Hydrologic Outlook", SeverityLow},
		{"Routine notice", SeverityInfo},
		// Warning outranks watch when both appear
		{"Flood Warning replaces Flood Watch", SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := classifySeverity(tt.title); got != tt.want {
				t.Errorf("classifySeverity(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityHigh, "WARNING"},
		{SeverityMedium, "WATCH"},
		{SeverityLow, "ADVISORY"},
		{SeverityInfo, "INFO"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Current watches, warnings, and advisories</title>
  <updated>2024-06-01T12:00:00Z</updated>
  <entry>
    <id>urn:noaa:1</id>
    <title>Heat Advisory issued June 1</title>
    <link href="https://example.test/advisory"/>
    <published>2024-06-01T10:00:00Z</published>
    <updated>2024-06-01T10:00:00Z</updated>
    <summary>Temperatures up to 100 expected.</summary>
  </entry>
  <entry>
    <id>urn:noaa:2</id>
    <title>Severe Thunderstorm Warning issued June 1</title>
    <link href="https://example.test/warning"/>
    <published>2024-06-01T09:00:00Z</published>
    <updated>2024-06-01T09:00:00Z</updated>
    <summary>Quarter size hail and 60 mph wind gusts.</summary>
  </entry>
  <entry>
    <id>urn:noaa:3</id>
    <title>Flood Watch issued June 1</title>
    <link href="https://example.test/watch"/>
    <published>2024-06-01T11:00:00Z</published>
    <updated>2024-06-01T11:00:00Z</updated>
    <summary>Excessive runoff possible.</summary>
  </entry>
</feed>`

func TestFetchSortsBySeverity(t *testing.T) {
	var gotPoint string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPoint = r.URL.Query().Get("point")
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	c := NewClient()
	c.FeedURL = srv.URL

	alerts, err := c.Fetch(context.Background(), 41.8781, -87.6298)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotPoint != "41.8781,-87.6298" {
		t.Errorf("point = %q", gotPoint)
	}
	if len(alerts) != 3 {
		t.Fatalf("alerts = %d, want 3", len(alerts))
	}

	wantOrder := []Severity{SeverityHigh, SeverityMedium, SeverityLow}
	for i, want := range wantOrder {
		if alerts[i].Severity != want {
			t.Errorf("alerts[%d].Severity = %v, want %v", i, alerts[i].Severity, want)
		}
	}
	if alerts[0].Title != "Severe Thunderstorm Warning issued June 1" {
		t.Errorf("top alert = %q", alerts[0].Title)
	}
	if alerts[0].Summary != "Quarter size hail and 60 mph wind gusts." {
		t.Errorf("summary = %q", alerts[0].Summary)
	}
	if alerts[0].URL != "https://example.test/warning" {
		t.Errorf("url = %q", alerts[0].URL)
	}
}

func TestFetchEmptyFeed(t *testing.T) {
	empty := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Current watches, warnings, and advisories</title>
  <updated>2024-06-01T12:00:00Z</updated>
</feed>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(empty))
	}))
	defer srv.Close()

	c := NewClient()
	c.FeedURL = srv.URL

	alerts, err := c.Fetch(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("alerts = %v, want none", alerts)
	}
}
