package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseCoords(t *testing.T) {
	tests := []struct {
		in       string
		lat, lon float64
		ok       bool
	}{
		{"40.7829,-73.9654", 40.7829, -73.9654, true},
		{"  40.78 , -73.97  ", 40.78, -73.97, true},
		{"-33.9,151.2", -33.9, 151.2, true},
		{"0,0", 0, 0, true},
		{"90,-180", 90, -180, true},
		{"91,0", 0, 0, false},
		{"0,181", 0, 0, false},
		{"-90.1,0", 0, 0, false},
		{"New York", 0, 0, false},
		{"40.78", 0, 0, false},
		{"40.78,-73.97,5", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lat, lon, ok := ParseCoords(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseCoords(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && (lat != tt.lat || lon != tt.lon) {
				t.Errorf("ParseCoords(%q) = %v, %v, want %v, %v", tt.in, lat, lon, tt.lat, tt.lon)
			}
		})
	}
}

func TestFormatCoords(t *testing.T) {
	if got := FormatCoords(40.78291, -73.96543); got != "40.7829, -73.9654" {
		t.Errorf("FormatCoords = %q, want fixed four decimals", got)
	}
	if got := FormatCoords(0, 0); got != "0.0000, 0.0000" {
		t.Errorf("FormatCoords(0,0) = %q", got)
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "central park" {
			t.Errorf("query q = %q", got)
		}
		w.Write([]byte(`[{"display_name":"Central Park, New York","lat":"40.7829","lon":"-73.9654"}]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.SearchURL = srv.URL

	place, err := c.Search(context.Background(), "central park")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if place.Name != "Central Park, New York" {
		t.Errorf("name = %q", place.Name)
	}
	if place.Lat != 40.7829 || place.Lon != -73.9654 {
		t.Errorf("coords = %v, %v", place.Lat, place.Lon)
	}
}

func TestSearchNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.SearchURL = srv.URL

	if _, err := c.Search(context.Background(), "xyzzy"); err == nil {
		t.Fatal("expected error for empty result set")
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"city with state",
			`{"address":{"city":"New York","state":"New York"}}`,
			"New York, New York",
		},
		{
			"town beats county",
			`{"address":{"town":"Ossining","county":"Westchester County","state":"New York"}}`,
			"Ossining, New York",
		},
		{
			"village without state",
			`{"address":{"village":"Skaneateles"}}`,
			"Skaneateles",
		},
		{
			"display name fallback",
			`{"display_name":"Somewhere remote","address":{}}`,
			"Somewhere remote",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient()
			c.ReverseURL = srv.URL

			got, err := c.Reverse(context.Background(), 40.78, -73.97)
			if err != nil {
				t.Fatalf("Reverse: %v", err)
			}
			if got != tt.want {
				t.Errorf("label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReverseNoName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{}}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.ReverseURL = srv.URL

	if _, err := c.Reverse(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error when no place name resolves")
	}
}

func TestLocate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","lat":40.71,"lon":-74.01,"city":"New York","regionName":"New York"}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.LocateURL = srv.URL

	place, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if place.Name != "New York, New York" {
		t.Errorf("name = %q", place.Name)
	}
	if place.Lat != 40.71 || place.Lon != -74.01 {
		t.Errorf("coords = %v, %v", place.Lat, place.Lon)
	}
}

func TestLocateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.LocateURL = srv.URL

	_, err := c.Locate(context.Background())
	if err == nil {
		t.Fatal("expected error for failed geolocation")
	}
}
