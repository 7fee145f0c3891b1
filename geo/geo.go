package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

// coordRe accepts "lat,lon" pairs with optional whitespace, e.g. "40.78, -73.97"
var coordRe = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)

// ParseCoords interprets free text as a coordinate pair. ok is false when the
// text is not a coordinate pair and should be treated as a place name.
func ParseCoords(s string) (lat, lon float64, ok bool) {
	m := coordRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(m[1], 64)
	lon, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// FormatCoords is the fixed-precision fallback label used whenever reverse
// geocoding fails or returns no name.
func FormatCoords(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}

// Place is a resolved location
type Place struct {
	Name string
	Lat  float64
	Lon  float64
}

// Client resolves place names and coordinates via Nominatim, and the current
// position via an IP geolocation service. The URLs are fields so tests can
// point them at local servers.
type Client struct {
	SearchURL  string
	ReverseURL string
	LocateURL  string
	UserAgent  string

	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		SearchURL:  "https://nominatim.openstreetmap.org/search",
		ReverseURL: "https://nominatim.openstreetmap.org/reverse",
		LocateURL:  "http://ip-api.com/json",
		UserAgent:  "skycast/1.0",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("geocoder HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding geocoder response: %w", err)
	}
	return nil
}

// Search resolves a free-text place name to coordinates (best match only).
func (c *Client) Search(ctx context.Context, query string) (Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := c.getJSON(ctx, c.SearchURL+"?"+params.Encode(), &results); err != nil {
		return Place{}, err
	}
	if len(results) == 0 {
		return Place{}, fmt.Errorf("no match for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("parsing longitude: %w", err)
	}

	name := results[0].DisplayName
	if name == "" {
		name = query
	}
	return Place{Name: name, Lat: lat, Lon: lon}, nil
}

// Reverse resolves coordinates to a short place label, preferring
// city > town > village, with the state appended when known. Callers must
// fall back to FormatCoords on error; reverse lookup is best-effort.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	var result struct {
		DisplayName string `json:"display_name"`
		Address     struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			County  string `json:"county"`
			State   string `json:"state"`
		} `json:"address"`
	}
	if err := c.getJSON(ctx, c.ReverseURL+"?"+params.Encode(), &result); err != nil {
		return "", err
	}

	a := result.Address
	place := a.City
	if place == "" {
		place = a.Town
	}
	if place == "" {
		place = a.Village
	}
	if place == "" {
		place = a.County
	}
	if place == "" {
		if result.DisplayName != "" {
			return result.DisplayName, nil
		}
		return "", fmt.Errorf("no place name at %.4f, %.4f", lat, lon)
	}
	if a.State != "" {
		return place + ", " + a.State, nil
	}
	return place, nil
}

// Locate estimates the current position from the caller's public IP.
// A failed lookup is reported to the user; it never falls back silently.
func (c *Client) Locate(ctx context.Context) (Place, error) {
	var result struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		City    string  `json:"city"`
		Region  string  `json:"regionName"`
	}
	if err := c.getJSON(ctx, c.LocateURL, &result); err != nil {
		return Place{}, err
	}
	if result.Status != "success" {
		if result.Message != "" {
			return Place{}, fmt.Errorf("geolocation failed: %s", result.Message)
		}
		return Place{}, fmt.Errorf("geolocation unavailable")
	}

	name := result.City
	if name != "" && result.Region != "" {
		name = name + ", " + result.Region
	}
	if name == "" {
		name = FormatCoords(result.Lat, result.Lon)
	}
	return Place{Name: name, Lat: result.Lat, Lon: result.Lon}, nil
}
