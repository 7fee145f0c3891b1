package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// Client talks to the weather backend over HTTP+JSON. The backend does all
// quantitative work; this client only builds queries and decodes responses.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Query holds the location/unit parameters shared by most endpoints.
// When both coordinates and a free-text label are known, coordinates win.
type Query struct {
	Location string
	Lat      *float64
	Lon      *float64
	Hours    int
	Days     int
	Unit     Unit
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Lat != nil && q.Lon != nil {
		v.Set("lat", strconv.FormatFloat(*q.Lat, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(*q.Lon, 'f', -1, 64))
	} else if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Hours > 0 {
		v.Set("hours", strconv.Itoa(q.Hours))
	}
	if q.Days > 0 {
		v.Set("days", strconv.Itoa(q.Days))
	}
	v.Set("unit", string(q.Unit))
	return v
}

// get issues one request and decodes the body into out. A response body
// carrying an explicit "error" field is a failure regardless of HTTP status.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather backend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", path, err)
	}

	var env struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return fmt.Errorf("weather backend: %s", env.Error)
	}

	if resp.StatusCode != 200 {
		return fmt.Errorf("weather backend HTTP %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// Weather fetches current conditions plus the hourly trend. The returned
// snapshot has no forecast yet; Dashboard joins the two.
func (c *Client) Weather(ctx context.Context, q Query) (*Snapshot, error) {
	var raw struct {
		Location  string  `json:"location"`
		Current   Current `json:"current"`
		Hourly    []Hour  `json:"hourly"`
		Timestamp string  `json:"timestamp"`
		Source    string  `json:"source"`
		Unit      string  `json:"unit"`
	}
	if err := c.get(ctx, "/api/weather", q.values(), &raw); err != nil {
		return nil, err
	}
	return &Snapshot{
		Location:  raw.Location,
		Current:   raw.Current,
		Hourly:    raw.Hourly,
		Timestamp: raw.Timestamp,
		Source:    raw.Source,
		Unit:      raw.Unit,
	}, nil
}

// Forecast fetches the extended daily forecast, in backend order.
func (c *Client) Forecast(ctx context.Context, q Query) ([]Day, error) {
	var raw struct {
		Forecast []Day `json:"forecast"`
	}
	if err := c.get(ctx, "/api/forecast", q.values(), &raw); err != nil {
		return nil, err
	}
	return raw.Forecast, nil
}

// Historical fetches the daily historical series for the last q.Days days.
func (c *Client) Historical(ctx context.Context, q Query) ([]HistoricalDay, error) {
	var raw struct {
		Historical []HistoricalDay `json:"historical"`
	}
	if err := c.get(ctx, "/api/historical", q.values(), &raw); err != nil {
		return nil, err
	}
	return raw.Historical, nil
}

// Compare fetches current conditions for several locations at once.
// Locations the backend cannot resolve are skipped server-side.
func (c *Client) Compare(ctx context.Context, locations []string, unit Unit) ([]ComparisonEntry, error) {
	v := url.Values{}
	for _, loc := range locations {
		v.Add("locations[]", loc)
	}
	v.Set("unit", string(unit))

	var raw struct {
		Comparison []ComparisonEntry `json:"comparison"`
	}
	if err := c.get(ctx, "/api/compare", v, &raw); err != nil {
		return nil, err
	}
	return raw.Comparison, nil
}

// EventAdvice fetches risk metrics for an event window. Start and end are
// zero-padded local "YYYY-MM-DDTHH:MM" strings.
func (c *Client) EventAdvice(ctx context.Context, lat, lon float64, start, end, eventType string, unit Unit) (*Advice, error) {
	v := url.Values{}
	v.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	v.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	v.Set("start", start)
	v.Set("end", end)
	v.Set("eventType", eventType)
	v.Set("unit", string(unit))

	var advice Advice
	if err := c.get(ctx, "/api/event-advice", v, &advice); err != nil {
		return nil, err
	}
	return &advice, nil
}

// Dashboard refreshes current+hourly and the extended forecast as two
// concurrent requests joined into one snapshot. Both must succeed or the
// whole refresh fails; a partial result is never returned.
func (c *Client) Dashboard(ctx context.Context, q Query) (*Snapshot, error) {
	var (
		snap *Snapshot
		days []Day
		wErr error
		fErr error
		wg   sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snap, wErr = c.Weather(ctx, q)
	}()
	go func() {
		defer wg.Done()
		days, fErr = c.Forecast(ctx, q)
	}()
	wg.Wait()

	if wErr != nil {
		return nil, wErr
	}
	if fErr != nil {
		return nil, fErr
	}

	snap.Forecast = days
	return snap, nil
}
