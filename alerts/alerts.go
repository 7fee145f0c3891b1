package alerts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Severity ranks an active alert for badge styling
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "WARNING"
	case SeverityMedium:
		return "WATCH"
	case SeverityLow:
		return "ADVISORY"
	default:
		return "INFO"
	}
}

// Alert is one active weather alert for the selected point
type Alert struct {
	Title     string
	Summary   string
	Published time.Time
	URL       string
	Severity  Severity
}

// NWS alert products follow a fixed naming scheme, so the headline alone
// carries the severity tier.
var severityKeywords = []struct {
	level Severity
	words []string
}{
	{SeverityHigh, []string{"warning", "emergency", "tornado", "extreme"}},
	{SeverityMedium, []string{"watch"}},
	{SeverityLow, []string{"advisory", "statement", "outlook"}},
}

func classifySeverity(title string) Severity {
	lower := strings.ToLower(title)
	for _, tier := range severityKeywords {
		for _, kw := range tier.words {
			if strings.Contains(lower, kw) {
				return tier.level
			}
		}
	}
	return SeverityInfo
}

// Client fetches the public active-alerts Atom feed for a point. FeedURL is
// a field so tests can point it at a local server.
type Client struct {
	FeedURL   string
	UserAgent string
}

func NewClient() *Client {
	return &Client{
		FeedURL:   "https://api.weather.gov/alerts/active.atom",
		UserAgent: "skycast/1.0 (Go Atom reader)",
	}
}

// Fetch returns active alerts for the coordinates, most severe first.
// Alert data is best-effort; callers show errors inline and move on.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) ([]Alert, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = c.UserAgent

	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s?point=%.4f,%.4f", c.FeedURL, lat, lon)
	feed, err := fp.ParseURLWithContext(url, fetchCtx)
	if err != nil {
		return nil, fmt.Errorf("alert feed: %w", err)
	}

	var alerts []Alert
	for _, entry := range feed.Items {
		if entry.Title == "" {
			continue
		}
		pub := time.Now()
		if entry.PublishedParsed != nil {
			pub = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			pub = *entry.UpdatedParsed
		}
		alerts = append(alerts, Alert{
			Title:     entry.Title,
			Summary:   strings.TrimSpace(entry.Description),
			Published: pub,
			URL:       entry.Link,
			Severity:  classifySeverity(entry.Title),
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Severity != alerts[j].Severity {
			return alerts[i].Severity > alerts[j].Severity
		}
		return alerts[i].Published.After(alerts[j].Published)
	})

	return alerts, nil
}
