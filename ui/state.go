package ui

import (
	"errors"
	"strings"

	"skycast/geo"
)

// LocationState is the single active location for the single-location views.
// Coordinates are optional: a free-text search that never resolved has only
// a label, and requests then fall back to the label.
type LocationState struct {
	Label string
	Lat   *float64
	Lon   *float64
}

func (l LocationState) HasCoords() bool {
	return l.Lat != nil && l.Lon != nil
}

// SetCoords points the state at a coordinate pair with the numeric fallback
// label; a later reverse-geocode may upgrade the label.
func (l *LocationState) SetCoords(lat, lon float64) {
	l.Lat = &lat
	l.Lon = &lon
	l.Label = geo.FormatCoords(lat, lon)
}

// At reports whether the state still points at the given coordinates, so
// slow reverse-geocode replies for an abandoned location are dropped.
func (l LocationState) At(lat, lon float64) bool {
	return l.HasCoords() && *l.Lat == lat && *l.Lon == lon
}

// maxCompare caps the comparison set
const maxCompare = 5

// CompareSet is the ordered list of comparison locations. Rejected additions
// never mutate the set.
type CompareSet struct {
	labels []string
}

var (
	errCompareEmpty = errors.New("location cannot be empty")
	errCompareDup   = errors.New("location already in comparison")
	errCompareFull  = errors.New("comparison is limited to 5 locations")
)

func (c *CompareSet) Add(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errCompareEmpty
	}
	for _, existing := range c.labels {
		if strings.EqualFold(existing, label) {
			return errCompareDup
		}
	}
	if len(c.labels) >= maxCompare {
		return errCompareFull
	}
	c.labels = append(c.labels, label)
	return nil
}

func (c *CompareSet) Remove(label string) {
	for i, existing := range c.labels {
		if strings.EqualFold(existing, label) {
			c.labels = append(c.labels[:i], c.labels[i+1:]...)
			return
		}
	}
}

func (c *CompareSet) Labels() []string {
	return c.labels
}

func (c *CompareSet) Len() int {
	return len(c.labels)
}

// RefreshOp names the fetch a view depends on. Toggling the unit re-fetches
// only the operation of the active view, never an unrelated one.
type RefreshOp int

const (
	RefreshNone RefreshOp = iota
	RefreshDashboard
	RefreshHistorical
	RefreshCompare
)

func refreshOpForTab(tab int) RefreshOp {
	switch tab {
	case TabDashboard, TabForecast:
		return RefreshDashboard
	case TabHistorical:
		return RefreshHistorical
	case TabCompare:
		return RefreshCompare
	default:
		return RefreshNone
	}
}
