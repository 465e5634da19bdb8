package model

import (
	"strconv"
	"strings"
	"time"
)

// Visit is one place from last year's trip log. Cost and time fields stay
// raw strings as loaded; the derived accessors do the coercion the metrics
// pass relies on.
type Visit struct {
	PlaceName     string
	VisitDate     string
	VisitTime     string
	BookingTime   string
	Category      string
	Address       string
	OrderedMenu   string
	SupportedCost string
	ExtraCost     string
	Notes         string
	Latitude      string
	Longitude     string
}

// VisitsFromTable reads the history sheet in row order. Row index is kept
// implicitly by position; the sheet has no primary key.
func VisitsFromTable(t *Table) []Visit {
	if t == nil {
		return nil
	}
	visits := make([]Visit, 0, len(t.Rows))
	for i := range t.Rows {
		visits = append(visits, Visit{
			PlaceName:     t.Get(i, ColPlaceName),
			VisitDate:     t.Get(i, ColVisitDate),
			VisitTime:     t.Get(i, ColVisitTime),
			BookingTime:   t.Get(i, ColBookingTime),
			Category:      t.Get(i, ColCategory),
			Address:       t.Get(i, ColAddress),
			OrderedMenu:   t.Get(i, ColOrderedMenu),
			SupportedCost: t.Get(i, ColSupportedCost),
			ExtraCost:     t.Get(i, ColExtraCost),
			Notes:         t.Get(i, ColNotes),
			Latitude:      t.Get(i, ColLatitude),
			Longitude:     t.Get(i, ColLongitude),
		})
	}
	return visits
}

// ParseCost coerces a cost cell to a number. Unparseable or missing values
// coerce to zero so sums never propagate a missing-value marker.
func ParseCost(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "원")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// TotalCost is the per-row supported + extra sum.
func (v Visit) TotalCost() float64 {
	return ParseCost(v.SupportedCost) + ParseCost(v.ExtraCost)
}

var dateLayouts = []string{"2006-01-02", "2006.01.02", "2006/01/02"}

// ParseVisitDate parses the visit date cell. The sheet has seen all three
// separator styles across revisions.
func ParseVisitDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// ParseClock parses an HH:MM cell into minutes since midnight.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// HasCoordinate reports whether both coordinate cells hold numbers. Anything
// else marks the row as an enrichment candidate.
func (v Visit) HasCoordinate() bool {
	_, latErr := strconv.ParseFloat(strings.TrimSpace(v.Latitude), 64)
	_, lonErr := strconv.ParseFloat(strings.TrimSpace(v.Longitude), 64)
	return latErr == nil && lonErr == nil
}
