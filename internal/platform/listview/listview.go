// Package listview implements the shared filter/search/pagination engine
// used by every list-rendering endpoint of the portal. Filtering always
// runs over the full in-memory collection; collections are fetched whole
// from the upstream backend and are small by design.
package listview

import (
	"strings"
	"time"
)

// All disables the status or category filter when used as the criteria value.
const All = "all"

// DateRange selects a calendar-naive inclusion window ending at "now".
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

// DefaultPageSize is the page size every list view uses unless overridden.
const DefaultPageSize = 10

// ParseDateRange maps a raw query value onto a DateRange, treating
// anything unrecognized as "all".
func ParseDateRange(s string) DateRange {
	switch DateRange(strings.ToLower(strings.TrimSpace(s))) {
	case DateRangeToday:
		return DateRangeToday
	case DateRangeWeek:
		return DateRangeWeek
	case DateRangeMonth:
		return DateRangeMonth
	case DateRangeYear:
		return DateRangeYear
	default:
		return DateRangeAll
	}
}

// Record is the field-accessor contract a domain entity implements to be
// driven through the engine. Each list-bearing domain supplies only this
// mapping; the filter logic itself lives here once.
type Record interface {
	RecordID() string
	SearchText() []string
	StatusValue() string
	CategoryValue() string
	OccurredAt() string
	Labels() []string
}

// Criteria holds the active filter/search parameters for a list view.
// The zero value of Status/Category/DateRange means "no filter".
type Criteria struct {
	Query     string
	Status    string
	Category  string
	DateRange DateRange
	PageSize  int
}

func (c Criteria) pageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// Matches reports whether a single record passes every active filter.
// Filters combine with logical AND. A record whose timestamp does not
// parse is excluded whenever a date filter is active.
func Matches(r Record, c Criteria, now time.Time) bool {
	if !matchesQuery(r, c.Query) {
		return false
	}
	if c.Status != "" && c.Status != All && r.StatusValue() != c.Status {
		return false
	}
	if c.Category != "" && c.Category != All && r.CategoryValue() != c.Category {
		return false
	}
	return matchesDateRange(r.OccurredAt(), c.DateRange, now)
}

func matchesQuery(r Record, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range r.SearchText() {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, tag := range r.Labels() {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(r.RecordID()), q)
}

func matchesDateRange(raw string, dr DateRange, now time.Time) bool {
	if dr == "" || dr == DateRangeAll {
		return true
	}
	ts, ok := parseTimestamp(raw)
	if !ok {
		return false
	}
	switch dr {
	case DateRangeToday:
		// Local calendar-day comparison, matching how the views format dates.
		return ts.Format("2006-01-02") == now.Format("2006-01-02")
	case DateRangeWeek:
		return inWindow(ts, now, 7)
	case DateRangeMonth:
		return inWindow(ts, now, 30)
	case DateRangeYear:
		return inWindow(ts, now, 365)
	default:
		return true
	}
}

// inWindow checks ts against [now - days*24h, now], inclusive on both
// ends. Windows are fixed-length, not calendar-month aware.
func inWindow(ts, now time.Time, days int) bool {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	return !ts.Before(cutoff) && !ts.After(now)
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Visible filters all against the criteria, preserving input order. No
// re-sorting happens anywhere in the engine; order is whatever the
// backend returned.
func Visible[T Record](all []T, c Criteria, now time.Time) []T {
	visible := make([]T, 0, len(all))
	for _, r := range all {
		if Matches(r, c, now) {
			visible = append(visible, r)
		}
	}
	return visible
}

// PageCount returns ceil(n/pageSize), never less than 1: an empty result
// renders as one empty page, not zero pages.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	count := (n + pageSize - 1) / pageSize
	if count < 1 {
		return 1
	}
	return count
}

// Slice returns the 1-indexed page window [(page-1)*pageSize, page*pageSize)
// of visible. Out-of-range pages yield an empty slice.
func Slice[T Record](visible []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(visible) {
		return []T{}
	}
	end := start + pageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}
