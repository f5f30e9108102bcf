// Package validation provides input parsing helpers shared by HTTP handlers.
package validation

import (
	"fmt"
	"time"
)

// ParseDateISO8601 parses an ISO-8601 date-time string with a numeric offset
// or 'Z' suffix (RFC 3339), e.g. "2024-06-06T20:00:00Z". A bare date such as
// "2024-06-06" is accepted and interpreted as midnight UTC.
func ParseDateISO8601(value string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q: expected ISO-8601 (e.g. 2024-06-06T20:00:00Z)", value)
}

// ParseEndDateISO8601 parses the end of a date range. A full date-time is
// taken as-is; a bare date such as "2024-06-06" covers the whole day, so it
// is rolled to the last instant before the next midnight and an inclusive
// comparison keeps articles published at any time during that day.
func ParseEndDateISO8601(value string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q: expected ISO-8601 (e.g. 2024-06-06T20:00:00Z)", value)
}
