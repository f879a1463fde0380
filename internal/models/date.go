package models

import (
	"fmt"
	"time"
)

// isoDateLayout is the persisted representation of a Date.
const isoDateLayout = "2006-01-02"

// Date is a calendar date without time-of-day semantics. Statement rows carry
// dates only, and keeping them as pure dates avoids the day-shifting that
// timezone-aware timestamps introduce when a list is serialized and reloaded.
type Date struct {
	t time.Time
}

// NewDate creates a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseISODate parses a YYYY-MM-DD string as produced by Date.String.
func ParseISODate(value string) (Date, error) {
	t, err := time.Parse(isoDateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{t: t}, nil
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(isoDateLayout)
}

// MarshalJSON serializes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON rehydrates a date from its ISO string form.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", s)
	}
	s = s[1 : len(s)-1]
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseISODate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalCSV implements the gocsv marshaller for CSV export.
func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

// UnmarshalCSV implements the gocsv unmarshaller.
func (d *Date) UnmarshalCSV(value string) error {
	if value == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseISODate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
