// Package date provides day-granularity dates and chronological value
// series, the time backbone of sipfolio.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical string representation of a date (ISO-8601).
const Format = "2006-01-02"

// FeedFormat is the representation used by the mutual fund NAV feeds
// (api.mfapi.in serves dates as "02-01-2006").
const FeedFormat = "02-01-2006"

const readFormat = "2006-1-2" // permissive read format, accepts 2025-7-1

// Date represents a calendar date with no granularity below the day.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
// Out-of-range values are carried over, so New(2025, 1, 32) is February 1st.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns the canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare orders two dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns d shifted by the given number of days.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Sub returns the number of whole days between d and x (d minus x).
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()) / (24 * time.Hour)) }

// StartOfMonth returns the first day of d's month. Two dates belong to the
// same calendar month iff their StartOfMonth are equal, which makes it the
// natural grouping key for monthly contributions.
func (d Date) StartOfMonth() Date { return New(d.y, d.m, 1) }

// String formats the date in the canonical format.
func (d Date) String() string { return d.time().Format(Format) }

// Format returns the date formatted according to the given time layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Feed formats the date the way the NAV feed does (DD-MM-YYYY).
func (d Date) Feed() string { return d.time().Format(FeedFormat) }

// Parse reads a date in the canonical format. It is permissive and accepts
// single digit months and days like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(on.Date()), nil
}

// ParseFeed reads a date in the feed format (DD-MM-YYYY).
func ParseFeed(str string) (Date, error) {
	on, err := time.Parse(FeedFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid feed date %q want format %q: %w", str, FeedFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error. Reserved for tests and constants.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON reads a Date from a canonical-format json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON writes a Date as a canonical-format json string.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
