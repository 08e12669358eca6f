package sipfolio

import (
	"testing"
	"time"

	"github.com/ketandv/sipfolio/date"
)

// Rs is a helper for tests to create rupee money from const.
func Rs(v float64) Money { return M(v, "INR") }

// rec builds a raw feed record, dates in the feed's DD-MM-YYYY format.
func rec(day, nav string) Record { return Record{Date: day, NAV: nav} }

// mustSeries builds an enriched series from feed records or fails the test.
func mustSeries(t *testing.T, records ...Record) Series {
	t.Helper()
	s, err := NewSeries(records, 0)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}
	return s
}

// monthlyFeed generates n consecutive monthly records starting January 2020,
// newest first like the real feed, with NAVs from the navs slice cycled.
func monthlyFeed(n int, navs ...string) []Record {
	if len(navs) == 0 {
		navs = []string{"100.0"}
	}
	records := make([]Record, 0, n)
	for i := n - 1; i >= 0; i-- {
		on := date.New(2020, time.Month(1+i), 1) // New normalizes months past December
		records = append(records, Record{Date: on.Feed(), NAV: navs[i%len(navs)]})
	}
	return records
}
