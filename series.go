package sipfolio

import (
	"errors"
	"log"
	"math"
	"strconv"

	"github.com/ketandv/sipfolio/date"
)

// ErrNoData reports that no usable NAV history is available: the feed served
// nothing, or every record it served was malformed. It is terminal for the
// analysis that hit it, no partial result is ever returned alongside.
var ErrNoData = errors.New("no NAV data available")

// Record is one raw NAV observation exactly as served by the feed:
// a DD-MM-YYYY date and a decimal NAV, both as strings.
type Record struct {
	Date string `json:"date"`
	NAV  string `json:"nav"`
}

// Point is a validated NAV observation.
type Point struct {
	Date date.Date
	NAV  float64
}

// Enriched decorates a Point with indicators derived from its predecessors.
// Indicators that need history are NaN until their window is filled; use the
// Has methods rather than comparing to NaN directly.
type Enriched struct {
	Point
	Change     Percent // change over the previous point, NaN on the first one
	MA7        float64 // trailing 7-point simple moving average
	MA30       float64 // trailing 30-point simple moving average
	Volatility float64 // trailing 7-point sample standard deviation
}

// HasChange reports whether the point has a predecessor to compare with.
func (e Enriched) HasChange() bool { return !math.IsNaN(float64(e.Change)) }

// HasMA7 reports whether the 7-point average window was filled.
func (e Enriched) HasMA7() bool { return !math.IsNaN(e.MA7) }

// HasMA30 reports whether the 30-point average window was filled.
func (e Enriched) HasMA30() bool { return !math.IsNaN(e.MA30) }

// HasVolatility reports whether the 7-point volatility window was filled.
func (e Enriched) HasVolatility() bool { return !math.IsNaN(e.Volatility) }

// Series is a NAV history sorted strictly ascending by date, without
// duplicate dates, enriched with derived indicators.
type Series []Enriched

// First returns the earliest point of the series.
func (s Series) First() Point { return s[0].Point }

// Last returns the most recent point of the series, whose NAV values the
// holdings at the end of a simulation.
func (s Series) Last() Point { return s[len(s)-1].Point }

// NewSeries builds a Series from raw feed records.
//
// The feed serves records newest-first, so keeping the first `last` records
// keeps the `last` most recently reported ones; this truncation happens on
// the raw feed, before cleaning, so gaps in reporting shrink the calendar
// span rather than the record count. last <= 0 keeps everything.
//
// Malformed records (unparseable date or NAV, or a non-positive NAV) are
// dropped with a log line. Duplicated dates keep the last record seen.
// If nothing survives, NewSeries returns ErrNoData.
func NewSeries(records []Record, last int) (Series, error) {
	if last > 0 && len(records) > last {
		records = records[:last]
	}

	var history date.History[float64]
	for _, r := range records {
		on, err := date.ParseFeed(r.Date)
		if err != nil {
			log.Printf("dropping NAV record: %v", err)
			continue
		}
		nav, err := strconv.ParseFloat(r.NAV, 64)
		if err != nil {
			log.Printf("dropping NAV record on %s: invalid NAV %q", on, r.NAV)
			continue
		}
		if nav <= 0 {
			log.Printf("dropping NAV record on %s: non-positive NAV %v", on, nav)
			continue
		}
		history.Append(on, nav)
	}
	if history.Len() == 0 {
		return nil, ErrNoData
	}

	return enrich(&history), nil
}

// enrich computes the derived indicators over a clean history in one pass.
func enrich(history *date.History[float64]) Series {
	s := make(Series, 0, history.Len())
	var sum7, sum30 float64

	for on, nav := range history.Values() {
		e := Enriched{
			Point:      Point{Date: on, NAV: nav},
			Change:     Percent(math.NaN()),
			MA7:        math.NaN(),
			MA30:       math.NaN(),
			Volatility: math.NaN(),
		}
		i := len(s)
		if i > 0 {
			prev := s[i-1].NAV
			e.Change = Percent((nav/prev - 1) * 100)
		}

		sum7 += nav
		if i >= 7 {
			sum7 -= s[i-7].NAV
		}
		sum30 += nav
		if i >= 30 {
			sum30 -= s[i-30].NAV
		}
		if i >= 6 {
			e.MA7 = sum7 / 7
			e.Volatility = stddev7(s[i-6:], nav, sum7/7)
		}
		if i >= 29 {
			e.MA30 = sum30 / 30
		}

		s = append(s, e)
	}
	return s
}

// stddev7 returns the sample standard deviation of the 6 previous NAVs plus
// the current one, around their mean.
func stddev7(window Series, nav, mean float64) float64 {
	sq := (nav - mean) * (nav - mean)
	for _, p := range window {
		sq += (p.NAV - mean) * (p.NAV - mean)
	}
	return math.Sqrt(sq / 6) // sample deviation over 7 points
}
