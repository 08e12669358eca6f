package sipfolio

import (
	"math"
	"sort"

	"github.com/ketandv/sipfolio/date"
)

// Opportunity flags a past date whose NAV drop was deep enough to qualify as
// a buying opportunity. Score is the drop magnitude: a -2.5% day scores 2.5.
type Opportunity struct {
	Date           date.Date
	NAV            float64
	Change         Percent
	MA30           float64 // NaN when the 30-point window was not filled yet
	Score          float64
	Recommendation string
}

// Opportunities returns the points of the series whose change is at or below
// threshold (a negative percentage: -2 means "a drop of 2% or more"), most
// attractive first. Equal scores keep their chronological order.
func Opportunities(s Series, threshold Percent) []Opportunity {
	var result []Opportunity
	for _, e := range s {
		if !e.HasChange() || e.Change > threshold {
			continue
		}
		score := math.Max(0, -float64(e.Change))
		result = append(result, Opportunity{
			Date:           e.Date,
			NAV:            e.NAV,
			Change:         e.Change,
			MA30:           e.MA30,
			Score:          score,
			Recommendation: Recommendation(score),
		})
	}
	// The series is chronological, so a stable sort keeps ties date-ascending.
	sort.SliceStable(result, func(i, j int) bool { return result[i].Score > result[j].Score })
	return result
}

// Recommendation translates an opportunity score into investment advice.
func Recommendation(score float64) string {
	switch {
	case score >= 3.0:
		return "Excellent - Invest 150-200% of regular SIP"
	case score >= 2.0:
		return "Very Good - Invest 125-150% of regular SIP"
	case score >= 1.5:
		return "Good - Invest 110-125% of regular SIP"
	default:
		return "Moderate - Invest regular SIP amount"
	}
}

// Multiplier scales the enhanced plan's monthly contribution from the NAV
// movement at the purchase point. The ladder is ordered: a -3.5% day yields
// 2.0 and never falls through to the ratio rules below.
//
// These thresholds govern how much to invest, not how Opportunities ranks
// historical dips.
func Multiplier(nav, previousNAV float64, change Percent) float64 {
	switch {
	case change <= -3.0:
		return 2.0
	case change <= -2.0:
		return 1.5
	case change <= -1.0:
		return 1.25
	case nav < previousNAV*0.98:
		return 1.15
	case nav > previousNAV*1.02:
		return 0.85
	default:
		return 1.0
	}
}
