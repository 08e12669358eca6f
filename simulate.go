package sipfolio

import (
	"fmt"
	"math"
	"strings"

	"github.com/ketandv/sipfolio/date"
)

// Strategy selects how the monthly contribution amount is computed.
type Strategy string

const (
	// Fixed invests the base amount every month, whatever the NAV does.
	Fixed Strategy = "fixed"
	// Enhanced scales the base amount with the Multiplier ladder, investing
	// more after drops and slightly less after run-ups.
	Enhanced Strategy = "enhanced"
)

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "regular":
		return Fixed, nil
	case "enhanced", "variable":
		return Enhanced, nil
	default:
		return Fixed, fmt.Errorf("unknown strategy %q (want fixed or enhanced)", s)
	}
}

// Contribution is one simulated monthly purchase. Totals are the running
// sums including this purchase.
type Contribution struct {
	Date          date.Date
	NAV           float64
	Change        Percent // NAV change at purchase, NaN on the series' first point
	Amount        Money
	Units         Quantity
	TotalUnits    Quantity
	TotalInvested Money
}

// Result summarizes one simulated SIP run. It is owned by that run: two runs
// over the same series produce independent, identical Results.
type Result struct {
	Strategy       Strategy
	TotalInvested  Money
	TotalUnits     Quantity
	FinalNAV       float64 // the series' last observed NAV, not the last purchase price
	FinalValue     Money
	AbsoluteReturn Money
	ReturnPercent  Percent
	CAGR           Percent
	Contributions  []Contribution
}

// Simulate replays a monthly SIP over the series: one contribution per
// calendar month present in the series, at the month's earliest point.
// Months without an observed point are skipped, not zero-filled.
//
// The walk tracks the current month key in a single pass rather than
// materializing per-month groups.
func Simulate(s Series, base Money, strategy Strategy) (*Result, error) {
	if len(s) == 0 {
		return nil, ErrNoData
	}

	var contribs []Contribution
	totalInvested := M(0, base.Currency())
	totalUnits := Q(0)
	var month date.Date // start-of-month key of the last contribution

	for _, e := range s {
		key := e.Date.StartOfMonth()
		if !month.IsZero() && key == month {
			continue // already invested this month
		}
		month = key

		amount := base
		if strategy == Enhanced {
			amount = base.MulFloat(enhancedMultiplier(e))
		}
		units := amount.DivPrice(M(e.NAV, base.Currency()))

		totalInvested = totalInvested.Add(amount)
		totalUnits = totalUnits.Add(units)

		contribs = append(contribs, Contribution{
			Date:          e.Date,
			NAV:           e.NAV,
			Change:        e.Change,
			Amount:        amount,
			Units:         units,
			TotalUnits:    totalUnits,
			TotalInvested: totalInvested,
		})
	}

	finalNAV := s.Last().NAV
	finalValue := M(finalNAV, base.Currency()).Mul(totalUnits)
	absolute := finalValue.Sub(totalInvested)

	var returnPercent Percent
	if !totalInvested.IsZero() {
		returnPercent = Percent(absolute.AsFloat() / totalInvested.AsFloat() * 100)
	}

	return &Result{
		Strategy:       strategy,
		TotalInvested:  totalInvested,
		TotalUnits:     totalUnits,
		FinalNAV:       finalNAV,
		FinalValue:     finalValue,
		AbsoluteReturn: absolute,
		ReturnPercent:  returnPercent,
		CAGR:           cagr(totalInvested, finalValue, s.First().Date, s.Last().Date),
		Contributions:  contribs,
	}, nil
}

// enhancedMultiplier applies the Multiplier ladder at a purchase point,
// reconstructing the previous NAV from the recorded change. Without a
// previous point there is nothing to react to: the multiplier is 1.
func enhancedMultiplier(e Enriched) float64 {
	if !e.HasChange() {
		return 1.0
	}
	previous := e.NAV / (1 + float64(e.Change)/100)
	return Multiplier(e.NAV, previous, e.Change)
}

// cagr computes the compound annual growth rate over the elapsed span of the
// series. Zero elapsed time or nothing invested yields 0 rather than an
// arithmetic fault.
func cagr(invested, value Money, first, last date.Date) Percent {
	years := float64(last.Sub(first)) / 365.25
	if years <= 0 || invested.IsZero() {
		return 0
	}
	growth := value.AsFloat() / invested.AsFloat()
	return Percent((math.Pow(growth, 1/years) - 1) * 100)
}
