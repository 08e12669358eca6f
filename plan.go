package sipfolio

// Plan is the contribution recommendation for the current month, derived
// from the most recent NAV movements.
type Plan struct {
	Latest      Point
	Previous    Point
	Change      Percent // change between the two latest points
	Average     float64 // mean NAV over the analyzed series
	Base        Money
	Multiplier  float64
	Recommended Money
	Units       Quantity // units the recommended amount buys at the latest NAV
	Message     string
}

// MonthlyPlan recommends this month's contribution from the series' two
// latest points. Callers conventionally feed it a 30-record series, but the
// decision rests on the final two points only; the rest of the series feeds
// the reported mean.
//
// A series with fewer than two points cannot price a movement: ErrNoData.
func MonthlyPlan(s Series, base Money) (*Plan, error) {
	if len(s) < 2 {
		return nil, ErrNoData
	}

	latest := s[len(s)-1]
	previous := s[len(s)-2]

	var sum float64
	for _, e := range s {
		sum += e.NAV
	}

	multiplier := planMultiplier(latest.NAV, previous.NAV)
	recommended := base.MulFloat(multiplier)

	return &Plan{
		Latest:      latest.Point,
		Previous:    previous.Point,
		Change:      latest.Change,
		Average:     sum / float64(len(s)),
		Base:        base,
		Multiplier:  multiplier,
		Recommended: recommended,
		Units:       recommended.DivPrice(M(latest.NAV, base.Currency())),
		Message:     planMessage(multiplier),
	}, nil
}

// planMultiplier is the current-month ladder. It reacts to the latest
// NAV-to-previous ratio, with thresholds of its own, not the backtest's
// Multiplier ladder.
func planMultiplier(nav, previousNAV float64) float64 {
	switch {
	case nav < previousNAV*0.95:
		return 1.5
	case nav < previousNAV*0.98:
		return 1.25
	case nav > previousNAV*1.02:
		return 0.85
	default:
		return 1.0
	}
}

func planMessage(multiplier float64) string {
	switch {
	case multiplier >= 1.5:
		return "Market is down significantly - Great buying opportunity!"
	case multiplier >= 1.25:
		return "Market correction - Good time to invest more"
	case multiplier <= 0.85:
		return "Market is high - Reduce investment amount"
	default:
		return "Market is stable - Continue regular SIP"
	}
}
