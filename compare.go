package sipfolio

// Comparison pairs the fixed and enhanced simulations of the same series with
// their rolling returns and the enhanced plan's outperformance.
type Comparison struct {
	Fixed            *Result
	Enhanced         *Result
	FixedRolling     []RollingReturn
	EnhancedRolling  []RollingReturn
	Window           int
	Outperformance   Money   // enhanced absolute return minus fixed absolute return
	OutperformancePc Percent // enhanced return percent minus fixed return percent
}

// Compare backtests both strategies over the identical series and base
// amount. An empty series propagates ErrNoData untouched; no one-sided
// comparison is ever produced.
func Compare(s Series, base Money, window int) (*Comparison, error) {
	if window <= 0 {
		window = DefaultWindow
	}

	fixed, err := Simulate(s, base, Fixed)
	if err != nil {
		return nil, err
	}
	enhanced, err := Simulate(s, base, Enhanced)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Fixed:            fixed,
		Enhanced:         enhanced,
		FixedRolling:     RollingReturns(fixed.Contributions, window),
		EnhancedRolling:  RollingReturns(enhanced.Contributions, window),
		Window:           window,
		Outperformance:   enhanced.AbsoluteReturn.Sub(fixed.AbsoluteReturn),
		OutperformancePc: enhanced.ReturnPercent - fixed.ReturnPercent,
	}, nil
}
