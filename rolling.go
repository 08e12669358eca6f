package sipfolio

import "github.com/ketandv/sipfolio/date"

// DefaultWindow is the usual trailing window for rolling returns, in months.
const DefaultWindow = 12

// RollingReturn is the performance of the trailing window of contributions
// ending just before one contribution index, valued at the window's last
// purchase NAV.
type RollingReturn struct {
	Date     date.Date
	Invested Money
	Value    Money
	Return   Percent
}

// RollingReturns computes the sliding trailing-window returns over a
// contribution ledger: for each index i >= window, the contributions
// [i-window, i) are valued at the NAV of contribution i-1. Consecutive
// windows overlap. A ledger shorter than the window yields nothing.
// window <= 0 means DefaultWindow.
func RollingReturns(contribs []Contribution, window int) []RollingReturn {
	if window <= 0 {
		window = DefaultWindow
	}

	var result []RollingReturn
	for i := window; i < len(contribs); i++ {
		invested := M(0, "")
		units := Q(0)
		for _, c := range contribs[i-window : i] {
			invested = invested.Add(c.Amount)
			units = units.Add(c.Units)
		}

		at := contribs[i-1]
		value := M(at.NAV, invested.Currency()).Mul(units)

		var ret Percent
		if !invested.IsZero() {
			ret = Percent(value.Sub(invested).AsFloat() / invested.AsFloat() * 100)
		}

		result = append(result, RollingReturn{
			Date:     at.Date,
			Invested: invested,
			Value:    value,
			Return:   ret,
		})
	}
	return result
}

// AverageReturn is the mean of the rolling returns, 0 when there are none.
func AverageReturn(rolls []RollingReturn) Percent {
	if len(rolls) == 0 {
		return 0
	}
	var sum Percent
	for _, r := range rolls {
		sum += r.Return
	}
	return sum / Percent(len(rolls))
}
