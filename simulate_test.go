package sipfolio

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// The three-month scenario used across simulator tests:
// Jan 1 at 100, Feb 1 at 97 (-3%), Mar 1 at 103 (+6.19%).
func threeMonths(t *testing.T) Series {
	t.Helper()
	return mustSeries(t,
		rec("01-01-2023", "100.0"),
		rec("01-02-2023", "97.0"),
		rec("01-03-2023", "103.0"),
	)
}

func TestSimulateFixed(t *testing.T) {
	result, err := Simulate(threeMonths(t), Rs(1000), Fixed)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if len(result.Contributions) != 3 {
		t.Fatalf("len(contributions) = %d want 3", len(result.Contributions))
	}
	if got, want := result.TotalInvested, Rs(3000); !got.Equal(want) {
		t.Errorf("TotalInvested = %v want %v", got, want)
	}

	// 1000/100 + 1000/97 + 1000/103 units.
	wantUnits := Rs(1000).DivPrice(Rs(100)).
		Add(Rs(1000).DivPrice(Rs(97))).
		Add(Rs(1000).DivPrice(Rs(103)))
	if !result.TotalUnits.Equal(wantUnits) {
		t.Errorf("TotalUnits = %v want %v", result.TotalUnits, wantUnits)
	}
	if got := result.TotalUnits.AsFloat(); math.Abs(got-30.018) > 0.001 {
		t.Errorf("TotalUnits = %v want about 30.018", got)
	}
	if got := result.FinalValue.AsFloat(); math.Abs(got-3091.85) > 0.01 {
		t.Errorf("FinalValue = %v want about 3091.85", got)
	}
	if result.FinalNAV != 103.0 {
		t.Errorf("FinalNAV = %v want 103 (the series' last observation)", result.FinalNAV)
	}
}

func TestSimulateEnhanced(t *testing.T) {
	result, err := Simulate(threeMonths(t), Rs(1000), Enhanced)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	// Jan has no previous point: multiplier 1. Feb dropped 3%: multiplier 2.
	// Mar rose 6.19%, above the 2% ratio ceiling: multiplier 0.85.
	wantAmounts := []Money{Rs(1000), Rs(2000), Rs(850)}
	for i, c := range result.Contributions {
		if !c.Amount.Equal(wantAmounts[i]) {
			t.Errorf("contribution[%d].Amount = %v want %v", i, c.Amount, wantAmounts[i])
		}
	}
	if got, want := result.TotalInvested, Rs(3850); !got.Equal(want) {
		t.Errorf("TotalInvested = %v want %v", got, want)
	}
}

func TestSimulateOnePerMonth(t *testing.T) {
	// Several points in the same month: only the earliest one buys.
	s := mustSeries(t,
		rec("05-01-2023", "100.0"),
		rec("12-01-2023", "90.0"),
		rec("25-01-2023", "80.0"),
		rec("03-02-2023", "85.0"),
	)
	result, err := Simulate(s, Rs(500), Fixed)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if len(result.Contributions) != 2 {
		t.Fatalf("len(contributions) = %d want 2 (one per calendar month)", len(result.Contributions))
	}
	if got := result.Contributions[0]; got.Date.Day() != 5 || got.NAV != 100.0 {
		t.Errorf("first contribution at %v NAV %v, want the month's earliest point Jan 5 at 100",
			got.Date, got.NAV)
	}
	// Final value still uses the series' last NAV (85), not the last purchase.
	if result.FinalNAV != 85.0 {
		t.Errorf("FinalNAV = %v want 85", result.FinalNAV)
	}
}

func TestSimulateSkipsEmptyMonths(t *testing.T) {
	// January and April only: February and March are skipped, not zero-filled.
	s := mustSeries(t,
		rec("01-01-2023", "100.0"),
		rec("01-04-2023", "110.0"),
	)
	result, err := Simulate(s, Rs(1000), Fixed)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if len(result.Contributions) != 2 {
		t.Errorf("len(contributions) = %d want 2", len(result.Contributions))
	}
}

func TestSimulateAccumulationInvariant(t *testing.T) {
	navs := []string{"100.0", "95.5", "102.3", "99.9", "111.1", "108.0"}
	s, err := NewSeries(monthlyFeed(24, navs...), 0)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}

	for _, strategy := range []Strategy{Fixed, Enhanced} {
		result, err := Simulate(s, Rs(10000), strategy)
		if err != nil {
			t.Fatalf("Simulate(%v) error = %v", strategy, err)
		}
		sum := Q(0)
		invested := M(0, "INR")
		for _, c := range result.Contributions {
			sum = sum.Add(c.Units)
			invested = invested.Add(c.Amount)
		}
		if !result.TotalUnits.Equal(sum) {
			t.Errorf("%v: TotalUnits = %v, sum of units = %v, must be exactly equal",
				strategy, result.TotalUnits, sum)
		}
		if !result.TotalInvested.Equal(invested) {
			t.Errorf("%v: TotalInvested = %v, sum of amounts = %v, must be exactly equal",
				strategy, result.TotalInvested, invested)
		}
		last := result.Contributions[len(result.Contributions)-1]
		if !last.TotalUnits.Equal(result.TotalUnits) {
			t.Errorf("%v: last running total %v != result total %v", strategy, last.TotalUnits, result.TotalUnits)
		}
	}
}

func TestSimulateDeterminism(t *testing.T) {
	navs := []string{"100.0", "97.2", "103.5", "101.0"}
	s, err := NewSeries(monthlyFeed(24, navs...), 0)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}

	a, err := Simulate(s, Rs(10000), Enhanced)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	b, err := Simulate(s, Rs(10000), Enhanced)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two runs over the same series differ:\n%+v\n%+v", a, b)
	}
}

func TestSimulateZeroElapsedCAGR(t *testing.T) {
	s := mustSeries(t, rec("01-01-2023", "100.0"))
	result, err := Simulate(s, Rs(1000), Fixed)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if result.CAGR != 0 {
		t.Errorf("CAGR = %v want 0 when first and last date coincide", result.CAGR)
	}
}

func TestSimulateZeroBase(t *testing.T) {
	// Nothing invested: return percent must fall back to 0, not divide by zero.
	result, err := Simulate(threeMonths(t), Rs(0), Fixed)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if result.ReturnPercent != 0 {
		t.Errorf("ReturnPercent = %v want 0 when nothing was invested", result.ReturnPercent)
	}
	if result.CAGR != 0 {
		t.Errorf("CAGR = %v want 0 when nothing was invested", result.CAGR)
	}
}

func TestSimulateEmptySeries(t *testing.T) {
	_, err := Simulate(nil, Rs(1000), Fixed)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Simulate(empty) error = %v, want ErrNoData", err)
	}
}

func TestParseStrategy(t *testing.T) {
	testCases := []struct {
		in        string
		want      Strategy
		expectErr bool
	}{
		{"fixed", Fixed, false},
		{"regular", Fixed, false},
		{"Enhanced", Enhanced, false},
		{"variable", Enhanced, false},
		{" enhanced ", Enhanced, false},
		{"martingale", Fixed, true},
		{"", Fixed, true},
	}
	for _, tc := range testCases {
		got, err := ParseStrategy(tc.in)
		if hasErr := err != nil; hasErr != tc.expectErr {
			t.Errorf("ParseStrategy(%q) error = %v, want error: %v", tc.in, err, tc.expectErr)
			continue
		}
		if !tc.expectErr && got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v want %v", tc.in, got, tc.want)
		}
	}
}
