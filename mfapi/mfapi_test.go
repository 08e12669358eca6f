package mfapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ketandv/sipfolio"
	"github.com/ketandv/sipfolio/date"
)

const listing = `[
	{"schemeCode": 120503, "schemeName": "Axis ELSS Tax Saver Fund - Direct Plan - Growth"},
	{"schemeCode": 118989, "schemeName": "HDFC Index Fund - NIFTY 50 Plan - Direct Plan"},
	{"schemeCode": 119598, "schemeName": "SBI Bluechip Fund - Direct Plan - Growth"}
]`

const details = `{
	"meta": {
		"fund_house": "Axis Mutual Fund",
		"scheme_type": "Open Ended Schemes",
		"scheme_category": "Equity Scheme - ELSS",
		"scheme_code": 120503,
		"scheme_name": "Axis ELSS Tax Saver Fund - Direct Plan - Growth"
	},
	"data": [
		{"date": "03-03-2023", "nav": "103.00000"},
		{"date": "01-02-2023", "nav": "97.00000"},
		{"date": "02-01-2023", "nav": "100.00000"}
	],
	"status": "SUCCESS"
}`

const latest = `{
	"meta": {"scheme_code": 120503},
	"data": [{"date": "03-03-2023", "nav": "103.00000"}],
	"status": "SUCCESS"
}`

// feed serves a canned three-scheme listing and one scheme's history.
func feed(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			fmt.Fprint(w, listing)
		case "/120503":
			fmt.Fprint(w, details)
		case "/120503/latest":
			fmt.Fprint(w, latest)
		case "/404404":
			fmt.Fprint(w, `{"meta": {}, "data": [], "status": "SUCCESS"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestSchemes(t *testing.T) {
	schemes, err := feed(t).Schemes()
	if err != nil {
		t.Fatalf("Schemes() error = %v", err)
	}
	if len(schemes) != 3 {
		t.Fatalf("len(schemes) = %d want 3", len(schemes))
	}
	if schemes[0].Code != 120503 || schemes[0].Name == "" {
		t.Errorf("schemes[0] = %+v", schemes[0])
	}
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		keyword string
		want    int
	}{
		{"direct", 3},
		{"NIFTY", 1},
		{"nifty", 1},
		{"bluechip", 1},
		{"gilt", 0},
	}
	client := feed(t)
	for _, tc := range testCases {
		matches, err := client.Search(tc.keyword)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", tc.keyword, err)
		}
		if len(matches) != tc.want {
			t.Errorf("Search(%q) = %d matches want %d", tc.keyword, len(matches), tc.want)
		}
	}
}

func TestDetails(t *testing.T) {
	d, err := feed(t).Details(120503)
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if d.Meta.FundHouse != "Axis Mutual Fund" {
		t.Errorf("Meta.FundHouse = %q", d.Meta.FundHouse)
	}
	if len(d.Data) != 3 {
		t.Errorf("len(Data) = %d want 3", len(d.Data))
	}
	// Raw feed order is preserved: newest first, as published.
	if d.Data[0].Date != "03-03-2023" {
		t.Errorf("Data[0].Date = %q want the newest record first", d.Data[0].Date)
	}
}

func TestDetailsEmptyHistory(t *testing.T) {
	_, err := feed(t).Details(404404)
	if !errors.Is(err, sipfolio.ErrNoData) {
		t.Errorf("Details(empty scheme) error = %v, want ErrNoData", err)
	}
}

func TestHistory(t *testing.T) {
	s, err := feed(t).History(120503, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(s) != 3 {
		t.Fatalf("len(series) = %d want 3", len(s))
	}
	// The prepared series is chronological whatever the feed order was.
	if s.First().NAV != 100.0 || s.Last().NAV != 103.0 {
		t.Errorf("series spans %v..%v want 100..103", s.First().NAV, s.Last().NAV)
	}
}

func TestHistoryTruncation(t *testing.T) {
	s, err := feed(t).History(120503, 2)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	// last=2 keeps the two newest raw records only.
	if len(s) != 2 {
		t.Fatalf("len(series) = %d want 2", len(s))
	}
	if s.First().NAV != 97.0 {
		t.Errorf("series starts at %v want 97", s.First().NAV)
	}
}

func TestLatest(t *testing.T) {
	p, err := feed(t).Latest(120503)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if want := date.New(2023, 3, 3); p.Date != want {
		t.Errorf("Latest().Date = %v want %v", p.Date, want)
	}
	if p.NAV != 103.0 {
		t.Errorf("Latest().NAV = %v want 103", p.NAV)
	}
}

func TestHistoryHTTPError(t *testing.T) {
	if _, err := feed(t).History(999999, 0); err == nil {
		t.Error("History(unknown scheme) expected an error")
	}
}
