// Package mfapi is a client for the free mutual fund NAV feed at
// https://api.mfapi.in. The feed publishes one NAV per scheme per business
// day; responses are cached on disk until the end of the day.
package mfapi

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/ketandv/sipfolio"
	"github.com/ketandv/sipfolio/date"
)

const mfapi_base_url = "MFAPI_BASE_URL"

var baseURLFlag = flag.String("mfapi-url", "", "Base URL of the mutual fund NAV feed.\n If missing it will read the environment variable \""+mfapi_base_url+"\", and default to https://api.mfapi.in/mf")

// DefaultBaseURL is the public feed endpoint.
const DefaultBaseURL = "https://api.mfapi.in/mf"

func baseURL() string {
	// If the flag is not set, try the environment variable, then the default.
	if *baseURLFlag == "" {
		*baseURLFlag = os.Getenv(mfapi_base_url)
	}
	if *baseURLFlag == "" {
		*baseURLFlag = DefaultBaseURL
	}
	return *baseURLFlag
}

// Client fetches scheme listings and NAV histories from the feed.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client against the configured base URL, with the daily disk
// cache in front of the transport.
func New() *Client {
	return &Client{BaseURL: baseURL(), HTTP: daily()}
}

// Scheme is one entry in the feed's scheme listing.
type Scheme struct {
	Code int    `json:"schemeCode"`
	Name string `json:"schemeName"`
}

// Meta describes a scheme in the details response.
type Meta struct {
	FundHouse      string `json:"fund_house"`
	SchemeType     string `json:"scheme_type"`
	SchemeCategory string `json:"scheme_category"`
	SchemeCode     int    `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
}

// Details is the full per-scheme response: metadata plus the raw NAV
// history, newest first.
type Details struct {
	Meta   Meta              `json:"meta"`
	Data   []sipfolio.Record `json:"data"`
	Status string            `json:"status"`
}

// Schemes downloads the full scheme listing. The listing is large (tens of
// thousands of entries) but cached for the day after the first call.
func (c *Client) Schemes() ([]Scheme, error) {
	var schemes []Scheme
	if err := jwget(c.HTTP, c.BaseURL, &schemes); err != nil {
		return nil, fmt.Errorf("cannot list schemes: %w", err)
	}
	return schemes, nil
}

// Search filters the scheme listing by case-insensitive substring match on
// the scheme name.
func (c *Client) Search(keyword string) ([]Scheme, error) {
	schemes, err := c.Schemes()
	if err != nil {
		return nil, err
	}
	keyword = strings.ToLower(keyword)
	var matches []Scheme
	for _, s := range schemes {
		if strings.Contains(strings.ToLower(s.Name), keyword) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

// Details fetches a scheme's metadata and raw NAV history.
func (c *Client) Details(code int) (*Details, error) {
	var details Details
	addr := fmt.Sprintf("%s/%d", c.BaseURL, code)
	if err := jwget(c.HTTP, addr, &details); err != nil {
		return nil, fmt.Errorf("cannot fetch scheme %d: %w", code, err)
	}
	if len(details.Data) == 0 {
		return nil, fmt.Errorf("scheme %d: %w", code, sipfolio.ErrNoData)
	}
	return &details, nil
}

// History fetches a scheme's history and prepares it for analysis, keeping
// the last most recent raw records (last <= 0 keeps everything).
func (c *Client) History(code, last int) (sipfolio.Series, error) {
	details, err := c.Details(code)
	if err != nil {
		return nil, err
	}
	s, err := sipfolio.NewSeries(details.Data, last)
	if err != nil {
		return nil, fmt.Errorf("scheme %d: %w", code, err)
	}
	return s, nil
}

/*
	{
	    "meta": {
	        "fund_house": "Axis Mutual Fund",
	        "scheme_code": 120503,
	        "scheme_name": "Axis ELSS Tax Saver Fund - Direct Plan - Growth"
	    },
	    "data": [
	        {
	            "date": "29-08-2025",
	            "nav": "104.57810"
	        }
	    ],
	    "status": "SUCCESS"
	}
*/

// Latest fetches the newest published NAV of a scheme from the feed's
// latest endpoint.
func (c *Client) Latest(code int) (sipfolio.Point, error) {
	addr := fmt.Sprintf("%s/%d/latest", c.BaseURL, code)
	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return sipfolio.Point{}, fmt.Errorf("cannot fetch latest NAV of scheme %d: %w", code, err)
	}

	nav, err := c.latestField(jobj, "$.data[0].nav", code)
	if err != nil {
		return sipfolio.Point{}, err
	}
	day, err := c.latestField(jobj, "$.data[0].date", code)
	if err != nil {
		return sipfolio.Point{}, err
	}

	value, err := strconv.ParseFloat(nav, 64)
	if err != nil {
		return sipfolio.Point{}, fmt.Errorf("scheme %d: invalid nav %q: %w", code, nav, err)
	}
	on, err := date.ParseFeed(day)
	if err != nil {
		return sipfolio.Point{}, fmt.Errorf("scheme %d: invalid date %q: %w", code, day, err)
	}
	return sipfolio.Point{Date: on, NAV: value}, nil
}

// latestField extracts one string field from the latest-NAV payload.
func (c *Client) latestField(jobj any, path string, code int) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("scheme %d: %w: %q %v", code, sipfolio.ErrNoData, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("scheme %d: %q is not a string: %v", code, path, jval)
	}
	return s, nil
}
