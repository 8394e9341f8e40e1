package collector

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// AlphaVantageFetcher implements Fetcher against the Alpha Vantage query API.
type AlphaVantageFetcher struct {
	client *resty.Client
	apiKey string
}

// NewAlphaVantageFetcher creates a fetcher with optional proxy support.
// The API key is injected here, never embedded in source.
func NewAlphaVantageFetcher(baseURL, apiKey, proxyURL string) *AlphaVantageFetcher {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		c.SetProxy(proxyURL)
	}
	return &AlphaVantageFetcher{client: c, apiKey: apiKey}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

func (f *AlphaVantageFetcher) FetchMovingAverage(symbol string, kind MovingAverageKind, period int, interval string) (float64, error) {
	return f.fetchTechnical(symbol, string(kind), period, interval)
}

func (f *AlphaVantageFetcher) FetchRSI(symbol string, period int, interval string) (float64, error) {
	return f.fetchTechnical(symbol, "RSI", period, interval)
}

// fetchTechnical issues one technical-indicator query and extracts the most
// recent dated value from the "Technical Analysis: X" section.
func (f *AlphaVantageFetcher) fetchTechnical(symbol, function string, period int, interval string) (float64, error) {
	body, err := f.get(map[string]string{
		"function":    function,
		"symbol":      symbol,
		"interval":    interval,
		"time_period": strconv.Itoa(period),
		"series_type": "close",
	})
	if err != nil {
		return 0, fmt.Errorf("fetch %s(%d) for %s: %w", function, period, symbol, err)
	}

	series, err := extractSection(symbol, "Technical Analysis: "+function, body)
	if err != nil {
		return 0, err
	}
	dates := sortedDatesDesc(series)
	if len(dates) == 0 {
		return 0, &FieldError{Symbol: symbol, Field: "Technical Analysis: " + function}
	}
	value, ok := series[dates[0]][function]
	if !ok {
		return 0, &FieldError{Symbol: symbol, Field: function}
	}
	return ParseDecimal(function, value)
}

// FetchDailyVolumes extracts the trailing `days` daily volumes from the
// TIME_SERIES_DAILY endpoint, returned oldest first.
func (f *AlphaVantageFetcher) FetchDailyVolumes(symbol string, days int) ([]float64, error) {
	body, err := f.get(map[string]string{
		"function":   "TIME_SERIES_DAILY",
		"symbol":     symbol,
		"outputsize": "compact",
	})
	if err != nil {
		return nil, fmt.Errorf("fetch daily volumes for %s: %w", symbol, err)
	}

	series, err := extractSection(symbol, "Time Series (Daily)", body)
	if err != nil {
		return nil, err
	}
	dates := sortedDatesDesc(series)
	if len(dates) == 0 {
		return nil, &FieldError{Symbol: symbol, Field: "Time Series (Daily)"}
	}
	if len(dates) > days {
		dates = dates[:days]
	}

	// dates run newest-first; fill the slice back to front for oldest-first order
	volumes := make([]float64, len(dates))
	for i, d := range dates {
		raw, ok := series[d]["5. volume"]
		if !ok {
			return nil, &FieldError{Symbol: symbol, Field: "5. volume"}
		}
		v, err := ParseDecimal("5. volume", raw)
		if err != nil {
			return nil, err
		}
		volumes[len(volumes)-1-i] = v
	}
	return volumes, nil
}

func (f *AlphaVantageFetcher) get(params map[string]string) ([]byte, error) {
	params["apikey"] = f.apiKey
	resp, err := f.client.R().SetQueryParams(params).Get("/query")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

// extractSection decodes one dated section of an Alpha Vantage payload,
// surfacing the API's own error fields as typed errors first.
func extractSection(symbol, section string, body []byte) (map[string]map[string]string, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	for _, key := range []string{"Error Message", "Note", "Information"} {
		if raw, ok := payload[key]; ok {
			var msg string
			if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
				return nil, &APIError{Source: "alphavantage", Message: msg}
			}
		}
	}

	raw, ok := payload[section]
	if !ok {
		return nil, &FieldError{Symbol: symbol, Field: section}
	}
	var series map[string]map[string]string
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil, fmt.Errorf("decode section %q: %w", section, err)
	}
	return series, nil
}

// sortedDatesDesc returns the section's date keys newest first. Keys are
// YYYY-MM-DD, so lexical order is chronological order.
func sortedDatesDesc(series map[string]map[string]string) []string {
	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
