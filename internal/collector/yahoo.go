package collector

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"StockScout/internal/calculator"
	"StockScout/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
// Yahoo serves raw bars rather than computed indicators, so the moving
// averages and RSI are computed locally from daily closes. Used as the
// fallback data source when no Alpha Vantage key is configured.
type YahooFetcher struct {
	client *resty.Client
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	c := resty.New().
		SetBaseURL("https://query1.finance.yahoo.com/v8/finance/chart").
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Mozilla/5.0")
	if proxyURL != "" {
		c.SetProxy(proxyURL)
	}
	return &YahooFetcher{client: c}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) FetchMovingAverage(symbol string, kind MovingAverageKind, period int, _ string) (float64, error) {
	// Extra history so the EMA smoothing has samples beyond its seed window.
	bars, err := f.fetchDailyBars(symbol, period*2)
	if err != nil {
		return 0, err
	}
	closes := calculator.ExtractCloses(bars)
	if kind == KindEMA {
		return calculator.CalculateEMA(closes, period)
	}
	return calculator.CalculateSMA(closes, period)
}

func (f *YahooFetcher) FetchRSI(symbol string, period int, _ string) (float64, error) {
	bars, err := f.fetchDailyBars(symbol, period*3)
	if err != nil {
		return 0, err
	}
	return calculator.CalculateRSI(calculator.ExtractCloses(bars), period)
}

func (f *YahooFetcher) FetchDailyVolumes(symbol string, days int) ([]float64, error) {
	bars, err := f.fetchDailyBars(symbol, days)
	if err != nil {
		return nil, err
	}
	return calculator.ExtractVolumes(bars), nil
}

func (f *YahooFetcher) fetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	// Yahoo range buckets; max "2y" covers a 200-day SMA with headroom.
	rng := "2y"
	if days <= 30 {
		rng = "1mo"
	} else if days <= 90 {
		rng = "3mo"
	} else if days <= 180 {
		rng = "6mo"
	} else if days <= 365 {
		rng = "1y"
	}

	var chart yahooChart
	resp, err := f.client.R().
		SetQueryParams(map[string]string{"interval": "1d", "range": rng}).
		SetResult(&chart).
		Get("/" + symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("yahoo fetch %s: status %d, body: %s", symbol, resp.StatusCode(), resp.String())
	}
	if chart.Chart.Error != nil {
		return nil, &APIError{Source: "yahoo", Message: chart.Chart.Error.Description}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, &FieldError{Symbol: symbol, Field: "chart.result"}
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, &FieldError{Symbol: symbol, Field: "chart.result.indicators.quote"}
	}
	quote := result.Indicators.Quote[0]

	// Partial or halted sessions can leave the quote arrays shorter than the
	// timestamp list; only index what every array actually has.
	n := len(result.Timestamp)
	for _, arr := range [][]interface{}{quote.Open, quote.High, quote.Low, quote.Close, quote.Volume} {
		if len(arr) < n {
			n = len(arr)
		}
	}
	if n == 0 {
		return nil, &FieldError{Symbol: symbol, Field: "chart.result.indicators.quote"}
	}

	bars := make([]model.OHLCV, 0, n)
	for i, ts := range result.Timestamp[:n] {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
