package collector

import (
	"fmt"
	"time"

	"StockScout/internal/model"
)

// MockFetcher returns canned per-symbol indicator data for development and
// testing. Symbols without an entry behave like a source whose response is
// missing the expected fields.
type MockFetcher struct {
	Data       map[string]MockData
	FetchCount int
}

// MockData is one symbol's canned indicator set.
type MockData struct {
	EMA     float64
	SMA     float64
	RSI     float64
	Volumes []float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMovingAverage(symbol string, kind MovingAverageKind, _ int, _ string) (float64, error) {
	m.FetchCount++
	d, ok := m.Data[symbol]
	if !ok {
		return 0, &FieldError{Symbol: symbol, Field: "Technical Analysis: " + string(kind)}
	}
	if kind == KindEMA {
		return d.EMA, nil
	}
	return d.SMA, nil
}

func (m *MockFetcher) FetchRSI(symbol string, _ int, _ string) (float64, error) {
	m.FetchCount++
	d, ok := m.Data[symbol]
	if !ok {
		return 0, &FieldError{Symbol: symbol, Field: "Technical Analysis: RSI"}
	}
	return d.RSI, nil
}

func (m *MockFetcher) FetchDailyVolumes(symbol string, days int) ([]float64, error) {
	m.FetchCount++
	d, ok := m.Data[symbol]
	if !ok {
		return nil, &FieldError{Symbol: symbol, Field: "Time Series (Daily)"}
	}
	volumes := d.Volumes
	if len(volumes) > days {
		volumes = volumes[len(volumes)-days:]
	}
	return volumes, nil
}

// Collector assembles a per-ticker indicator snapshot: three sequential
// fetches, no overlap, no caching.
type Collector struct {
	Fetcher      Fetcher
	Interval     string
	EMAPeriod    int
	SMAPeriod    int
	RSIPeriod    int
	VolumeWindow int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, interval string, emaPeriod, smaPeriod, rsiPeriod, volumeWindow int) *Collector {
	return &Collector{
		Fetcher:      fetcher,
		Interval:     interval,
		EMAPeriod:    emaPeriod,
		SMAPeriod:    smaPeriod,
		RSIPeriod:    rsiPeriod,
		VolumeWindow: volumeWindow,
	}
}

// Snapshot fetches all indicators for one ticker. Any fetch, field or parse
// failure fails the whole snapshot; the caller decides whether to skip the
// ticker or abort.
func (c *Collector) Snapshot(symbol string) (*model.IndicatorSnapshot, error) {
	ema, err := c.Fetcher.FetchMovingAverage(symbol, KindEMA, c.EMAPeriod, c.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch EMA(%d) for %s: %w", c.EMAPeriod, symbol, err)
	}
	sma, err := c.Fetcher.FetchMovingAverage(symbol, KindSMA, c.SMAPeriod, c.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch SMA(%d) for %s: %w", c.SMAPeriod, symbol, err)
	}
	rsi, err := c.Fetcher.FetchRSI(symbol, c.RSIPeriod, c.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch RSI(%d) for %s: %w", c.RSIPeriod, symbol, err)
	}
	// One extra day so the trailing window can exclude the latest bar.
	volumes, err := c.Fetcher.FetchDailyVolumes(symbol, c.VolumeWindow+1)
	if err != nil {
		return nil, fmt.Errorf("fetch volumes for %s: %w", symbol, err)
	}
	if len(volumes) == 0 {
		return nil, &FieldError{Symbol: symbol, Field: "5. volume"}
	}

	return &model.IndicatorSnapshot{
		Symbol:        symbol,
		EMA:           ema,
		SMA:           sma,
		RSI:           rsi,
		LatestVolume:  volumes[len(volumes)-1],
		RecentVolumes: volumes,
		FetchedAt:     time.Now(),
	}, nil
}
