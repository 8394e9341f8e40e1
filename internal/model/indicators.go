package model

import "time"

// IndicatorSnapshot bundles the per-ticker indicator values consumed by the
// rule chain. Snapshots are fetched fresh for every evaluation and never cached.
type IndicatorSnapshot struct {
	Symbol        string
	EMA           float64
	SMA           float64
	RSI           float64
	LatestVolume  float64
	RecentVolumes []float64 // trailing daily volumes, oldest first, latest last
	FetchedAt     time.Time
}

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
