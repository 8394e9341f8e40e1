package recorder

import "StockScout/internal/model"

// ScanRecord summarizes one full ticker-list pass.
type ScanRecord struct {
	Outcome        model.Action
	Symbol         string // recommended ticker, empty for no-opportunity scans
	TickersScanned int
}

// CheckRecord captures one ticker's evaluation inside a scan.
type CheckRecord struct {
	Symbol       string
	EMA          float64
	SMA          float64
	RSI          float64
	LatestVolume float64
	RSIPass      bool
	CrossPass    bool
	VolumePass   bool
	Qualified    bool
	Note         string
}

// Recorder persists scan history for later analysis. The decision path never
// reads it back; recording is purely observational.
type Recorder interface {
	RecordScan(rec *ScanRecord) error
	RecordCheck(rec *CheckRecord) error
	Close() error
}
