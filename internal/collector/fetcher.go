package collector

// MovingAverageKind selects which moving-average function a fetch targets.
type MovingAverageKind string

const (
	KindSMA MovingAverageKind = "SMA"
	KindEMA MovingAverageKind = "EMA"
)

// Fetcher defines the interface for fetching indicator data. Each call issues
// one remote query; implementations perform no caching and no retries.
type Fetcher interface {
	FetchMovingAverage(symbol string, kind MovingAverageKind, period int, interval string) (float64, error)
	FetchRSI(symbol string, period int, interval string) (float64, error)
	FetchDailyVolumes(symbol string, days int) ([]float64, error)
	Name() string
}
