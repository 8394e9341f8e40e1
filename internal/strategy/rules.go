package strategy

import (
	"fmt"

	"StockScout/internal/calculator"
	"StockScout/internal/model"
)

// Params carries the externally supplied rule thresholds. Observed deployments
// disagree on the exact cutoffs (RSI ceiling 40/42/60, SMA period 200 or 50),
// so nothing here is hardcoded.
type Params struct {
	RSIMax                 float64
	VolumeWindow           int
	IncludeLatestInAverage bool
}

// checkRSI passes when the RSI sits at or below the configured ceiling.
func checkRSI(snap *model.IndicatorSnapshot, p Params) model.CheckResult {
	return model.CheckResult{
		Name:       "RSI",
		Passed:     snap.RSI <= p.RSIMax,
		Commentary: fmt.Sprintf("RSI=%.2f, max=%.2f", snap.RSI, p.RSIMax),
	}
}

// checkGoldenCross passes when the short EMA sits at or above the long SMA.
func checkGoldenCross(snap *model.IndicatorSnapshot) model.CheckResult {
	return model.CheckResult{
		Name:       "GoldenCross",
		Passed:     snap.EMA >= snap.SMA,
		Commentary: fmt.Sprintf("EMA=%.2f, SMA=%.2f", snap.EMA, snap.SMA),
	}
}

// checkVolumeSpike passes when the latest daily volume exceeds the mean of
// the trailing window. The window excludes the latest day unless configured
// otherwise. An empty window fails the check.
func checkVolumeSpike(snap *model.IndicatorSnapshot, p Params) model.CheckResult {
	window := trailingWindow(snap.RecentVolumes, p.VolumeWindow, p.IncludeLatestInAverage)
	avg, err := calculator.Mean(window)
	if err != nil {
		return model.CheckResult{
			Name:       "VolumeSpike",
			Passed:     false,
			Commentary: "no trailing volume data",
		}
	}
	return model.CheckResult{
		Name:       "VolumeSpike",
		Passed:     snap.LatestVolume > avg,
		Commentary: fmt.Sprintf("volume=%.0f, avg(%d)=%.0f", snap.LatestVolume, len(window), avg),
	}
}

// trailingWindow slices the most recent `window` samples, optionally keeping
// the latest day inside the average.
func trailingWindow(volumes []float64, window int, includeLatest bool) []float64 {
	if len(volumes) == 0 {
		return nil
	}
	end := len(volumes)
	if !includeLatest {
		end--
	}
	start := end - window
	if start < 0 {
		start = 0
	}
	return volumes[start:end]
}
