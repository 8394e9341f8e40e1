package calculator

import (
	"errors"

	"StockScout/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the
// most recent `period` samples.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateEMA computes the exponential moving average, seeded with the SMA of
// the first `period` samples and smoothed over the remainder.
func CalculateEMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for EMA calculation")
	}

	ema := 0.0
	for i := 0; i < period; i++ {
		ema += prices[i]
	}
	ema /= float64(period)

	k := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		ema = prices[i]*k + ema*(1-k)
	}
	return ema, nil
}

// ExtractCloses returns the close prices of a bar series in order.
func ExtractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// ExtractVolumes returns the volumes of a bar series in order.
func ExtractVolumes(bars []model.OHLCV) []float64 {
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		volumes[i] = b.Volume
	}
	return volumes
}
