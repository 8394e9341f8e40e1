package calculator

import "errors"

// Mean returns the arithmetic mean of the given values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
