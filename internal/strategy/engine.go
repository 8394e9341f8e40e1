package strategy

import "StockScout/internal/model"

// Evaluate runs all three checks against a snapshot. Qualification requires
// every check to pass; there is no partial credit. All checks are evaluated
// even after a failure so reports show the complete picture.
func Evaluate(snap *model.IndicatorSnapshot, p Params) *model.Verdict {
	checks := []model.CheckResult{
		checkRSI(snap, p),
		checkGoldenCross(snap),
		checkVolumeSpike(snap, p),
	}

	qualified := true
	for _, c := range checks {
		if !c.Passed {
			qualified = false
		}
	}

	return &model.Verdict{
		Symbol:    snap.Symbol,
		Snapshot:  snap,
		Checks:    checks,
		Qualified: qualified,
	}
}
