package model

// CheckResult is a single predicate's outcome for one ticker.
type CheckResult struct {
	Name       string
	Passed     bool
	Commentary string
}

// Verdict is the full evaluation record for one ticker within a scan.
// Purely observational: no verdict influences the evaluation of later tickers.
type Verdict struct {
	Symbol    string
	Snapshot  *IndicatorSnapshot
	Checks    []CheckResult
	Qualified bool
	Note      string // set when the ticker was disqualified before evaluation
}
