package scanner

import (
	"log"

	"StockScout/internal/collector"
	"StockScout/internal/model"
	"StockScout/internal/strategy"
)

// Scanner walks the ticker list in a fixed order and halts at the first
// ticker that clears every check. No state is shared between tickers.
type Scanner struct {
	Collector *collector.Collector
	Params    strategy.Params
}

// New creates a Scanner.
func New(col *collector.Collector, params strategy.Params) *Scanner {
	return &Scanner{Collector: col, Params: params}
}

// Result bundles the recommendation with the per-ticker verdicts produced
// before the scan halted.
type Result struct {
	Recommendation model.Recommendation
	Verdicts       []model.Verdict
}

// Scan evaluates tickers in list order and short-circuits on the first
// qualifier. A fetch or parse failure disqualifies the ticker and the scan
// moves on; it never aborts. An empty list yields NoOpportunity without
// touching the fetcher.
func (s *Scanner) Scan(tickers []string) *Result {
	res := &Result{}
	for _, symbol := range tickers {
		snap, err := s.Collector.Snapshot(symbol)
		if err != nil {
			log.Printf("[WARN] %s disqualified: %v", symbol, err)
			res.Verdicts = append(res.Verdicts, model.Verdict{Symbol: symbol, Note: err.Error()})
			continue
		}

		verdict := strategy.Evaluate(snap, s.Params)
		res.Verdicts = append(res.Verdicts, *verdict)
		if verdict.Qualified {
			res.Recommendation = model.BuyRecommendation(symbol)
			return res
		}
	}
	res.Recommendation = model.NoOpportunity()
	return res
}
