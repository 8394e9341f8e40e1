package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"StockScout/internal/model"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/scanner"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily scan on a cron schedule and serves manual
// triggers. Scans themselves stay strictly sequential; the cron runner only
// decides when one starts.
type Scheduler struct {
	Ctx      context.Context
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Tickers  []string
	Notifier notifier.Notifier
	Recorder recorder.Recorder

	mu         sync.Mutex
	lastReport string
}

// NewScheduler creates a new Scheduler. The context bounds report delivery;
// cancelling it aborts any in-flight notifier retries.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, tickers []string, n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Ctx:      ctx,
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Tickers:  tickers,
		Notifier: n,
		Recorder: rec,
	}
}

// Register wires the daily scan onto the cron schedule.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.scanTask); err != nil {
		return fmt.Errorf("register daily scan: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan immediately (one-shot mode / manual trigger).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Printf("[INFO] running scan over %d tickers", len(s.Tickers))
	res := s.Scanner.Scan(s.Tickers)

	report := notifier.FormatScanReport(res.Recommendation, res.Verdicts)
	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()

	if err := s.Notifier.Send(s.Ctx, report); err != nil {
		log.Printf("[ERROR] send scan report: %v", err)
	}

	if err := s.Recorder.RecordScan(&recorder.ScanRecord{
		Outcome:        res.Recommendation.Action,
		Symbol:         res.Recommendation.Symbol,
		TickersScanned: len(res.Verdicts),
	}); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
	for i := range res.Verdicts {
		if err := s.Recorder.RecordCheck(checkRecord(&res.Verdicts[i])); err != nil {
			log.Printf("[ERROR] record check for %s: %v", res.Verdicts[i].Symbol, err)
		}
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		s.scanTask()
		return ""
	case "/last":
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastReport == "" {
			return "No scan has run yet. Use /scan to trigger one."
		}
		return s.lastReport
	default:
		return "Available commands:\n/scan run a scan now\n/last show the last scan report"
	}
}

func checkRecord(v *model.Verdict) *recorder.CheckRecord {
	rec := &recorder.CheckRecord{
		Symbol:    v.Symbol,
		Qualified: v.Qualified,
		Note:      v.Note,
	}
	if v.Snapshot != nil {
		rec.EMA = v.Snapshot.EMA
		rec.SMA = v.Snapshot.SMA
		rec.RSI = v.Snapshot.RSI
		rec.LatestVolume = v.Snapshot.LatestVolume
	}
	for _, c := range v.Checks {
		switch c.Name {
		case "RSI":
			rec.RSIPass = c.Passed
		case "GoldenCross":
			rec.CrossPass = c.Passed
		case "VolumeSpike":
			rec.VolumePass = c.Passed
		}
	}
	return rec
}
