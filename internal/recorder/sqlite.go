package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tooling can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			outcome         TEXT,
			symbol          TEXT,
			tickers_scanned INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,

		`CREATE TABLE IF NOT EXISTS ticker_checks (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT,
			ema           REAL,
			sma           REAL,
			rsi           REAL,
			latest_volume REAL,
			rsi_pass      INTEGER,
			cross_pass    INTEGER,
			volume_pass   INTEGER,
			qualified     INTEGER,
			note          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_checks_ts ON ticker_checks(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_checks_symbol ON ticker_checks(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordScan(rec *ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scans
		(timestamp, outcome, symbol, tickers_scanned)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), string(rec.Outcome), rec.Symbol, rec.TickersScanned,
	)
	return err
}

func (r *SQLiteRecorder) RecordCheck(rec *CheckRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO ticker_checks
		(timestamp, symbol, ema, sma, rsi, latest_volume,
		 rsi_pass, cross_pass, volume_pass, qualified, note)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Symbol, rec.EMA, rec.SMA, rec.RSI, rec.LatestVolume,
		rec.RSIPass, rec.CrossPass, rec.VolumePass, rec.Qualified, rec.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
