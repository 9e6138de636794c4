package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
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

	// WAL mode for better concurrent read performance (dashboards read
	// while the bot writes).
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
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			ticker           TEXT,
			horizon          TEXT,
			bars             INTEGER,
			price            REAL,
			rsi              REAL,
			volume_sma       REAL,
			bb_lower         REAL,
			bb_upper         REAL,
			pivot            REAL,
			resistance       REAL,
			support          REAL,
			predicted        REAL,
			trend            TEXT,
			buy_volume       REAL,
			sell_volume      REAL,
			signal           TEXT,
			confidence       TEXT,
			fallback_session TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON analysis_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS fetch_failures (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			ticker    TEXT,
			horizon   TEXT,
			kind      TEXT,
			message   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_failures_ts ON fetch_failures(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, ticker, horizon, bars, price, rsi, volume_sma,
		 bb_lower, bb_upper, pivot, resistance, support, predicted, trend,
		 buy_volume, sell_volume, signal, confidence, fallback_session)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Ticker, snap.Horizon, snap.Bars, snap.Price,
		snap.RSI, snap.VolumeSMA, snap.BollingerLower, snap.BollingerUpper,
		snap.Pivot, snap.Resistance, snap.Support, snap.Predicted, snap.Trend,
		snap.BuyVolume, snap.SellVolume, snap.SignalKind, snap.Confidence,
		snap.FallbackSession,
	)
	return err
}

func (r *SQLiteRecorder) RecordFailure(f *Failure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO fetch_failures
		(timestamp, ticker, horizon, kind, message)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), f.Ticker, f.Horizon, f.Kind, f.Message,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
