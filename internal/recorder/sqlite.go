package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"InvestAdvisor/internal/model"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets readers (reports, the history command) run while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("SQLite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recommendations (
			id               TEXT PRIMARY KEY,
			timestamp        INTEGER NOT NULL,
			age              INTEGER,
			risk             TEXT,
			horizon          TEXT,
			goal             TEXT,
			principal        REAL,
			language         TEXT,
			inflation_yoy    REAL,
			label            TEXT,
			matched          INTEGER,
			stock_percent    REAL,
			fund_percent     REAL,
			stock_amount     REAL,
			fund_amount      REAL,
			per_stock_amount REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_ts ON recommendations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS market_snapshots (
			id              TEXT PRIMARY KEY,
			timestamp       INTEGER NOT NULL,
			series_id       TEXT,
			latest_value    REAL,
			latest_date     TEXT,
			yoy_percent     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON market_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS snapshot_performers (
			snapshot_id    TEXT NOT NULL,
			rank           INTEGER NOT NULL,
			ticker         TEXT NOT NULL,
			return_percent REAL,
			PRIMARY KEY (snapshot_id, rank)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRecommendation(res *model.RecommendationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := res.ID
	if id == "" {
		id = uuid.NewString()
	}
	a := res.Allocation
	_, err := r.db.Exec(`INSERT INTO recommendations
		(id, timestamp, age, risk, horizon, goal, principal, language, inflation_yoy,
		 label, matched, stock_percent, fund_percent, stock_amount, fund_amount, per_stock_amount)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id, time.Now().Unix(),
		res.Profile.Age, string(res.Profile.Risk), string(res.Profile.Horizon), res.Profile.Goal,
		res.Principal, res.Language, res.Inflation.YoYPercent,
		res.Label, res.Matched,
		a.StockPercent, a.FundPercent, a.StockAmount, a.FundAmount, a.PerStockAmount,
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshot(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.TakenAt.IsZero() {
		snap.TakenAt = time.Now()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	inf := snap.Inflation
	if _, err := tx.Exec(`INSERT INTO market_snapshots
		(id, timestamp, series_id, latest_value, latest_date, yoy_percent)
		VALUES (?,?,?,?,?,?)`,
		snap.ID, snap.TakenAt.Unix(), inf.SeriesID, inf.LatestValue,
		inf.LatestDate.Format("2006-01-02"), inf.YoYPercent,
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	for i, p := range snap.Top {
		if _, err := tx.Exec(`INSERT INTO snapshot_performers
			(snapshot_id, rank, ticker, return_percent) VALUES (?,?,?,?)`,
			snap.ID, i+1, p.Ticker, p.ReturnPercent,
		); err != nil {
			return fmt.Errorf("insert performer: %w", err)
		}
	}
	return tx.Commit()
}

// RecentRecommendations returns up to limit records, newest first.
func (r *SQLiteRecorder) RecentRecommendations(limit int) ([]RecommendationRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`SELECT id, timestamp, age, risk, horizon, goal, principal, language,
		inflation_yoy, label, matched, stock_percent, fund_percent, stock_amount, fund_amount, per_stock_amount
		FROM recommendations ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	var out []RecommendationRecord
	for rows.Next() {
		var rec RecommendationRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &ts, &rec.Age, &rec.Risk, &rec.Horizon, &rec.Goal,
			&rec.Principal, &rec.Language, &rec.InflationYoY, &rec.Label, &rec.Matched,
			&rec.Allocation.StockPercent, &rec.Allocation.FundPercent,
			&rec.Allocation.StockAmount, &rec.Allocation.FundAmount, &rec.Allocation.PerStockAmount,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		rec.ServedAt = time.Unix(ts, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("Closing SQLite recorder")
	return r.db.Close()
}
