package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Scan runs: one row per completed search
	CREATE TABLE IF NOT EXISTS scan_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		source TEXT NOT NULL,
		skip_from INTEGER NOT NULL,
		skip_to INTEGER NOT NULL,
		xy_ratio REAL NOT NULL,
		zigzag_threshold REAL NOT NULL,
		evaluated INTEGER NOT NULL,
		accepted INTEGER NOT NULL,
		rejected INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Candidate patterns, accepted and rejected
	CREATE TABLE IF NOT EXISTS patterns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		rule_name TEXT NOT NULL,
		kind TEXT NOT NULL,
		option TEXT NOT NULL,
		idx_start INTEGER NOT NULL,
		idx_end INTEGER NOT NULL,
		waves TEXT NOT NULL,
		violation TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (run_id) REFERENCES scan_runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_patterns_run ON patterns(run_id);
	CREATE INDEX IF NOT EXISTS idx_patterns_rule ON patterns(rule_name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists a scan run and returns its id.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *ScanRun) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_runs
			(timestamp, source, skip_from, skip_to, xy_ratio, zigzag_threshold, evaluated, accepted, rejected)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Timestamp, run.Source, run.SkipFrom, run.SkipTo,
		run.XYRatio, run.ZigzagThreshold, run.Evaluated, run.Accepted, run.Rejected,
	)
	if err != nil {
		return 0, fmt.Errorf("saving run: %w", err)
	}
	return res.LastInsertId()
}

// SavePattern persists one candidate pattern.
func (s *SQLiteStore) SavePattern(ctx context.Context, rec *PatternRecord) error {
	wavesJSON, err := json.Marshal(rec.Waves)
	if err != nil {
		return fmt.Errorf("marshaling waves: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO patterns (run_id, rule_name, kind, option, idx_start, idx_end, waves, violation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.RuleName, rec.Kind, rec.Option,
		rec.IdxStart, rec.IdxEnd, string(wavesJSON), rec.Violation,
	)
	if err != nil {
		return fmt.Errorf("saving pattern: %w", err)
	}
	return nil
}

// GetRuns returns the most recent scan runs.
func (s *SQLiteStore) GetRuns(ctx context.Context, limit int) ([]ScanRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, source, skip_from, skip_to, xy_ratio, zigzag_threshold, evaluated, accepted, rejected
		FROM scan_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []ScanRun
	for rows.Next() {
		var r ScanRun
		var ts time.Time
		if err := rows.Scan(&r.ID, &ts, &r.Source, &r.SkipFrom, &r.SkipTo,
			&r.XYRatio, &r.ZigzagThreshold, &r.Evaluated, &r.Accepted, &r.Rejected); err != nil {
			return nil, err
		}
		r.Timestamp = ts
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetPatterns returns the patterns of a run, optionally including rejected
// candidates.
func (s *SQLiteStore) GetPatterns(ctx context.Context, runID int64, includeRejected bool) ([]PatternRecord, error) {
	query := `
		SELECT id, run_id, rule_name, kind, option, idx_start, idx_end, waves, violation
		FROM patterns WHERE run_id = ?`
	if !includeRejected {
		query += ` AND violation = ''`
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("querying patterns: %w", err)
	}
	defer rows.Close()

	var records []PatternRecord
	for rows.Next() {
		var rec PatternRecord
		var wavesJSON string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.RuleName, &rec.Kind, &rec.Option,
			&rec.IdxStart, &rec.IdxEnd, &wavesJSON, &rec.Violation); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(wavesJSON), &rec.Waves); err != nil {
			return nil, fmt.Errorf("unmarshaling waves: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
