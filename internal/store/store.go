// Package store archives completed analysis reports in a local SQLite
// database so past runs can be listed and re-rendered.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/venturelens/venturelens/internal/model"
)

// ErrNotFound is returned when no archived report has the requested ID.
var ErrNotFound = errors.New("report not found")

// Summary is one row of the archive listing; the full report stays in the
// blob column until requested.
type Summary struct {
	ID             string    `json:"id"`
	Idea           string    `json:"idea"`
	CreatedAt      time.Time `json:"created_at"`
	ViabilityScore int       `json:"viability_score"`
	Risk           string    `json:"risk"`
	DegradedStages int       `json:"degraded_stages"`
}

// Store is a SQLite-backed report archive. Safe for concurrent use; SQLite
// serializes writers and WAL keeps readers unblocked.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id              TEXT PRIMARY KEY,
	idea            TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL,
	viability_score INTEGER NOT NULL,
	risk            TEXT NOT NULL,
	degraded_stages INTEGER NOT NULL,
	report          BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at DESC);
`

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing archive schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives a report, replacing any previous report with the same ID.
func (s *Store) Save(r *model.Report) error {
	blob, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report %s: %w", r.ID, err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO reports
		 (id, idea, created_at, viability_score, risk, degraded_stages, report)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Idea, r.CreatedAt, r.Viability.Score, r.Viability.RiskAssessment,
		len(r.Degraded), blob,
	)
	if err != nil {
		return fmt.Errorf("archiving report %s: %w", r.ID, err)
	}
	return nil
}

// Get loads one archived report by ID.
func (s *Store) Get(id string) (*model.Report, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT report FROM reports WHERE id = ?`, id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading report %s: %w", id, err)
	}
	var r model.Report
	if err := json.Unmarshal(blob, &r); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", id, err)
	}
	return &r, nil
}

// List returns summaries of the most recent reports, newest first. A limit
// of zero or below defaults to 20.
func (s *Store) List(limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, idea, created_at, viability_score, risk, degraded_stages
		 FROM reports ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Idea, &s.CreatedAt, &s.ViabilityScore, &s.Risk, &s.DegradedStages); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
