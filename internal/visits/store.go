// Package visits keeps a privacy-conscious log of page views.
package visits

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	topPathsLimit = 10
	recentLimit   = 50
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// PathCount is the view count of a single path.
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats summarises the visit log for the admin dashboard.
type Stats struct {
	TotalVisits    int64       `json:"total_visits"`
	UniqueVisitors int64       `json:"unique_visitors"`
	VisitsToday    int64       `json:"visits_today"`
	VisitsThisWeek int64       `json:"visits_this_week"`
	TopPaths       []PathCount `json:"top_paths"`
	Recent         []Visit     `json:"recent"`
}

// Store persists visits in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

const createVisitsTable = `CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL,
	created_at DATETIME NOT NULL
)`

const createVisitsIndex = `CREATE INDEX IF NOT EXISTS idx_visits_created_at ON visits (created_at)`

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range []string{createVisitsTable, createVisitsIndex} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate visits: %w", err)
		}
	}
	return nil
}

// Record inserts v. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, v Visit) error {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = s.now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Stats aggregates the visit log.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{TopPaths: []PathCount{}, Recent: []Visit{}}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visits WHERE created_at >= ?`, []any{startOfDay}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE created_at >= ?`, []any{weekAgo}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count visits: %w", err)
		}
	}

	top, err := s.topPaths(ctx)
	if err != nil {
		return nil, err
	}
	stats.TopPaths = top

	recent, err := s.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	stats.Recent = recent

	return stats, nil
}

func (s *Store) topPaths(ctx context.Context) ([]PathCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, COUNT(*) AS views FROM visits GROUP BY path ORDER BY views DESC, path ASC LIMIT ?`,
		topPathsLimit)
	if err != nil {
		return nil, fmt.Errorf("query top paths: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []PathCount{}
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, fmt.Errorf("scan top path: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// Recent returns the newest visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hashed_ip, user_agent, path, created_at FROM visits ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query recent visits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []Visit{}
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Cleanup deletes visits older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup rows affected: %w", err)
	}
	return n, nil
}
