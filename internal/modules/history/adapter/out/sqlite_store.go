package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clearpoints/internal/modules/history/domain"
	apperrors "clearpoints/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// Fixed width so ended_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteResultStore struct {
	db *sql.DB
}

func NewSQLiteResultStore(dbPath string) (*SQLiteResultStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &SQLiteResultStore{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteResultStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteResultStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS results (
  session_id TEXT PRIMARY KEY,
  target_count INTEGER NOT NULL,
  cleared INTEGER NOT NULL,
  outcome TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  elapsed_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_best ON results(outcome, target_count, elapsed_ms);
CREATE INDEX IF NOT EXISTS idx_results_ended ON results(ended_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create results table: %w", err)
	}
	return nil
}

func (s *SQLiteResultStore) Save(ctx context.Context, record domain.Record) error {
	const stmt = `
INSERT INTO results (session_id, target_count, cleared, outcome, started_at, ended_at, elapsed_ms)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(session_id) DO NOTHING;
`
	_, err := s.db.ExecContext(ctx, stmt,
		record.SessionID,
		record.TargetCount,
		record.Cleared,
		string(record.Outcome),
		record.StartedAt.UTC().Format(timeLayout),
		record.EndedAt.UTC().Format(timeLayout),
		record.Elapsed().Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *SQLiteResultStore) List(ctx context.Context, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT session_id, target_count, cleared, outcome, started_at, ended_at
FROM results
ORDER BY ended_at DESC, session_id ASC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Record, 0, limit)
	for rows.Next() {
		var (
			r                  domain.Record
			outcome            string
			startedAt, endedAt string
		)
		if err := rows.Scan(&r.SessionID, &r.TargetCount, &r.Cleared, &outcome, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Outcome = domain.Outcome(outcome)
		if r.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if r.EndedAt, err = time.Parse(timeLayout, endedAt); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

func (s *SQLiteResultStore) FastestWin(ctx context.Context, targetCount int) (domain.Best, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT session_id, elapsed_ms
FROM results
WHERE outcome = 'win' AND target_count = ?
ORDER BY elapsed_ms ASC, ended_at ASC
LIMIT 1;
`, targetCount)
	best := domain.Best{TargetCount: targetCount}
	var ms int64
	if err := row.Scan(&best.SessionID, &ms); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Best{}, apperrors.ErrNotFound
		}
		return domain.Best{}, fmt.Errorf("fastest win: %w", err)
	}
	best.Elapsed = time.Duration(ms) * time.Millisecond
	return best, nil
}

func (s *SQLiteResultStore) Summary(ctx context.Context) (domain.Summary, error) {
	summary := domain.Summary{}
	err := s.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN outcome = 'lose' THEN 1 ELSE 0 END), 0)
FROM results;
`).Scan(&summary.Games, &summary.Wins, &summary.Losses)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("count results: %w", err)
	}

	// SQLite fills bare columns from the row that produced MIN().
	rows, err := s.db.QueryContext(ctx, `
SELECT target_count, MIN(elapsed_ms), session_id
FROM results
WHERE outcome = 'win'
GROUP BY target_count
ORDER BY target_count ASC;
`)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("best results: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			b  domain.Best
			ms int64
		)
		if err := rows.Scan(&b.TargetCount, &ms, &b.SessionID); err != nil {
			return domain.Summary{}, fmt.Errorf("scan best result: %w", err)
		}
		b.Elapsed = time.Duration(ms) * time.Millisecond
		summary.Best = append(summary.Best, b)
	}
	if err := rows.Err(); err != nil {
		return domain.Summary{}, fmt.Errorf("iterate best results: %w", err)
	}
	return summary, nil
}
