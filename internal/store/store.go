// Package store persists analyzed sessions to sqlite so the analytics
// endpoints can aggregate across recordings. The engine itself never
// touches this package; persistence is strictly a caller concern.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    script TEXT,
    word_count INTEGER,
    quality_score INTEGER,
    grade TEXT,
    sentiment TEXT,
    confidence REAL,
    duration_seconds REAL,
    total_events INTEGER,
    action_breakdown TEXT,
    created_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
`

// Session is one persisted analysis record.
type Session struct {
	ID              string         `json:"session_id"`
	Script          string         `json:"script,omitempty"`
	WordCount       int            `json:"word_count"`
	QualityScore    int            `json:"quality_score"`
	Grade           string         `json:"grade"`
	Sentiment       string         `json:"sentiment"`
	Confidence      float64        `json:"confidence"`
	DurationSeconds float64        `json:"duration_seconds"`
	TotalEvents     int            `json:"total_events"`
	ActionBreakdown map[string]int `json:"action_breakdown,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Store wraps the sqlite connection.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the sessions database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces a session record.
func (s *Store) Save(sess Session) error {
	if sess.ID == "" {
		return fmt.Errorf("session id required")
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	breakdown, err := json.Marshal(sess.ActionBreakdown)
	if err != nil {
		return fmt.Errorf("marshal action breakdown: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO sessions
		 (id, script, word_count, quality_score, grade, sentiment, confidence,
		  duration_seconds, total_events, action_breakdown, created_at)
		 VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		sess.ID,
		sess.Script,
		sess.WordCount,
		sess.QualityScore,
		sess.Grade,
		sess.Sentiment,
		sess.Confidence,
		sess.DurationSeconds,
		sess.TotalEvents,
		string(breakdown),
		sess.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get returns the session with the given id, or nil if not found.
func (s *Store) Get(id string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT id, script, word_count, quality_score, grade, sentiment, confidence,
		        duration_seconds, total_events, action_breakdown, created_at
		 FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return sess, nil
}

// List returns up to limit sessions, newest first. A limit of zero or less
// returns every session; analytics aggregation depends on that.
func (s *Store) List(limit int) ([]Session, error) {
	query := `SELECT id, script, word_count, quality_score, grade, sentiment, confidence,
	                 duration_seconds, total_events, action_breakdown, created_at
	          FROM sessions ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// Delete removes a session; it reports whether a row was deleted.
func (s *Store) Delete(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of stored sessions.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func scanSession(scan func(dest ...any) error) (*Session, error) {
	var sess Session
	var breakdown string
	var createdAt string
	err := scan(
		&sess.ID,
		&sess.Script,
		&sess.WordCount,
		&sess.QualityScore,
		&sess.Grade,
		&sess.Sentiment,
		&sess.Confidence,
		&sess.DurationSeconds,
		&sess.TotalEvents,
		&breakdown,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	if breakdown != "" && breakdown != "null" {
		if err := json.Unmarshal([]byte(breakdown), &sess.ActionBreakdown); err != nil {
			return nil, fmt.Errorf("unmarshal action breakdown: %w", err)
		}
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		sess.CreatedAt = t
	}
	return &sess, nil
}
