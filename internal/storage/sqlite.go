// Package storage keeps a history of play sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"go-fog-of-war/internal/config"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is one finished run of the game: fog settings plus frame statistics.
type Session struct {
	ID           string
	StartedAt    time.Time
	Duration     time.Duration
	VisionRadius float64
	FadeWidth    float64
	Frames       int64
	AvgFPS       float64
	AvgFrameMS   float64
	MinFrameMS   float64
	MaxFrameMS   float64
	WorldSeed    int64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			duration_ms INTEGER NOT NULL,
			vision_radius REAL NOT NULL,
			fade_width REAL NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			avg_fps REAL NOT NULL DEFAULT 0,
			avg_frame_ms REAL NOT NULL DEFAULT 0,
			min_frame_ms REAL NOT NULL DEFAULT 0,
			max_frame_ms REAL NOT NULL DEFAULT 0,
			world_seed INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a session. An empty ID is replaced by a new UUID, which
// is returned.
func (s *Store) SaveSession(ctx context.Context, sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at, duration_ms, vision_radius, fade_width,
			frames, avg_fps, avg_frame_ms, min_frame_ms, max_frame_ms, world_seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.StartedAt.UTC(), sess.Duration.Milliseconds(), sess.VisionRadius, sess.FadeWidth,
		sess.Frames, sess.AvgFPS, sess.AvgFrameMS, sess.MinFrameMS, sess.MaxFrameMS, sess.WorldSeed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return sess.ID, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ms, vision_radius, fade_width,
			frames, avg_fps, avg_frame_ms, min_frame_ms, max_frame_ms, world_seed
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess       Session
			durationMS int64
		)
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &durationMS, &sess.VisionRadius, &sess.FadeWidth,
			&sess.Frames, &sess.AvgFPS, &sess.AvgFrameMS, &sess.MinFrameMS, &sess.MaxFrameMS, &sess.WorldSeed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		sess.Duration = time.Duration(durationMS) * time.Millisecond
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating sessions: %w", err)
	}
	return sessions, nil
}
