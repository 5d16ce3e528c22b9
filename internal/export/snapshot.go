// Package export persists mesocycle analysis reports to a local SQLite
// file so past blocks can be reviewed after the training data that
// produced them has changed.
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Joshfkon/workout-app-sub012/internal/engine"
)

// SnapshotDB stores one row per completed mesocycle analysis.
type SnapshotDB struct {
	db *sql.DB
}

// OpenSnapshotDB opens (or creates) the SQLite snapshot database at
// dir/snapshots.db.
func OpenSnapshotDB(dir string) (*SnapshotDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "snapshots.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     INTEGER NOT NULL,
		block_start TEXT NOT NULL,
		weeks       INTEGER NOT NULL,
		created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		report      TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating analyses table: %w", err)
	}

	return &SnapshotDB{db: db}, nil
}

// Save appends one analysis report for the given block.
func (s *SnapshotDB) Save(userID int, blockStart time.Time, weeks int, analysis *engine.MesocycleAnalysis) error {
	report, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO analyses (user_id, block_start, weeks, report) VALUES (?, ?, ?, ?)`,
		userID, blockStart.Format("2006-01-02"), weeks, string(report),
	)
	if err != nil {
		return fmt.Errorf("saving analysis snapshot: %w", err)
	}
	return nil
}

// Snapshot is one stored analysis with its block metadata.
type Snapshot struct {
	UserID     int
	BlockStart string
	Weeks      int
	CreatedAt  time.Time
	Analysis   engine.MesocycleAnalysis
}

// List returns the stored analyses for a user, newest first.
func (s *SnapshotDB) List(userID int, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT user_id, block_start, weeks, created_at, report
		 FROM analyses WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var report string
		if err := rows.Scan(&snap.UserID, &snap.BlockStart, &snap.Weeks, &snap.CreatedAt, &report); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(report), &snap.Analysis); err != nil {
			return nil, fmt.Errorf("decoding snapshot report: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Close closes the snapshot database.
func (s *SnapshotDB) Close() error {
	return s.db.Close()
}
