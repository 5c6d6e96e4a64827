package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS account (
			key TEXT PRIMARY KEY,
			total_points REAL DEFAULT 0,
			current_energy REAL DEFAULT 100,
			last_reset_date TEXT DEFAULT '',
			last_record_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS behaviors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			grade TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			mood INTEGER DEFAULT 3,
			note TEXT,
			score REAL NOT NULL,
			energy_change REAL NOT NULL,
			recorded_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS behavior_defs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			grade TEXT NOT NULL,
			category TEXT DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS wishes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			cost REAL NOT NULL,
			status TEXT DEFAULT 'pending',
			progress REAL DEFAULT 0,
			created_at DATETIME NOT NULL,
			redeemed_at DATETIME
		);`,
		`CREATE INDEX IF NOT EXISTS idx_behaviors_recorded_at ON behaviors(recorded_at);`,
		`CREATE INDEX IF NOT EXISTS idx_behaviors_name_grade ON behaviors(name, grade);`,
		`CREATE INDEX IF NOT EXISTS idx_wishes_status ON wishes(status);`,
		`CREATE INDEX IF NOT EXISTS idx_wishes_redeemed_at ON wishes(redeemed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
