package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type BehaviorRepo struct {
	db *sql.DB
}

func NewBehaviorRepo(db *sql.DB) *BehaviorRepo {
	return &BehaviorRepo{db: db}
}

type BehaviorInsert struct {
	Name            string
	Grade           string
	DurationMinutes int
	Mood            int
	Note            *string
	Score           float64
	EnergyChange    float64
	RecordedAt      time.Time
}

// InsertTx writes a new record inside a caller-owned transaction, so the
// record and the account mutation it implies land together.
func (r *BehaviorRepo) InsertTx(ctx context.Context, tx *sql.Tx, in BehaviorInsert) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO behaviors (name, grade, duration_minutes, mood, note, score, energy_change, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.Grade, in.DurationMinutes, in.Mood, in.Note, in.Score, in.EnergyChange, in.RecordedAt)
	if err != nil {
		return 0, fmt.Errorf("behavior insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("behavior last insert id: %w", err)
	}
	return id, nil
}

// DeleteTx removes a record inside a caller-owned transaction.
func (r *BehaviorRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id int64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM behaviors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("behavior delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("behavior delete rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("behavior %d not found", id)
	}
	return nil
}

func (r *BehaviorRepo) Get(ctx context.Context, id int64) (*Behavior, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, grade, duration_minutes, mood, note, score, energy_change, recorded_at
		FROM behaviors
		WHERE id = ?
	`, id)

	var b Behavior
	if err := row.Scan(&b.ID, &b.Name, &b.Grade, &b.DurationMinutes, &b.Mood, &b.Note, &b.Score, &b.EnergyChange, &b.RecordedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("behavior get: %w", err)
	}
	return &b, nil
}

func (r *BehaviorRepo) ListAll(ctx context.Context) ([]Behavior, error) {
	return r.list(ctx, `
		SELECT id, name, grade, duration_minutes, mood, note, score, energy_change, recorded_at
		FROM behaviors
		ORDER BY recorded_at ASC, id ASC
	`)
}

// ListBetween returns records with recorded_at in [from, to).
func (r *BehaviorRepo) ListBetween(ctx context.Context, from, to time.Time) ([]Behavior, error) {
	return r.list(ctx, `
		SELECT id, name, grade, duration_minutes, mood, note, score, energy_change, recorded_at
		FROM behaviors
		WHERE recorded_at >= ? AND recorded_at < ?
		ORDER BY recorded_at ASC, id ASC
	`, from, to)
}

func (r *BehaviorRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM behaviors`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("behavior count: %w", err)
	}
	return n, nil
}

func (r *BehaviorRepo) list(ctx context.Context, query string, args ...any) ([]Behavior, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("behavior list: %w", err)
	}
	defer rows.Close()

	var out []Behavior
	for rows.Next() {
		var b Behavior
		if err := rows.Scan(&b.ID, &b.Name, &b.Grade, &b.DurationMinutes, &b.Mood, &b.Note, &b.Score, &b.EnergyChange, &b.RecordedAt); err != nil {
			return nil, fmt.Errorf("behavior scan: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("behavior list rows: %w", err)
	}
	return out, nil
}
