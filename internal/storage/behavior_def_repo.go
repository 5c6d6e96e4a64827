package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type BehaviorDefRepo struct {
	db *sql.DB
}

func NewBehaviorDefRepo(db *sql.DB) *BehaviorDefRepo {
	return &BehaviorDefRepo{db: db}
}

// Upsert inserts a catalog entry or repoints an existing name to a new
// grade/category.
func (r *BehaviorDefRepo) Upsert(ctx context.Context, def BehaviorDef) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO behavior_defs (name, grade, category)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET grade = excluded.grade, category = excluded.category
	`, def.Name, def.Grade, def.Category)
	if err != nil {
		return 0, fmt.Errorf("behavior def upsert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("behavior def last insert id: %w", err)
	}
	return id, nil
}

func (r *BehaviorDefRepo) GetByName(ctx context.Context, name string) (*BehaviorDef, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, grade, category FROM behavior_defs WHERE name = ?
	`, name)

	var d BehaviorDef
	if err := row.Scan(&d.ID, &d.Name, &d.Grade, &d.Category); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("behavior def get: %w", err)
	}
	return &d, nil
}

func (r *BehaviorDefRepo) ListAll(ctx context.Context) ([]BehaviorDef, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, grade, category FROM behavior_defs ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("behavior def list: %w", err)
	}
	defer rows.Close()

	var out []BehaviorDef
	for rows.Next() {
		var d BehaviorDef
		if err := rows.Scan(&d.ID, &d.Name, &d.Grade, &d.Category); err != nil {
			return nil, fmt.Errorf("behavior def scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("behavior def list rows: %w", err)
	}
	return out, nil
}
