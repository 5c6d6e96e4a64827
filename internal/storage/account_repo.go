package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MainAccountKey is the singleton account row. TimeScore is single-user.
const MainAccountKey = "main_user"

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Get(ctx context.Context, key string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, total_points, current_energy, last_reset_date, last_record_at
		FROM account
		WHERE key = ?
	`, key)

	var a Account
	if err := row.Scan(&a.Key, &a.TotalPoints, &a.CurrentEnergy, &a.LastResetDate, &a.LastRecordAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("account get: %w", err)
	}
	return &a, nil
}

func (r *AccountRepo) GetOrCreateMain(ctx context.Context) (*Account, error) {
	a, err := r.Get(ctx, MainAccountKey)
	if err != nil {
		return nil, err
	}
	if a != nil {
		return a, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO account (key) VALUES (?)`, MainAccountKey); err != nil {
		return nil, fmt.Errorf("account insert: %w", err)
	}
	return r.Get(ctx, MainAccountKey)
}

func (r *AccountRepo) Update(ctx context.Context, a *Account) error {
	return accountUpdate(ctx, r.db, a)
}

// UpdateTx is Update running inside a caller-owned transaction.
func (r *AccountRepo) UpdateTx(ctx context.Context, tx *sql.Tx, a *Account) error {
	return accountUpdate(ctx, tx, a)
}

func accountUpdate(ctx context.Context, q execer, a *Account) error {
	_, err := q.ExecContext(ctx, `
		UPDATE account
		SET total_points = ?, current_energy = ?, last_reset_date = ?, last_record_at = ?
		WHERE key = ?
	`, a.TotalPoints, a.CurrentEnergy, a.LastResetDate, a.LastRecordAt, a.Key)
	if err != nil {
		return fmt.Errorf("account update: %w", err)
	}
	return nil
}
