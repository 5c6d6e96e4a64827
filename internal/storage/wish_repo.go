package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type WishRepo struct {
	db *sql.DB
}

func NewWishRepo(db *sql.DB) *WishRepo {
	return &WishRepo{db: db}
}

func (r *WishRepo) Insert(ctx context.Context, w Wish) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO wishes (name, cost, status, progress, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, w.Name, w.Cost, w.Status, w.Progress, w.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("wish insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("wish last insert id: %w", err)
	}
	return id, nil
}

func (r *WishRepo) Get(ctx context.Context, id int64) (*Wish, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, cost, status, progress, created_at, redeemed_at
		FROM wishes
		WHERE id = ?
	`, id)

	var w Wish
	if err := row.Scan(&w.ID, &w.Name, &w.Cost, &w.Status, &w.Progress, &w.CreatedAt, &w.RedeemedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("wish get: %w", err)
	}
	return &w, nil
}

func (r *WishRepo) ListByStatus(ctx context.Context, status string) ([]Wish, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, cost, status, progress, created_at, redeemed_at
		FROM wishes
		WHERE status = ?
		ORDER BY created_at ASC, id ASC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("wish list: %w", err)
	}
	defer rows.Close()

	var out []Wish
	for rows.Next() {
		var w Wish
		if err := rows.Scan(&w.ID, &w.Name, &w.Cost, &w.Status, &w.Progress, &w.CreatedAt, &w.RedeemedAt); err != nil {
			return nil, fmt.Errorf("wish scan: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("wish list rows: %w", err)
	}
	return out, nil
}

func (r *WishRepo) UpdateProgress(ctx context.Context, id int64, progress float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE wishes SET progress = ? WHERE id = ?`, progress, id)
	if err != nil {
		return fmt.Errorf("wish progress update: %w", err)
	}
	return nil
}

// UpdateAllPendingProgress recomputes progress for every pending wish from
// the current point balance, capping at 1.0.
func (r *WishRepo) UpdateAllPendingProgress(ctx context.Context, totalPoints float64) error {
	return wishRefreshProgress(ctx, r.db, totalPoints)
}

// RefreshPendingProgressTx is UpdateAllPendingProgress inside a caller-owned
// transaction, for use right after a balance mutation.
func (r *WishRepo) RefreshPendingProgressTx(ctx context.Context, tx *sql.Tx, totalPoints float64) error {
	return wishRefreshProgress(ctx, tx, totalPoints)
}

func wishRefreshProgress(ctx context.Context, q execer, totalPoints float64) error {
	_, err := q.ExecContext(ctx, `
		UPDATE wishes
		SET progress = MAX(0.0, MIN(1.0, ? / cost))
		WHERE status = ?
	`, totalPoints, WishStatusPending)
	if err != nil {
		return fmt.Errorf("wish progress refresh: %w", err)
	}
	return nil
}

// RedeemTx flips a pending wish to redeemed inside a caller-owned
// transaction. The WHERE guard makes a double redeem affect zero rows.
func (r *WishRepo) RedeemTx(ctx context.Context, tx *sql.Tx, id int64, redeemedAt time.Time) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE wishes
		SET status = ?, redeemed_at = ?, progress = 1.0
		WHERE id = ? AND status = ?
	`, WishStatusRedeemed, redeemedAt, id, WishStatusPending)
	if err != nil {
		return fmt.Errorf("wish redeem: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("wish redeem rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("wish %d is not pending", id)
	}
	return nil
}

// CountRedeemedBetween counts wishes redeemed in [from, to).
func (r *WishRepo) CountRedeemedBetween(ctx context.Context, from, to time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM wishes
		WHERE status = ? AND redeemed_at >= ? AND redeemed_at < ?
	`, WishStatusRedeemed, from, to)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("wish redeemed count: %w", err)
	}
	return n, nil
}
