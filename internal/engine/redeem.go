package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"timescore/internal/storage"
)

// CreateWish validates and stores a new pending wish with its initial
// progress computed from the current balance.
func (s *Service) CreateWish(ctx context.Context, name string, cost float64, now time.Time) (*storage.Wish, error) {
	if err := ValidateWish(name, cost); err != nil {
		return nil, err
	}
	account, err := s.accounts.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}

	w := storage.Wish{
		Name:      name,
		Cost:      cost,
		Status:    storage.WishStatusPending,
		Progress:  WishProgress(account.TotalPoints, cost),
		CreatedAt: now,
	}
	id, err := s.wishes.Insert(ctx, w)
	if err != nil {
		return nil, err
	}
	w.ID = id
	return &w, nil
}

type RedeemResult struct {
	Wish            storage.Wish
	RemainingPoints float64
	RedeemedToday   int
}

// RedeemWish deducts the wish cost and flips it to redeemed, atomically.
// Fails with NotRedeemableError when already redeemed or short on points, and
// with DailyLimitExceededError once 3 wishes were redeemed on now's day.
func (s *Service) RedeemWish(ctx context.Context, id int64, now time.Time) (*RedeemResult, error) {
	w, err := s.wishes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("wish %d not found", id)
	}

	account, err := s.accounts.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	if err := CanRedeem(w, account.TotalPoints); err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBounds(now)
	redeemedToday, err := s.wishes.CountRedeemedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if redeemedToday >= DailyRedemptionLimit {
		return nil, DailyLimitExceededError{Limit: DailyRedemptionLimit}
	}

	account.TotalPoints -= w.Cost
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.wishes.RedeemTx(ctx, tx, id, now); err != nil {
			return err
		}
		if err := s.accounts.UpdateTx(ctx, tx, account); err != nil {
			return err
		}
		return s.wishes.RefreshPendingProgressTx(ctx, tx, account.TotalPoints)
	})
	if err != nil {
		return nil, err
	}

	redeemedAt := now
	w.Status = storage.WishStatusRedeemed
	w.RedeemedAt = &redeemedAt
	w.Progress = 1.0
	return &RedeemResult{
		Wish:            *w,
		RemainingPoints: account.TotalPoints,
		RedeemedToday:   redeemedToday + 1,
	}, nil
}

// PendingWishes refreshes progress from the current balance and returns the
// pending list.
func (s *Service) PendingWishes(ctx context.Context) ([]storage.Wish, error) {
	account, err := s.accounts.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.wishes.UpdateAllPendingProgress(ctx, account.TotalPoints); err != nil {
		return nil, err
	}
	return s.wishes.ListByStatus(ctx, storage.WishStatusPending)
}

func (s *Service) RedeemedWishes(ctx context.Context) ([]storage.Wish, error) {
	return s.wishes.ListByStatus(ctx, storage.WishStatusRedeemed)
}
