package engine

import (
	"strings"

	"timescore/internal/storage"
)

const (
	// MinWishCost is the point floor for a wish; cheaper rewards defeat the
	// purpose of saving up.
	MinWishCost = 100.0

	// DailyRedemptionLimit caps redemptions per calendar day.
	DailyRedemptionLimit = 3
)

// ValidateWish checks wish creation input.
func ValidateWish(name string, cost float64) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "wish name", Reason: "must not be blank"}
	}
	if cost < MinWishCost {
		return ValidationError{Field: "wish cost", Reason: "must be at least 100 points"}
	}
	return nil
}

// WishProgress returns progress toward a wish, capped at 1.0. Negative point
// balances report zero.
func WishProgress(totalPoints, cost float64) float64 {
	if cost <= 0 || totalPoints <= 0 {
		return 0
	}
	p := totalPoints / cost
	if p > 1 {
		return 1
	}
	return p
}

// CanRedeem checks the wish-local redemption preconditions. The daily cap is
// checked separately against the ledger.
func CanRedeem(w *storage.Wish, totalPoints float64) error {
	if w.Status != storage.WishStatusPending {
		return NotRedeemableError{WishID: w.ID, Reason: "already redeemed"}
	}
	if totalPoints < w.Cost {
		return NotRedeemableError{WishID: w.ID, Reason: "not enough points"}
	}
	return nil
}
