package engine

import "fmt"

// UnknownGradeError indicates a grade string outside the fixed table.
// Callers must correct the input before resubmitting; there is no default.
type UnknownGradeError struct {
	Grade string
}

func (e UnknownGradeError) Error() string {
	return fmt.Sprintf("unknown grade %q (expected S, A, B, C, D, R1, R2 or R3)", e.Grade)
}

// ValidationError indicates malformed input (blank name, cost below floor, ...).
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotRedeemableError indicates a wish that cannot be redeemed right now:
// it is already redeemed, or the point balance does not cover its cost.
type NotRedeemableError struct {
	WishID int64
	Reason string
}

func (e NotRedeemableError) Error() string {
	return fmt.Sprintf("wish %d cannot be redeemed: %s", e.WishID, e.Reason)
}

// DailyLimitExceededError indicates the per-day redemption cap was hit.
// It clears naturally at the next calendar day.
type DailyLimitExceededError struct {
	Limit int
}

func (e DailyLimitExceededError) Error() string {
	return fmt.Sprintf("daily redemption limit reached (%d per day)", e.Limit)
}
