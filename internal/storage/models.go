package storage

import "time"

// WishStatus values. A wish is created pending and flips to redeemed exactly
// once; there is no reverse transition.
const (
	WishStatusPending  = "pending"
	WishStatusRedeemed = "redeemed"
)

type Account struct {
	Key           string
	TotalPoints   float64
	CurrentEnergy float64
	// LastResetDate is the local calendar day ("2006-01-02") of the last
	// daily energy reset; empty on a fresh account.
	LastResetDate string
	LastRecordAt  *time.Time
}

// Behavior is an immutable recorded fact. Score and energy change are frozen
// at recording time so deletion can reverse them exactly.
type Behavior struct {
	ID              int64
	Name            string
	Grade           string
	DurationMinutes int
	Mood            int
	Note            *string
	Score           float64
	EnergyChange    float64
	RecordedAt      time.Time
}

// BehaviorDef is a named behavior in the user's catalog, pinned to a grade.
type BehaviorDef struct {
	ID       int64
	Name     string
	Grade    string
	Category string
}

type Wish struct {
	ID         int64
	Name       string
	Cost       float64
	Status     string
	Progress   float64
	CreatedAt  time.Time
	RedeemedAt *time.Time
}
