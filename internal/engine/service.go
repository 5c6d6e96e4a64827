package engine

import (
	"context"
	"database/sql"
	"time"

	"timescore/internal/storage"
)

// Service wires the pure rules to the repos and owns the
// read -> compute -> write discipline. All mutations of the account plus a
// record or wish happen inside one transaction.
type Service struct {
	db        *sql.DB
	accounts  *storage.AccountRepo
	behaviors *storage.BehaviorRepo
	defs      *storage.BehaviorDefRepo
	wishes    *storage.WishRepo

	// SleepBonus is added to the reset baseline on the first record of a
	// new day. Open tuning parameter, zero by default.
	SleepBonus float64
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:        db,
		accounts:  storage.NewAccountRepo(db),
		behaviors: storage.NewBehaviorRepo(db),
		defs:      storage.NewBehaviorDefRepo(db),
		wishes:    storage.NewWishRepo(db),
	}
}

func (s *Service) AccountRepo() *storage.AccountRepo         { return s.accounts }
func (s *Service) BehaviorRepo() *storage.BehaviorRepo       { return s.behaviors }
func (s *Service) BehaviorDefRepo() *storage.BehaviorDefRepo { return s.defs }
func (s *Service) WishRepo() *storage.WishRepo               { return s.wishes }

// getAccount loads the singleton account and applies the daily reset rule:
// entering a new local day resets energy to the baseline before anything is
// scored, so stale low energy never carries over indefinitely.
func (s *Service) getAccount(ctx context.Context, now time.Time) (*storage.Account, bool, error) {
	a, err := s.accounts.GetOrCreateMain(ctx)
	if err != nil {
		return nil, false, err
	}
	today := now.Format("2006-01-02")
	if a.LastResetDate == today {
		return a, false, nil
	}
	a.CurrentEnergy = ResetEnergy(s.SleepBonus)
	a.LastResetDate = today
	return a, true, nil
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// comboCount is the trailing run of positive (S/A/B) records in today's log.
func comboCount(today []storage.Behavior) int {
	n := 0
	for i := len(today) - 1; i >= 0; i-- {
		if !Grade(today[i].Grade).IsPositive() {
			break
		}
		n++
	}
	return n
}

// balanceContext derives the anti-grind facts for a new record from today's log.
func balanceContext(today []storage.Behavior, name string, grade Grade, now time.Time) BalanceContext {
	ctx := BalanceContext{MinutesSinceSameBehavior: -1}
	for _, b := range today {
		if b.Name == name && b.Grade == string(grade) {
			ctx.SameBehaviorCountToday++
			ctx.MinutesSinceSameBehavior = now.Sub(b.RecordedAt).Minutes()
		}
	}
	for i := len(today) - 1; i >= 0; i-- {
		if !Grade(today[i].Grade).IsRecovery() {
			break
		}
		ctx.ConsecutiveRecovery++
	}
	return ctx
}
