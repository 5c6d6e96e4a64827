package engine

import (
	"context"
	"time"

	"timescore/internal/storage"
)

// Stats aggregates the whole behavior log into streak/efficiency/mood.
func (s *Service) Stats(ctx context.Context, now time.Time) (Statistics, error) {
	all, err := s.behaviors.ListAll(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return ComputeStatistics(all, now), nil
}

// DailyReport returns the given day's records and their contribution breakdown.
func (s *Service) DailyReport(ctx context.Context, date time.Time) ([]storage.Behavior, DailyContribution, error) {
	dayStart, dayEnd := dayBounds(date)
	records, err := s.behaviors.ListBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, DailyContribution{}, err
	}
	return records, ComputeDailyContribution(records, date), nil
}

type EnergySnapshot struct {
	CurrentEnergy   float64
	Status          string
	PendingRecovery float64
	DailyReset      bool
	TotalPoints     float64
}

// Energy reports current energy with the reset rule applied and the passive
// recovery that would land on the next record. Read-only: nothing persists
// until a behavior is actually recorded.
func (s *Service) Energy(ctx context.Context, now time.Time) (*EnergySnapshot, error) {
	account, reset, err := s.getAccount(ctx, now)
	if err != nil {
		return nil, err
	}
	var pending float64
	if account.LastRecordAt != nil {
		pending = AutoRecovery(*account.LastRecordAt, now, account.CurrentEnergy)
	}
	return &EnergySnapshot{
		CurrentEnergy:   account.CurrentEnergy,
		Status:          EnergyStatus(account.CurrentEnergy),
		PendingRecovery: pending,
		DailyReset:      reset,
		TotalPoints:     account.TotalPoints,
	}, nil
}

// DefineBehavior adds or repoints a named behavior in the catalog. The grade
// may be the generic "R"; it is resolved per record, from mood and duration.
func (s *Service) DefineBehavior(ctx context.Context, name, grade, category string) (*storage.BehaviorDef, error) {
	if name == "" {
		return nil, ValidationError{Field: "behavior name", Reason: "must not be blank"}
	}
	if grade != "R" && !Grade(grade).IsValid() {
		return nil, UnknownGradeError{Grade: grade}
	}
	def := storage.BehaviorDef{Name: name, Grade: grade, Category: category}
	id, err := s.defs.Upsert(ctx, def)
	if err != nil {
		return nil, err
	}
	def.ID = id
	return &def, nil
}
