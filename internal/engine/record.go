package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"timescore/internal/storage"
)

type RecordInput struct {
	Name string
	// Grade is one of the 8 concrete grades, the generic "R" (resolved via
	// InferRecoverySubgrade), or empty to fall back to the behavior catalog.
	Grade           string
	DurationMinutes int
	Mood            int
	Note            *string
	Now             time.Time
}

type RecordResult struct {
	BehaviorID      int64
	Grade           Grade
	Score           float64
	EnergyChange    float64
	RecoveredEnergy float64
	DailyReset      bool
	ComboCount      int
	TotalPoints     float64
	CurrentEnergy   float64
}

// RecordBehavior runs the full recording pipeline: daily reset, passive
// recovery, grade resolution, scoring with anti-grind damping, and the energy
// update, then persists the record and the mutated account atomically.
func (s *Service) RecordBehavior(ctx context.Context, in RecordInput) (*RecordResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ValidationError{Field: "behavior name", Reason: "must not be blank"}
	}
	if in.Mood < 1 || in.Mood > 5 {
		return nil, ValidationError{Field: "mood", Reason: "must be between 1 and 5"}
	}
	if in.DurationMinutes <= 0 {
		return nil, ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}
	now := in.Now

	grade, err := s.resolveGrade(ctx, name, in.Grade, in.Mood, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	account, reset, err := s.getAccount(ctx, now)
	if err != nil {
		return nil, err
	}

	var recovered float64
	if account.LastRecordAt != nil {
		recovered = AutoRecovery(*account.LastRecordAt, now, account.CurrentEnergy)
		account.CurrentEnergy = ClampEnergy(account.CurrentEnergy + recovered)
	}

	dayStart, _ := dayBounds(now)
	today, err := s.behaviors.ListBetween(ctx, dayStart, now)
	if err != nil {
		return nil, err
	}
	total, err := s.behaviors.Count(ctx)
	if err != nil {
		return nil, err
	}

	combo := comboCount(today)
	score, err := CalculateScore(grade, in.DurationMinutes, account.CurrentEnergy, combo, total, now)
	if err != nil {
		return nil, err
	}
	score = ApplyBalanceAdjustments(score, grade, balanceContext(today, name, grade, now))

	delta, err := EnergyChange(grade, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	account.TotalPoints += score
	account.CurrentEnergy = ClampEnergy(account.CurrentEnergy + delta)
	recordedAt := now
	account.LastRecordAt = &recordedAt

	var id int64
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		id, err = s.behaviors.InsertTx(ctx, tx, storage.BehaviorInsert{
			Name:            name,
			Grade:           string(grade),
			DurationMinutes: in.DurationMinutes,
			Mood:            in.Mood,
			Note:            in.Note,
			Score:           score,
			EnergyChange:    delta,
			RecordedAt:      recordedAt,
		})
		if err != nil {
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

	return &RecordResult{
		BehaviorID:      id,
		Grade:           grade,
		Score:           score,
		EnergyChange:    delta,
		RecoveredEnergy: recovered,
		DailyReset:      reset,
		ComboCount:      combo,
		TotalPoints:     account.TotalPoints,
		CurrentEnergy:   account.CurrentEnergy,
	}, nil
}

func (s *Service) resolveGrade(ctx context.Context, name, raw string, mood, durationMinutes int) (Grade, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		def, err := s.defs.GetByName(ctx, name)
		if err != nil {
			return "", err
		}
		if def == nil {
			return "", ValidationError{Field: "grade", Reason: fmt.Sprintf("required: %q is not in the behavior catalog", name)}
		}
		if def.Grade == "R" {
			return InferRecoverySubgrade(mood, durationMinutes), nil
		}
		return ParseGrade(def.Grade)
	case "R":
		return InferRecoverySubgrade(mood, durationMinutes), nil
	default:
		return ParseGrade(raw)
	}
}

type DeleteResult struct {
	BehaviorID     int64
	PointsReversed float64
	EnergyReversed float64
	TotalPoints    float64
	CurrentEnergy  float64
}

// DeleteBehavior removes a record and reverses its effect on the account's
// point and energy totals (energy stays clamped to [0, EnergyMax]).
func (s *Service) DeleteBehavior(ctx context.Context, id int64) (*DeleteResult, error) {
	b, err := s.behaviors.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("behavior %d not found", id)
	}

	account, err := s.accounts.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	account.TotalPoints -= b.Score
	account.CurrentEnergy = ClampEnergy(account.CurrentEnergy - b.EnergyChange)

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.behaviors.DeleteTx(ctx, tx, id); err != nil {
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

	return &DeleteResult{
		BehaviorID:     id,
		PointsReversed: b.Score,
		EnergyReversed: b.EnergyChange,
		TotalPoints:    account.TotalPoints,
		CurrentEnergy:  account.CurrentEnergy,
	}, nil
}
