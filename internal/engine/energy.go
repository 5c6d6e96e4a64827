package engine

import "time"

const (
	// EnergyMax is the hard cap on current energy. Energy lives in [0, EnergyMax].
	EnergyMax = 120.0

	// ResetBaseline is the energy an account starts each new day with,
	// before any configured sleep bonus.
	ResetBaseline = 100.0

	// IdleRecoveryThresholdMinutes is how long the account must sit idle
	// before passive recovery starts. Exactly 30 idle minutes recovers
	// nothing; recovery accrues only for minutes beyond the threshold.
	IdleRecoveryThresholdMinutes = 30.0

	// IdleRecoveryRate is energy regained per recoverable idle minute.
	IdleRecoveryRate = 0.02
)

// EnergyChange computes the energy delta for one behavior.
// Work grades deplete (negative delta); recovery grades restore (positive
// delta, since their per-minute cost is negative). Callers apply the delta
// and clamp via ClampEnergy.
func EnergyChange(grade Grade, durationMinutes int) (float64, error) {
	info, err := LookupGrade(grade)
	if err != nil {
		return 0, err
	}
	if durationMinutes <= 0 {
		return 0, ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}
	return -(info.EnergyCostPerMinute * float64(durationMinutes)), nil
}

// ClampEnergy keeps an energy value inside [0, EnergyMax].
func ClampEnergy(energy float64) float64 {
	if energy < 0 {
		return 0
	}
	if energy > EnergyMax {
		return EnergyMax
	}
	return energy
}

// AutoRecovery returns the passive energy regained between lastActiveAt and
// now, capped by the headroom left under EnergyMax. The caller applies the
// returned delta.
func AutoRecovery(lastActiveAt, now time.Time, currentEnergy float64) float64 {
	minutesIdle := now.Sub(lastActiveAt).Minutes()
	if minutesIdle <= IdleRecoveryThresholdMinutes {
		return 0
	}
	recovery := (minutesIdle - IdleRecoveryThresholdMinutes) * IdleRecoveryRate
	headroom := EnergyMax - currentEnergy
	if headroom < 0 {
		return 0
	}
	if recovery > headroom {
		return headroom
	}
	return recovery
}

// InferRecoverySubgrade resolves the generic "R" grade to a concrete tier.
// First match wins: a long, good-mood rest is deep recovery; a medium one is
// R2; everything else is a light unwind.
func InferRecoverySubgrade(mood, durationMinutes int) Grade {
	switch {
	case mood >= 4 && durationMinutes >= 30:
		return GradeR3
	case mood >= 3 && durationMinutes >= 15:
		return GradeR2
	default:
		return GradeR1
	}
}

// ResetEnergy returns the energy an account carries into a new day.
// sleepBonus is an open tuning parameter (default 0) on top of the baseline.
func ResetEnergy(sleepBonus float64) float64 {
	return ClampEnergy(ResetBaseline + sleepBonus)
}

// SameLocalDay reports whether a and b fall on the same local calendar day.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EnergyStatus buckets current energy into a short human label.
func EnergyStatus(energy float64) string {
	switch {
	case energy > 90:
		return "energized"
	case energy > 70:
		return "good"
	case energy > 50:
		return "steady"
	case energy > 30:
		return "low"
	default:
		return "depleted"
	}
}
