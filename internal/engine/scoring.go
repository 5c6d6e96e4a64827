package engine

import "time"

const (
	// ComboBigBonus applies from 5 consecutive positive recordings.
	ComboBigBonus = 1.2
	// ComboSmallBonus applies from 3 consecutive positive recordings.
	ComboSmallBonus = 1.1

	// MorningBonus applies when the local hour of the recording is 5-8.
	MorningBonus    = 1.15
	MorningHourFrom = 5
	MorningHourTo   = 8

	// NoviceThreshold is the record count below which the onboarding bonus
	// still applies; the bonus decays by NoviceDecayStep per prior record.
	NoviceThreshold = 10
	NoviceDecayStep = 0.02
)

// CalculateScore computes the final score for one behavior.
//
// Every factor is multiplicative and applied in a fixed order:
// base (grade rate x duration), energy coefficient, combo coefficient,
// early-morning bonus, novice bonus. Nothing is clamped: negative grades
// legitimately score negative. comboCount and totalBehaviorsSoFar are
// caller-supplied so the result is fully determined by its arguments.
func CalculateScore(grade Grade, durationMinutes int, currentEnergy float64, comboCount int, totalBehaviorsSoFar int, now time.Time) (float64, error) {
	info, err := LookupGrade(grade)
	if err != nil {
		return 0, err
	}
	if durationMinutes <= 0 {
		return 0, ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}

	base := info.BaseScorePerMinute * float64(durationMinutes)
	score := base *
		energyCoefficient(grade, currentEnergy) *
		comboCoefficient(comboCount) *
		startBonus(now) *
		noviceBonus(totalBehaviorsSoFar)
	return score, nil
}

// energyCoefficient rewards acting at high energy and softly penalizes acting
// while depleted. Recovery grades are not modulated: resting while exhausted
// must not score worse. Both boundaries (30 and 70) fall in the flat branch.
func energyCoefficient(grade Grade, energy float64) float64 {
	if grade.IsRecovery() {
		return 1.0
	}
	switch {
	case energy > 70:
		return 1.0 + (energy-70)/100
	case energy >= 30:
		return 1.0
	default:
		return 0.8 + energy/150
	}
}

func comboCoefficient(combo int) float64 {
	switch {
	case combo >= 5:
		return ComboBigBonus
	case combo >= 3:
		return ComboSmallBonus
	default:
		return 1.0
	}
}

func startBonus(now time.Time) float64 {
	h := now.Hour()
	if h >= MorningHourFrom && h <= MorningHourTo {
		return MorningBonus
	}
	return 1.0
}

func noviceBonus(totalBehaviorsSoFar int) float64 {
	if totalBehaviorsSoFar >= NoviceThreshold {
		return 1.0
	}
	if totalBehaviorsSoFar < 0 {
		totalBehaviorsSoFar = 0
	}
	return 1.0 + float64(NoviceThreshold-totalBehaviorsSoFar)*NoviceDecayStep
}
