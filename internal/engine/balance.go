package engine

// Anti-grind adjustments applied after CalculateScore. They damp repeated
// logging of the same behavior, rapid-fire short entries and recovery
// stacking, without touching the core scoring pipeline.
const (
	RepeatDampThreshold = 3 // same behavior logged this many times today already
	RepeatDampFactor    = 0.8

	ShortFrequencyWindowMinutes = 10.0
	ShortFrequencyFactor        = 0.7

	RecoveryStackThreshold = 2 // consecutive recovery records before this one
	RecoveryStackFactor    = 0.8
)

// BalanceContext describes the recent-history facts the adjustments need.
// All counts exclude the behavior being scored.
type BalanceContext struct {
	// SameBehaviorCountToday is how many records with the same name and
	// grade already exist on the current day.
	SameBehaviorCountToday int
	// MinutesSinceSameBehavior is the gap to the previous record of the
	// same behavior; negative when there is none.
	MinutesSinceSameBehavior float64
	// ConsecutiveRecovery is the trailing run of recovery-grade records.
	ConsecutiveRecovery int
}

// ApplyBalanceAdjustments damps a computed score according to ctx.
func ApplyBalanceAdjustments(score float64, grade Grade, ctx BalanceContext) float64 {
	adjusted := score
	if ctx.SameBehaviorCountToday >= RepeatDampThreshold {
		adjusted *= RepeatDampFactor
	}
	if ctx.MinutesSinceSameBehavior >= 0 && ctx.MinutesSinceSameBehavior < ShortFrequencyWindowMinutes {
		adjusted *= ShortFrequencyFactor
	}
	if grade.IsRecovery() && ctx.ConsecutiveRecovery >= RecoveryStackThreshold {
		adjusted *= RecoveryStackFactor
	}
	return adjusted
}
