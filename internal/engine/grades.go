package engine

import "strings"

type Grade string

const (
	GradeS  Grade = "S"
	GradeA  Grade = "A"
	GradeB  Grade = "B"
	GradeC  Grade = "C"
	GradeD  Grade = "D"
	GradeR1 Grade = "R1"
	GradeR2 Grade = "R2"
	GradeR3 Grade = "R3"
)

// GradeOrder is the display order for the grade table.
var GradeOrder = []Grade{GradeS, GradeA, GradeB, GradeC, GradeD, GradeR1, GradeR2, GradeR3}

func (g Grade) IsValid() bool {
	_, ok := gradeTable[g]
	return ok
}

// IsRecovery reports whether the grade is a recovery tier (R1/R2/R3).
func (g Grade) IsRecovery() bool {
	return strings.HasPrefix(string(g), "R")
}

// IsPositive reports whether the grade counts toward efficiency (S/A/B).
func (g Grade) IsPositive() bool {
	switch g {
	case GradeS, GradeA, GradeB:
		return true
	default:
		return false
	}
}

// GradeInfo holds the fixed per-grade coefficients plus display text.
type GradeInfo struct {
	BaseScorePerMinute  float64
	EnergyCostPerMinute float64
	Anchor              string
	Example             string
}

var gradeTable = map[Grade]GradeInfo{
	GradeS:  {1.8, 0.35, "breakthrough growth", "deep work, hard problems, intense training"},
	GradeA:  {1.2, 0.25, "real progress", "learning, creative work, focused reading"},
	GradeB:  {0.7, 0.18, "steady upkeep", "review, tidying, light exercise, chores"},
	GradeC:  {-0.5, 0.10, "time drifting away", "aimless scrolling, junk videos"},
	GradeD:  {-1.0, 0.15, "self-harm", "staying up late, bingeing, overindulging"},
	GradeR1: {0.2, -0.10, "light unwind", "tea, music, a short break"},
	GradeR2: {0.3, -0.20, "medium recovery", "a walk, yoga, casual reading"},
	GradeR3: {0.4, -0.30, "deep recovery", "nap, meditation, mindfulness"},
}

// LookupGrade returns the table entry for g.
// The grade set is closed and case-sensitive; anything else is an UnknownGradeError.
func LookupGrade(g Grade) (GradeInfo, error) {
	info, ok := gradeTable[g]
	if !ok {
		return GradeInfo{}, UnknownGradeError{Grade: string(g)}
	}
	return info, nil
}

// ParseGrade validates raw user input against the closed grade set.
// The generic "R" alias is NOT accepted here: callers must resolve it to a
// concrete subgrade via InferRecoverySubgrade first.
func ParseGrade(input string) (Grade, error) {
	g := Grade(strings.TrimSpace(input))
	if !g.IsValid() {
		return "", UnknownGradeError{Grade: input}
	}
	return g, nil
}
