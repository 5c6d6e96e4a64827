package engine

import (
	"testing"
	"time"
)

func TestEnergyChange(t *testing.T) {
	cases := []struct {
		grade   Grade
		minutes int
		want    float64
	}{
		{GradeS, 60, -21},  // 0.35/min depletion
		{GradeB, 100, -18}, // 0.18/min
		{GradeR1, 60, 6},   // recovery restores
		{GradeR3, 30, 9},
	}
	for _, tc := range cases {
		got, err := EnergyChange(tc.grade, tc.minutes)
		if err != nil {
			t.Fatalf("EnergyChange(%s, %d): %v", tc.grade, tc.minutes, err)
		}
		if !almostEqual(got, tc.want) {
			t.Fatalf("EnergyChange(%s, %d)=%v, want %v", tc.grade, tc.minutes, got, tc.want)
		}
	}

	if _, err := EnergyChange(Grade("Z"), 10); err == nil {
		t.Fatalf("expected error for unknown grade")
	}
	if _, err := EnergyChange(GradeS, -5); err == nil {
		t.Fatalf("expected error for negative duration")
	}
}

func TestClampEnergy(t *testing.T) {
	if got := ClampEnergy(-3); got != 0 {
		t.Fatalf("ClampEnergy(-3)=%v, want 0", got)
	}
	if got := ClampEnergy(999); got != EnergyMax {
		t.Fatalf("ClampEnergy(999)=%v, want %v", got, EnergyMax)
	}
	if got := ClampEnergy(57.5); got != 57.5 {
		t.Fatalf("ClampEnergy(57.5)=%v", got)
	}
}

func TestAutoRecoveryThreshold(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	// At or below 30 idle minutes nothing recovers; the threshold is strict.
	if got := AutoRecovery(now.Add(-29*time.Minute), now, 50); got != 0 {
		t.Fatalf("29 idle minutes recovered %v, want 0", got)
	}
	if got := AutoRecovery(now.Add(-30*time.Minute), now, 50); got != 0 {
		t.Fatalf("30 idle minutes recovered %v, want 0", got)
	}

	// 90 idle minutes: 60 recoverable at 0.02/min.
	if got := AutoRecovery(now.Add(-90*time.Minute), now, 50); !almostEqual(got, 1.2) {
		t.Fatalf("90 idle minutes recovered %v, want 1.2", got)
	}
}

func TestAutoRecoveryCappedByHeadroom(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	lastActive := now.Add(-48 * time.Hour)

	got := AutoRecovery(lastActive, now, 119.5)
	if !almostEqual(got, 0.5) {
		t.Fatalf("recovered %v, want 0.5 (headroom cap)", got)
	}
	if got := AutoRecovery(lastActive, now, EnergyMax); got != 0 {
		t.Fatalf("recovered %v at full energy, want 0", got)
	}
}

func TestInferRecoverySubgrade(t *testing.T) {
	cases := []struct {
		mood, minutes int
		want          Grade
	}{
		{5, 45, GradeR3},
		{4, 30, GradeR3},
		{4, 29, GradeR2}, // long-rest rule misses, medium rule catches
		{3, 15, GradeR2},
		{3, 14, GradeR1},
		{2, 10, GradeR1},
		{1, 120, GradeR1},
	}
	for _, tc := range cases {
		if got := InferRecoverySubgrade(tc.mood, tc.minutes); got != tc.want {
			t.Fatalf("InferRecoverySubgrade(%d, %d)=%s, want %s", tc.mood, tc.minutes, got, tc.want)
		}
	}
}

func TestResetEnergy(t *testing.T) {
	if got := ResetEnergy(0); got != 100 {
		t.Fatalf("ResetEnergy(0)=%v, want 100", got)
	}
	if got := ResetEnergy(15); got != 115 {
		t.Fatalf("ResetEnergy(15)=%v, want 115", got)
	}
	// Sleep bonus never pushes past the cap.
	if got := ResetEnergy(500); got != EnergyMax {
		t.Fatalf("ResetEnergy(500)=%v, want %v", got, EnergyMax)
	}
}

func TestEnergyStatus(t *testing.T) {
	cases := []struct {
		energy float64
		want   string
	}{
		{120, "energized"}, {91, "energized"}, {90, "good"}, {71, "good"},
		{70, "steady"}, {51, "steady"}, {50, "low"}, {31, "low"},
		{30, "depleted"}, {0, "depleted"},
	}
	for _, tc := range cases {
		if got := EnergyStatus(tc.energy); got != tc.want {
			t.Fatalf("EnergyStatus(%v)=%q, want %q", tc.energy, got, tc.want)
		}
	}
}
