package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"timescore/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setAccount(t *testing.T, svc *Service, mutate func(a *storage.Account)) {
	t.Helper()
	ctx := context.Background()
	a, err := svc.AccountRepo().GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	mutate(a)
	if err := svc.AccountRepo().Update(ctx, a); err != nil {
		t.Fatalf("update account: %v", err)
	}
}

func TestRecordScoresAndDeleteRollsBack(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "deep work",
		Grade:           "S",
		DurationMinutes: 60,
		Mood:            4,
		Now:             noon,
	})
	if err != nil {
		t.Fatalf("RecordBehavior: %v", err)
	}

	// First record of a fresh account: daily reset to 100, energy coeff
	// 1.3, novice bonus 1.2, nothing else: 1.8*60*1.3*1.2 = 168.48.
	if !almostEqual(res.Score, 168.48) {
		t.Fatalf("score=%v, want 168.48", res.Score)
	}
	if !res.DailyReset {
		t.Fatalf("expected daily reset on first record")
	}
	if !almostEqual(res.CurrentEnergy, 79) {
		t.Fatalf("energy=%v, want 79", res.CurrentEnergy)
	}

	a, err := svc.AccountRepo().GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !almostEqual(a.TotalPoints, 168.48) || !almostEqual(a.CurrentEnergy, 79) {
		t.Fatalf("account=%+v, want 168.48 points at energy 79", a)
	}

	// A wish created now is already fully covered.
	w, err := svc.CreateWish(ctx, "new keyboard", 150, noon)
	if err != nil {
		t.Fatalf("CreateWish: %v", err)
	}
	if !almostEqual(w.Progress, 1.0) {
		t.Fatalf("wish progress=%v, want 1.0", w.Progress)
	}

	del, err := svc.DeleteBehavior(ctx, res.BehaviorID)
	if err != nil {
		t.Fatalf("DeleteBehavior: %v", err)
	}
	if !almostEqual(del.TotalPoints, 0) {
		t.Fatalf("points after delete=%v, want 0", del.TotalPoints)
	}
	if !almostEqual(del.CurrentEnergy, 100) {
		t.Fatalf("energy after delete=%v, want 100", del.CurrentEnergy)
	}

	// Deleting the only record drained the balance, so progress drops too.
	pending, err := svc.PendingWishes(ctx)
	if err != nil {
		t.Fatalf("PendingWishes: %v", err)
	}
	if len(pending) != 1 || !almostEqual(pending[0].Progress, 0) {
		t.Fatalf("pending=%+v, want one wish at progress 0", pending)
	}

	if _, err := svc.DeleteBehavior(ctx, res.BehaviorID); err == nil {
		t.Fatalf("expected error deleting twice")
	}
}

func TestRecordResolvesGenericR(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "nap",
		Grade:           "R",
		DurationMinutes: 45,
		Mood:            5,
		Now:             noon,
	})
	if err != nil {
		t.Fatalf("RecordBehavior: %v", err)
	}
	if res.Grade != GradeR3 {
		t.Fatalf("grade=%s, want R3", res.Grade)
	}
	// 0.4*45 base, recovery untouched by energy, novice 1.2.
	if !almostEqual(res.Score, 21.6) {
		t.Fatalf("score=%v, want 21.6", res.Score)
	}
	if !almostEqual(res.EnergyChange, 13.5) {
		t.Fatalf("energy change=%v, want +13.5", res.EnergyChange)
	}
}

func TestRecordCatalogFallback(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.DefineBehavior(ctx, "yoga", "R2", "health"); err != nil {
		t.Fatalf("DefineBehavior: %v", err)
	}

	res, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "yoga",
		DurationMinutes: 20,
		Mood:            4,
		Now:             noon,
	})
	if err != nil {
		t.Fatalf("RecordBehavior: %v", err)
	}
	if res.Grade != GradeR2 {
		t.Fatalf("grade=%s, want R2 from catalog", res.Grade)
	}

	var ve ValidationError
	if _, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "unknown thing",
		DurationMinutes: 20,
		Mood:            3,
		Now:             noon,
	}); !errors.As(err, &ve) {
		t.Fatalf("uncataloged record error=%v, want ValidationError", err)
	}

	var ug UnknownGradeError
	if _, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "typo",
		Grade:           "Q",
		DurationMinutes: 20,
		Mood:            3,
		Now:             noon,
	}); !errors.As(err, &ug) {
		t.Fatalf("bad grade error=%v, want UnknownGradeError", err)
	}
}

func TestComboCountsTrailingPositives(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	at := noon
	for _, grade := range []string{"A", "B", "S"} {
		if _, err := svc.RecordBehavior(ctx, RecordInput{
			Name:            "work",
			Grade:           grade,
			DurationMinutes: 25,
			Mood:            4,
			Now:             at,
		}); err != nil {
			t.Fatalf("RecordBehavior(%s): %v", grade, err)
		}
		at = at.Add(30 * time.Minute)
	}

	res, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "more work",
		Grade:           "A",
		DurationMinutes: 25,
		Mood:            4,
		Now:             at,
	})
	if err != nil {
		t.Fatalf("RecordBehavior: %v", err)
	}
	if res.ComboCount != 3 {
		t.Fatalf("combo=%d, want 3", res.ComboCount)
	}
}

func TestDailyResetAndSleepBonus(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	svc.SleepBonus = 10

	setAccount(t, svc, func(a *storage.Account) {
		a.CurrentEnergy = 5
		a.LastResetDate = "2026-03-13"
	})

	res, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "deep work",
		Grade:           "S",
		DurationMinutes: 60,
		Mood:            4,
		Now:             noon, // 2026-03-14: a new day
	})
	if err != nil {
		t.Fatalf("RecordBehavior: %v", err)
	}
	if !res.DailyReset {
		t.Fatalf("expected daily reset")
	}
	// Reset to 110 before scoring, then -21 from the behavior.
	if !almostEqual(res.CurrentEnergy, 89) {
		t.Fatalf("energy=%v, want 89", res.CurrentEnergy)
	}
}

func TestAutoRecoveryOnRecord(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	last := noon.Add(-90 * time.Minute)
	setAccount(t, svc, func(a *storage.Account) {
		a.CurrentEnergy = 50
		a.LastResetDate = noon.Format("2006-01-02")
		a.LastRecordAt = &last
	})

	res, err := svc.RecordBehavior(ctx, RecordInput{
		Name:            "tea break",
		Grade:           "R1",
		DurationMinutes: 10,
		Mood:            3,
		Now:             noon,
	})
	if err != nil {
		t.Fatalf("RecordBehavior: %v", err)
	}
	if !almostEqual(res.RecoveredEnergy, 1.2) {
		t.Fatalf("recovered=%v, want 1.2 (60 recoverable minutes)", res.RecoveredEnergy)
	}
	// 50 + 1.2 idle recovery + 1.0 from ten R1 minutes.
	if !almostEqual(res.CurrentEnergy, 52.2) {
		t.Fatalf("energy=%v, want 52.2", res.CurrentEnergy)
	}
}

func TestEnergyStaysInRange(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	at := noon
	for i := 0; i < 8; i++ {
		res, err := svc.RecordBehavior(ctx, RecordInput{
			Name:            "grind",
			Grade:           "S",
			DurationMinutes: 300,
			Mood:            2,
			Now:             at,
		})
		if err != nil {
			t.Fatalf("RecordBehavior #%d: %v", i, err)
		}
		if res.CurrentEnergy < 0 || res.CurrentEnergy > EnergyMax {
			t.Fatalf("energy=%v out of [0, %v]", res.CurrentEnergy, EnergyMax)
		}
		at = at.Add(5 * time.Minute)
	}

	for i := 0; i < 8; i++ {
		res, err := svc.RecordBehavior(ctx, RecordInput{
			Name:            "mega nap",
			Grade:           "R3",
			DurationMinutes: 600,
			Mood:            5,
			Now:             at,
		})
		if err != nil {
			t.Fatalf("RecordBehavior #%d: %v", i, err)
		}
		if res.CurrentEnergy < 0 || res.CurrentEnergy > EnergyMax {
			t.Fatalf("energy=%v out of [0, %v]", res.CurrentEnergy, EnergyMax)
		}
		at = at.Add(5 * time.Minute)
	}
}

func TestWishRedemptionFlow(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setAccount(t, svc, func(a *storage.Account) {
		a.TotalPoints = 1000
	})

	var ids []int64
	for _, name := range []string{"book", "game", "dinner", "trip"} {
		w, err := svc.CreateWish(ctx, name, 100, noon)
		if err != nil {
			t.Fatalf("CreateWish(%s): %v", name, err)
		}
		ids = append(ids, w.ID)
	}

	for i := 0; i < 3; i++ {
		res, err := svc.RedeemWish(ctx, ids[i], noon)
		if err != nil {
			t.Fatalf("RedeemWish #%d: %v", i+1, err)
		}
		if res.RedeemedToday != i+1 {
			t.Fatalf("redeemedToday=%d, want %d", res.RedeemedToday, i+1)
		}
	}

	a, err := svc.AccountRepo().GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !almostEqual(a.TotalPoints, 700) {
		t.Fatalf("points=%v, want 700", a.TotalPoints)
	}

	// The 4th redemption on the same day hits the cap despite the balance.
	var dl DailyLimitExceededError
	if _, err := svc.RedeemWish(ctx, ids[3], noon); !errors.As(err, &dl) {
		t.Fatalf("4th redeem error=%v, want DailyLimitExceededError", err)
	}

	// Redeeming an already-redeemed wish never double-deducts.
	var nr NotRedeemableError
	if _, err := svc.RedeemWish(ctx, ids[0], noon); !errors.As(err, &nr) {
		t.Fatalf("double redeem error=%v, want NotRedeemableError", err)
	}
	a, _ = svc.AccountRepo().GetOrCreateMain(ctx)
	if !almostEqual(a.TotalPoints, 700) {
		t.Fatalf("points after failed redeems=%v, want 700", a.TotalPoints)
	}

	// The cap clears on the next calendar day.
	if _, err := svc.RedeemWish(ctx, ids[3], noon.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("next-day redeem: %v", err)
	}
}

func TestRedeemInsufficientPoints(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setAccount(t, svc, func(a *storage.Account) {
		a.TotalPoints = 50
	})

	w, err := svc.CreateWish(ctx, "too pricey", 200, noon)
	if err != nil {
		t.Fatalf("CreateWish: %v", err)
	}
	if !almostEqual(w.Progress, 0.25) {
		t.Fatalf("progress=%v, want 0.25", w.Progress)
	}

	var nr NotRedeemableError
	if _, err := svc.RedeemWish(ctx, w.ID, noon); !errors.As(err, &nr) {
		t.Fatalf("redeem error=%v, want NotRedeemableError", err)
	}
}

func TestStatisticsOverRecordedLog(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	days := []time.Time{noon.AddDate(0, 0, -2), noon.AddDate(0, 0, -1), noon}
	for _, at := range days {
		if _, err := svc.RecordBehavior(ctx, RecordInput{
			Name:            "reading",
			Grade:           "A",
			DurationMinutes: 30,
			Mood:            4,
			Now:             at,
		}); err != nil {
			t.Fatalf("RecordBehavior: %v", err)
		}
	}

	stats, err := svc.Stats(ctx, noon)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Streak != 3 {
		t.Fatalf("streak=%d, want 3", stats.Streak)
	}
	if !almostEqual(stats.Efficiency, 100) {
		t.Fatalf("efficiency=%v, want 100", stats.Efficiency)
	}

	_, contrib, err := svc.DailyReport(ctx, noon)
	if err != nil {
		t.Fatalf("DailyReport: %v", err)
	}
	if len(contrib.Items) != 1 || contrib.Items[0].Name != "reading" {
		t.Fatalf("contribution=%+v, want a single reading group", contrib)
	}
}
