package engine

import (
	"math"
	"sort"
	"time"

	"timescore/internal/storage"
)

type Statistics struct {
	// Streak is the run of consecutive calendar days, ending today, with at
	// least one record. An empty today means streak 0.
	Streak         int
	Efficiency     float64 // percent of records graded S/A/B
	AverageMood    float64
	TotalBehaviors int
}

// ComputeStatistics derives streak/efficiency/mood from the full behavior log.
// Calendar days are taken in now's location.
func ComputeStatistics(behaviors []storage.Behavior, now time.Time) Statistics {
	stats := Statistics{TotalBehaviors: len(behaviors)}
	if len(behaviors) == 0 {
		return stats
	}

	days := make(map[string]bool, len(behaviors))
	positive := 0
	moodSum := 0
	for _, b := range behaviors {
		days[dayKey(b.RecordedAt, now.Location())] = true
		if Grade(b.Grade).IsPositive() {
			positive++
		}
		moodSum += b.Mood
	}

	day := now
	for days[dayKey(day, now.Location())] {
		stats.Streak++
		day = day.AddDate(0, 0, -1)
	}

	stats.Efficiency = float64(positive) / float64(len(behaviors)) * 100
	stats.AverageMood = float64(moodSum) / float64(len(behaviors))
	return stats
}

// ContributionItem is one (name, grade) group in a day's breakdown.
type ContributionItem struct {
	Name         string
	Grade        Grade
	TotalScore   float64
	TotalMinutes int
	Count        int
}

type DailyContribution struct {
	Items []ContributionItem
	// PositiveScore sums all groups with a positive total; NegativeScore
	// sums the negative ones and is itself <= 0.
	PositiveScore float64
	NegativeScore float64
}

// ComputeDailyContribution groups the target day's records by (name, grade)
// and splits the grouped totals into positive and negative, ordered by
// |total| descending for display priority.
func ComputeDailyContribution(behaviors []storage.Behavior, date time.Time) DailyContribution {
	target := dayKey(date, date.Location())

	type groupKey struct {
		name  string
		grade string
	}
	groups := map[groupKey]*ContributionItem{}
	var order []groupKey

	for _, b := range behaviors {
		if dayKey(b.RecordedAt, date.Location()) != target {
			continue
		}
		key := groupKey{name: b.Name, grade: b.Grade}
		item, ok := groups[key]
		if !ok {
			item = &ContributionItem{Name: b.Name, Grade: Grade(b.Grade)}
			groups[key] = item
			order = append(order, key)
		}
		item.TotalScore += b.Score
		item.TotalMinutes += b.DurationMinutes
		item.Count++
	}

	var out DailyContribution
	for _, key := range order {
		item := groups[key]
		out.Items = append(out.Items, *item)
		if item.TotalScore >= 0 {
			out.PositiveScore += item.TotalScore
		} else {
			out.NegativeScore += item.TotalScore
		}
	}
	sort.SliceStable(out.Items, func(i, j int) bool {
		return math.Abs(out.Items[i].TotalScore) > math.Abs(out.Items[j].TotalScore)
	})
	return out
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
