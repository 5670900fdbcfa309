// Package report is the read-side fold behind the admin dashboard. It takes
// the rows fetched from the listing endpoint and aggregates them per coach;
// no side effects, no store access.
package report

import (
	"sort"

	"nakram/coach-builder/internal/domain"
)

// UnknownCoachKey buckets rows whose coach code is missing.
const UnknownCoachKey = "Unknown"

// CoachSummary is one coach's aggregate line.
type CoachSummary struct {
	CoachCode  string
	Workouts   int
	MealPlans  int
	Commission float64
}

// Rows returns the total row count for the coach.
func (s CoachSummary) Rows() int {
	return s.Workouts + s.MealPlans
}

// Summary is the full dashboard aggregate.
type Summary struct {
	Coaches         []CoachSummary // sorted by coach code for stable display
	TotalRows       int
	TotalCommission float64
}

// Aggregate partitions rows by coach code, classifies each row as a workout
// or a meal plan, and sums the stored commission amounts. The stored amount
// is authoritative; rates are never re-looked-up. An empty input yields an
// empty summary, not an error.
func Aggregate(rows []domain.WorkoutLog) Summary {
	byCoach := make(map[string]*CoachSummary)

	var summary Summary
	for i := range rows {
		row := &rows[i]

		coach := row.CoachCode
		if coach == "" {
			coach = UnknownCoachKey
		}

		entry, ok := byCoach[coach]
		if !ok {
			entry = &CoachSummary{CoachCode: coach}
			byCoach[coach] = entry
		}

		if row.IsMealPlan() {
			entry.MealPlans++
		} else {
			entry.Workouts++
		}
		entry.Commission += row.CommissionAmount

		summary.TotalRows++
		summary.TotalCommission += row.CommissionAmount
	}

	summary.Coaches = make([]CoachSummary, 0, len(byCoach))
	for _, entry := range byCoach {
		summary.Coaches = append(summary.Coaches, *entry)
	}
	sort.Slice(summary.Coaches, func(i, j int) bool {
		return summary.Coaches[i].CoachCode < summary.Coaches[j].CoachCode
	})

	return summary
}
