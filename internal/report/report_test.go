package report

import (
	"testing"

	"nakram/coach-builder/internal/domain"
)

func workoutRow(coach string, commission float64) domain.WorkoutLog {
	return domain.WorkoutLog{
		CoachCode:        coach,
		ClientName:       "Client",
		CourseName:       "Strength Block",
		CommissionAmount: commission,
		Exercises:        domain.NewExerciseList([]domain.ExerciseDetail{{ID: "squat", Name: "Squat"}}),
	}
}

func mealPlanRow(coach string, commission float64) domain.WorkoutLog {
	row := workoutRow(coach, commission)
	row.CourseName = domain.MealPlanCoursePrefix + "Cut Week 1"
	row.Exercises = domain.MealPlanPayload()
	return row
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)
	if summary.TotalRows != 0 || summary.TotalCommission != 0 {
		t.Fatalf("expected zero totals, got %+v", summary)
	}
	if len(summary.Coaches) != 0 {
		t.Fatalf("expected no coach lines, got %d", len(summary.Coaches))
	}
}

func TestAggregate_PartitionsAndSums(t *testing.T) {
	rows := []domain.WorkoutLog{
		workoutRow("COACH-B", 2),
		workoutRow("COACH-A", 3),
		mealPlanRow("COACH-A", 2.5),
		workoutRow("COACH-A", 3),
	}

	summary := Aggregate(rows)

	if summary.TotalRows != 4 {
		t.Fatalf("expected 4 rows, got %d", summary.TotalRows)
	}
	if summary.TotalCommission != 10.5 {
		t.Fatalf("expected total commission 10.5, got %v", summary.TotalCommission)
	}

	// Sorted by coach code.
	if len(summary.Coaches) != 2 || summary.Coaches[0].CoachCode != "COACH-A" {
		t.Fatalf("expected sorted coach lines, got %+v", summary.Coaches)
	}

	a := summary.Coaches[0]
	if a.Workouts != 2 || a.MealPlans != 1 || a.Commission != 8.5 || a.Rows() != 3 {
		t.Fatalf("unexpected COACH-A line: %+v", a)
	}
}

func TestAggregate_MealPlanBySentinelPayload(t *testing.T) {
	// Sentinel payload without the course prefix still classifies as a meal plan.
	row := workoutRow("COACH-A", 2)
	row.Exercises = domain.MealPlanPayload()

	summary := Aggregate([]domain.WorkoutLog{row})
	if summary.Coaches[0].MealPlans != 1 || summary.Coaches[0].Workouts != 0 {
		t.Fatalf("expected meal plan classification, got %+v", summary.Coaches[0])
	}
}

func TestAggregate_MissingCoachBucketsAsUnknown(t *testing.T) {
	rows := []domain.WorkoutLog{
		workoutRow("", 1),
		workoutRow("COACH-A", 2),
	}

	summary := Aggregate(rows)
	if len(summary.Coaches) != 2 {
		t.Fatalf("expected two coach lines, got %+v", summary.Coaches)
	}

	var found bool
	for _, coach := range summary.Coaches {
		if coach.CoachCode == UnknownCoachKey {
			found = true
			if coach.Commission != 1 {
				t.Fatalf("unexpected unknown bucket: %+v", coach)
			}
		}
	}
	if !found {
		t.Fatalf("expected %q bucket, got %+v", UnknownCoachKey, summary.Coaches)
	}
}

func TestAggregate_StoredAmountIsAuthoritative(t *testing.T) {
	// Rows carry whatever was fixed at insert time; aggregation never rewrites.
	rows := []domain.WorkoutLog{
		workoutRow("COACH-A", 5.5),
		workoutRow("COACH-A", 0),
	}

	summary := Aggregate(rows)
	if summary.Coaches[0].Commission != 5.5 {
		t.Fatalf("expected 5.5, got %v", summary.Coaches[0].Commission)
	}
}
