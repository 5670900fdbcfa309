// Package catalog holds the fixed exercise library coaches build plans from.
// Built-in entries are process-wide constants; coach-created custom entries
// live in the CLI's local store and are merged in at display time.
package catalog

import "nakram/coach-builder/internal/domain"

// AllGroupsTab is the pseudo-group that shows the whole library.
const AllGroupsTab = "All"

// MuscleGroups is the fixed tab list, in display order.
var MuscleGroups = []string{AllGroupsTab, "Chest", "Back", "Legs", "Shoulders", "Arms", "Core", "Glutes", "Cardio"}

// All returns the built-in library, supplemental entries included.
func All() []domain.ExerciseDetail {
	out := make([]domain.ExerciseDetail, 0, len(builtin)+len(supplemental))
	out = append(out, builtin...)
	out = append(out, supplemental...)
	return out
}

// Filter returns the entries of the given muscle group, preserving order.
// The AllGroupsTab group returns everything.
func Filter(exercises []domain.ExerciseDetail, group string) []domain.ExerciseDetail {
	if group == AllGroupsTab || group == "" {
		return exercises
	}
	var out []domain.ExerciseDetail
	for _, ex := range exercises {
		if ex.MuscleGroup == group {
			out = append(out, ex)
		}
	}
	return out
}

// Merge appends a coach's custom entries after the built-in library.
func Merge(base, custom []domain.ExerciseDetail) []domain.ExerciseDetail {
	out := make([]domain.ExerciseDetail, 0, len(base)+len(custom))
	out = append(out, base...)
	out = append(out, custom...)
	return out
}

// Find looks an exercise up by id across the given entries.
func Find(exercises []domain.ExerciseDetail, id string) (domain.ExerciseDetail, bool) {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return domain.ExerciseDetail{}, false
}
