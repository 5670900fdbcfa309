package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutLog is one row per generated plan (workout or meal plan), tagged
// with the owning coach code. Rows are append-only: they are never updated,
// and are removed only by the admin bulk reset. CommissionAmount is fixed at
// insert time from the coach's configured rate (or an explicit override) and
// is never recomputed afterwards; admin aggregation sums the stored value.
type WorkoutLog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachCode        string             `bson:"coach_code" json:"coach_code"`
	ClientName       string             `bson:"client_name" json:"client_name"`
	ClientGender     string             `bson:"client_gender" json:"client_gender"`
	ClientAge        float64            `bson:"client_age" json:"client_age"`
	ClientHeightCm   float64            `bson:"client_height_cm" json:"client_height_cm"`
	ClientWeightKg   float64            `bson:"client_weight_kg" json:"client_weight_kg"`
	CourseName       string             `bson:"course_name,omitempty" json:"course_name,omitempty"`
	Exercises        ExercisePayload    `bson:"exercises_json" json:"exercises_json"`
	CommissionAmount float64            `bson:"commission_amount" json:"commission_amount"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}

// IsMealPlan classifies the row for admin aggregation: either the course name
// carries the meal plan prefix, or the payload starts with the sentinel entry.
func (w *WorkoutLog) IsMealPlan() bool {
	if strings.HasPrefix(w.CourseName, MealPlanCoursePrefix) {
		return true
	}
	return w.Exercises.IsMealPlan()
}
