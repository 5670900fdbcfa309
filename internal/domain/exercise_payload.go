package domain

import (
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Meal plan tagging. A meal plan row is a workout_logs row whose course name
// carries the prefix, or whose exercise payload starts with the sentinel entry.
const (
	MealPlanCoursePrefix = "[MEAL PLAN] "
	MealPlanSentinelID   = "meal-plan"
)

// ErrInvalidExercisePayload is returned when the payload is neither a list
// nor a per-day map, or when it is empty.
var ErrInvalidExercisePayload = errors.New("exercises_json must be a non-empty array or object")

// ExerciseDetail is one selected exercise with its per-plan set/rep counts.
type ExerciseDetail struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	MuscleGroup    string `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`
	ImageURL       string `bson:"imageUrl,omitempty" json:"imageUrl"`
	Sets           int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps           int    `bson:"reps,omitempty" json:"reps,omitempty"`
	IsCustom       bool   `bson:"isCustom,omitempty" json:"isCustom,omitempty"`
	IsSupplemental bool   `bson:"isSupplemental,omitempty" json:"isSupplemental,omitempty"`
}

// ExercisePayload is the exercises_json column. The canonical shape is the
// flat ordered list; the nested per-day map is the legacy shape still emitted
// by older clients and is accepted and persisted as-is. Exactly one of List
// and ByDay is set on a valid payload. List order survives the JSON->BSON->JSON
// round trip unchanged; day-map key order is not guaranteed.
type ExercisePayload struct {
	List  []ExerciseDetail
	ByDay map[string][]ExerciseDetail
}

// NewExerciseList wraps a flat ordered selection in a payload.
func NewExerciseList(list []ExerciseDetail) ExercisePayload {
	return ExercisePayload{List: list}
}

// MealPlanPayload is the sentinel payload logged for meal plan rows.
func MealPlanPayload() ExercisePayload {
	return ExercisePayload{List: []ExerciseDetail{{
		ID:          MealPlanSentinelID,
		Name:        "Custom Meal Plan",
		MuscleGroup: "Nutrition",
		Sets:        1,
		Reps:        1,
		IsCustom:    true,
	}}}
}

// Count returns the number of exercise entries across either shape.
func (p ExercisePayload) Count() int {
	if p.List != nil {
		return len(p.List)
	}
	n := 0
	for _, day := range p.ByDay {
		n += len(day)
	}
	return n
}

func (p ExercisePayload) IsEmpty() bool {
	return p.Count() == 0
}

// IsMealPlan reports whether the payload is the meal plan sentinel.
func (p ExercisePayload) IsMealPlan() bool {
	return len(p.List) > 0 && p.List[0].ID == MealPlanSentinelID
}

// Validate enforces the shape rule: a non-empty list or a per-day map with at
// least one exercise.
func (p ExercisePayload) Validate() error {
	if p.List == nil && p.ByDay == nil {
		return ErrInvalidExercisePayload
	}
	if p.IsEmpty() {
		return ErrInvalidExercisePayload
	}
	return nil
}

func (p ExercisePayload) MarshalJSON() ([]byte, error) {
	if p.List != nil {
		return json.Marshal(p.List)
	}
	if p.ByDay != nil {
		return json.Marshal(p.ByDay)
	}
	return []byte("null"), nil
}

func (p *ExercisePayload) UnmarshalJSON(data []byte) error {
	p.List = nil
	p.ByDay = nil

	var list []ExerciseDetail
	if err := json.Unmarshal(data, &list); err == nil {
		p.List = list
		return nil
	}

	var byDay map[string][]ExerciseDetail
	if err := json.Unmarshal(data, &byDay); err == nil {
		p.ByDay = byDay
		return nil
	}

	return ErrInvalidExercisePayload
}

// MarshalBSONValue stores the payload in its wire shape (array or document)
// rather than as a wrapper struct, so rows read back exactly as inserted.
func (p ExercisePayload) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.List != nil {
		return bson.MarshalValue(p.List)
	}
	if p.ByDay != nil {
		return bson.MarshalValue(p.ByDay)
	}
	return bson.MarshalValue(bson.A{})
}

func (p *ExercisePayload) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	p.List = nil
	p.ByDay = nil

	switch t {
	case bsontype.Array:
		var list []ExerciseDetail
		if err := bson.UnmarshalValue(t, data, &list); err != nil {
			return err
		}
		p.List = list
		return nil
	case bsontype.EmbeddedDocument:
		var byDay map[string][]ExerciseDetail
		if err := bson.UnmarshalValue(t, data, &byDay); err != nil {
			return err
		}
		p.ByDay = byDay
		return nil
	case bsontype.Null:
		return nil
	default:
		return ErrInvalidExercisePayload
	}
}
