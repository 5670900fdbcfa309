// Package nutrition derives calorie and protein targets from client
// measurements. Pure arithmetic; nothing here persists anything, and the
// result only enters a plan when the coach explicitly accepts it.
package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// ActivityLevel selects the TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"  // Little to no exercise
	ActivityLight      ActivityLevel = "light"      // Light exercise 1-3 days/week
	ActivityModerate   ActivityLevel = "moderate"   // Moderate exercise 3-5 days/week
	ActivityActive     ActivityLevel = "active"     // Heavy exercise 6-7 days/week
	ActivityVeryActive ActivityLevel = "veryActive" // Very heavy exercise, physical job
)

// Goal selects the caloric delta and protein multiplier.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalGain     Goal = "gain"
	GoalMaintain Goal = "maintain"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var (
	ErrIncompleteInput = errors.New("age, gender, height, and weight are required to calculate calories")
	ErrUnknownActivity = errors.New("unknown activity level")
	ErrUnknownGoal     = errors.New("unknown goal")
)

// Input is everything the calculator needs.
type Input struct {
	Age      int
	Gender   string // "Male", "Female", anything else uses the blended offset
	HeightCm float64
	WeightKg float64
	Activity ActivityLevel
	Goal     Goal
}

// Result is the derived plan target.
type Result struct {
	BMR            float64
	TDEE           float64
	TargetCalories int
	TargetProtein  int // grams
}

// Label renders the result the way the planner shows it.
func (r Result) Label() string {
	return fmt.Sprintf("%d kcal | %dg Protein", r.TargetCalories, r.TargetProtein)
}

// Calculate derives the calorie target via Mifflin-St Jeor, scaled by the
// activity multiplier and shifted by the goal delta. The gender offsets are
// +5 male, -161 female, and -78 as the blend for anything else.
func Calculate(in Input) (Result, error) {
	if in.Age <= 0 || in.Gender == "" || in.HeightCm <= 0 || in.WeightKg <= 0 {
		return Result{}, ErrIncompleteInput
	}

	mult, ok := activityMultipliers[in.Activity]
	if !ok {
		return Result{}, ErrUnknownActivity
	}

	var offset float64
	switch in.Gender {
	case "Male":
		offset = 5
	case "Female":
		offset = -161
	default:
		offset = -78
	}

	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age) + offset
	tdee := bmr * mult

	var delta, proteinPerKg float64
	switch in.Goal {
	case GoalLose:
		delta = -500
		proteinPerKg = 2.2 // Higher protein to preserve muscle in deficit
	case GoalGain:
		delta = 300
		proteinPerKg = 2.0
	case GoalMaintain:
		delta = 0
		proteinPerKg = 1.8
	default:
		return Result{}, ErrUnknownGoal
	}

	return Result{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: int(math.Round(tdee + delta)),
		TargetProtein:  int(math.Round(in.WeightKg * proteinPerKg)),
	}, nil
}
