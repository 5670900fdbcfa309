package domain

import (
	"time"
)

// Role type to distinguish between access code roles
type Role string

// Define constants for roles
const (
	RoleCoach Role = "coach"
	RoleAdmin Role = "admin"
)

// AccessCode is one row of the access code directory. It maps an opaque
// shared-secret code to a coach identity and a per-workout commission rate.
// Rows are created by out-of-band administration (see cmd/seedcodes), never
// through the app's exposed API.
type AccessCode struct {
	Code                 string    `bson:"code" json:"code"` // Should be unique
	Role                 Role      `bson:"role" json:"role"`
	CoachName            string    `bson:"coach_name" json:"coach_name"`
	CommissionPerWorkout float64   `bson:"commission_per_workout" json:"commission_per_workout"`
	CreatedAt            time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updatedAt"`
}

func (a *AccessCode) IsCoach() bool {
	return a.Role == RoleCoach
}

func (a *AccessCode) IsAdmin() bool {
	return a.Role == RoleAdmin
}
