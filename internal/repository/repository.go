package repository

import (
	"context"

	"nakram/coach-builder/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AccessCodeRepository is the read surface over the access code directory.
// The app never mutates the directory; Upsert exists only for the out-of-band
// seeding tool.
type AccessCodeRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.AccessCode, error)
	// GetCoachByCode looks up a code constrained to role=coach. Admin codes
	// and unknown codes both come back as ErrNotFound.
	GetCoachByCode(ctx context.Context, code string) (*domain.AccessCode, error)
	Upsert(ctx context.Context, ac *domain.AccessCode) error
}

// WorkoutLogRepository defines the interface for the workout/meal log table.
type WorkoutLogRepository interface {
	Insert(ctx context.Context, logRow *domain.WorkoutLog) (primitive.ObjectID, error)
	// ListAll returns every row, newest first. No pagination; the result set
	// is unbounded.
	ListAll(ctx context.Context) ([]domain.WorkoutLog, error)
	ListIDs(ctx context.Context) ([]primitive.ObjectID, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
