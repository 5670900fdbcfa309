package service

import (
	"context"
	"time"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes shared by the service tests.

type fakeAccessCodeRepo struct {
	rows map[string]*domain.AccessCode
	err  error // injected store failure
}

func newFakeAccessCodeRepo(rows ...*domain.AccessCode) *fakeAccessCodeRepo {
	m := make(map[string]*domain.AccessCode)
	for _, r := range rows {
		m[r.Code] = r
	}
	return &fakeAccessCodeRepo{rows: m}
}

func (f *fakeAccessCodeRepo) GetByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	if ac, ok := f.rows[code]; ok {
		cp := *ac
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccessCodeRepo) GetCoachByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	if ac, ok := f.rows[code]; ok && ac.Role == domain.RoleCoach {
		cp := *ac
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccessCodeRepo) Upsert(ctx context.Context, ac *domain.AccessCode) error {
	if f.err != nil {
		return f.err
	}
	cp := *ac
	f.rows[ac.Code] = &cp
	return nil
}

type fakeWorkoutLogRepo struct {
	rows      []domain.WorkoutLog
	insertErr error
	listErr   error
	deleteErr error
}

func (f *fakeWorkoutLogRepo) Insert(ctx context.Context, row *domain.WorkoutLog) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	row.ID = primitive.NewObjectID()
	row.CreatedAt = time.Now().UTC()
	f.rows = append(f.rows, *row)
	return row.ID, nil
}

// ListAll returns newest first, mirroring the created_at sort of the real
// repository.
func (f *fakeWorkoutLogRepo) ListAll(ctx context.Context) ([]domain.WorkoutLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.WorkoutLog, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeWorkoutLogRepo) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]primitive.ObjectID, 0, len(f.rows))
	for _, r := range f.rows {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func (f *fakeWorkoutLogRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	keep := f.rows[:0]
	var deleted int64
	for _, row := range f.rows {
		found := false
		for _, id := range ids {
			if row.ID == id {
				found = true
				break
			}
		}
		if found {
			deleted++
		} else {
			keep = append(keep, row)
		}
	}
	f.rows = keep
	return deleted, nil
}
