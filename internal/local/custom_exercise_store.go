package local

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nakram/coach-builder/internal/domain"

	"github.com/google/uuid"
)

// ErrExerciseNotFound is returned when deleting an id the coach doesn't own.
var ErrExerciseNotFound = errors.New("custom exercise not found")

// CustomExerciseStore persists a coach's own catalog additions, scoped by
// coach code so two coaches sharing a machine don't see each other's entries.
type CustomExerciseStore struct {
	db *sql.DB
}

// NewCustomExerciseStore creates a CustomExerciseStore over the local database.
func NewCustomExerciseStore(db *sql.DB) *CustomExerciseStore {
	return &CustomExerciseStore{db: db}
}

// List returns the coach's custom entries, oldest first.
func (s *CustomExerciseStore) List(ctx context.Context, coachCode string) ([]domain.ExerciseDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, muscle_group, image_url FROM custom_exercise WHERE coach_code = ? ORDER BY created_at, id",
		coachCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ExerciseDetail
	for rows.Next() {
		ex := domain.ExerciseDetail{IsCustom: true}
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}

// Add creates a custom entry for the coach and returns it with its new id.
func (s *CustomExerciseStore) Add(ctx context.Context, coachCode, name, muscleGroup string) (domain.ExerciseDetail, error) {
	if name == "" {
		return domain.ExerciseDetail{}, errors.New("custom exercise name is required")
	}

	ex := domain.ExerciseDetail{
		ID:          "custom-" + uuid.NewString(),
		Name:        name,
		MuscleGroup: muscleGroup,
		ImageURL:    "https://placehold.co/600x400/png?text=Custom",
		IsCustom:    true,
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO custom_exercise (id, coach_code, name, muscle_group, image_url, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		ex.ID, coachCode, ex.Name, ex.MuscleGroup, ex.ImageURL,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return domain.ExerciseDetail{}, err
	}
	return ex, nil
}

// Delete removes one of the coach's custom entries by id.
func (s *CustomExerciseStore) Delete(ctx context.Context, coachCode, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM custom_exercise WHERE coach_code = ? AND id = ?", coachCode, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
