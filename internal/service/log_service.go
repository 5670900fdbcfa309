package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/repository"
)

// --- Error Definitions ---
var (
	ErrCoachCodeMismatch = errors.New("coach_code must match your access code")
	ErrCoachNotFound     = errors.New("Invalid coach code")
)

// ValidationError reports the first failing field of a submission. Validation
// is sequential and stops at the first failure; later fields are not checked.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CreateLogRequest carries a plan submission after JSON binding. Numeric
// fields are pointers so that a missing value is distinguishable from zero.
type CreateLogRequest struct {
	CoachCode        string                 `json:"coach_code"`
	ClientName       string                 `json:"client_name"`
	ClientGender     string                 `json:"client_gender"`
	ClientAge        *float64               `json:"client_age"`
	ClientHeightCm   *float64               `json:"client_height_cm"`
	ClientWeightKg   *float64               `json:"client_weight_kg"`
	CourseName       string                 `json:"course_name"`
	Exercises        domain.ExercisePayload `json:"exercises_json"`
	CommissionAmount float64                `json:"commission_amount,omitempty"`
}

// LogService owns the workout/meal log table operations.
type LogService interface {
	// Create validates a submission, enforces the ownership invariant, fixes
	// the commission at insert time and appends one row. Returns the inserted
	// row including the server-assigned id and timestamp.
	Create(ctx context.Context, coach *domain.AccessCode, req CreateLogRequest) (*domain.WorkoutLog, error)

	// ListAll returns every row, newest first.
	ListAll(ctx context.Context) ([]domain.WorkoutLog, error)

	// DeleteAll reads all row ids, then deletes exactly that id set. Returns
	// the count deleted; an empty table yields (0, nil), not an error.
	DeleteAll(ctx context.Context) (int64, error)
}

// logService implements the LogService interface.
type logService struct {
	logRepo           repository.WorkoutLogRepository
	accessCodeRepo    repository.AccessCodeRepository
	defaultCommission float64
}

// NewLogService creates a new instance of logService.
func NewLogService(logRepo repository.WorkoutLogRepository, accessCodeRepo repository.AccessCodeRepository, defaultCommission float64) LogService {
	return &logService{
		logRepo:           logRepo,
		accessCodeRepo:    accessCodeRepo,
		defaultCommission: defaultCommission,
	}
}

// validate runs the fixed field checks in order and surfaces only the first
// failure. The order is part of the API contract.
func validate(req *CreateLogRequest) *ValidationError {
	req.CoachCode = strings.TrimSpace(req.CoachCode)
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientGender = strings.TrimSpace(req.ClientGender)

	if req.CoachCode == "" {
		return &ValidationError{Field: "coach_code", Message: "coach_code is required"}
	}
	if req.ClientName == "" {
		return &ValidationError{Field: "client_name", Message: "client_name is required"}
	}
	if req.ClientGender == "" {
		return &ValidationError{Field: "client_gender", Message: "client_gender is required"}
	}
	if req.ClientAge == nil || *req.ClientAge < 1 {
		return &ValidationError{Field: "client_age", Message: "client_age must be a positive number"}
	}
	if req.ClientHeightCm == nil || *req.ClientHeightCm < 1 {
		return &ValidationError{Field: "client_height_cm", Message: "client_height_cm must be a positive number"}
	}
	if req.ClientWeightKg == nil || *req.ClientWeightKg < 1 {
		return &ValidationError{Field: "client_weight_kg", Message: "client_weight_kg must be a positive number"}
	}
	if err := req.Exercises.Validate(); err != nil {
		return &ValidationError{Field: "exercises_json", Message: err.Error()}
	}
	return nil
}

// Create handles a plan submission from an authenticated coach.
func (s *logService) Create(ctx context.Context, coach *domain.AccessCode, req CreateLogRequest) (*domain.WorkoutLog, error) {
	if verr := validate(&req); verr != nil {
		return nil, verr
	}

	// Ownership invariant: a coach cannot write logs under another coach's
	// identity, no matter how valid the rest of the submission is.
	if req.CoachCode != coach.Code {
		return nil, ErrCoachCodeMismatch
	}

	// Re-read the rate at insert time. The coach record can disappear between
	// authentication and insert; that surfaces here, not as a 500.
	rateRow, err := s.accessCodeRepo.GetByCode(ctx, req.CoachCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	// A positive override in the body wins over the configured rate; absent
	// both, the configured default applies. The amount is denormalized onto
	// the row and never recomputed.
	commission := req.CommissionAmount
	if commission <= 0 {
		commission = rateRow.CommissionPerWorkout
	}
	if commission <= 0 {
		commission = s.defaultCommission
	}

	row := &domain.WorkoutLog{
		CoachCode:        req.CoachCode,
		ClientName:       req.ClientName,
		ClientGender:     req.ClientGender,
		ClientAge:        *req.ClientAge,
		ClientHeightCm:   *req.ClientHeightCm,
		ClientWeightKg:   *req.ClientWeightKg,
		CourseName:       req.CourseName,
		Exercises:        req.Exercises,
		CommissionAmount: commission,
	}

	rowID, err := s.logRepo.Insert(ctx, row)
	if err != nil {
		return nil, err
	}
	row.ID = rowID
	return row, nil
}

// ListAll returns every log row, newest first.
func (s *logService) ListAll(ctx context.Context) ([]domain.WorkoutLog, error) {
	rows, err := s.logRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.WorkoutLog{}
	}
	return rows, nil
}

// DeleteAll performs the two-step bulk reset: fetch ids, then delete that id
// set. A row inserted between the two steps survives; the race is accepted.
func (s *logService) DeleteAll(ctx context.Context) (int64, error) {
	ids, err := s.logRepo.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("Fetch failed: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	count, err := s.logRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("Delete failed: %w", err)
	}
	return count, nil
}
