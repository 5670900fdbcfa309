package service

import (
	"context"
	"errors"
	"strings"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/repository"
)

// --- Error Definitions ---
var (
	ErrCodeRequired      = errors.New("Code is required")
	ErrInvalidAccessCode = errors.New("Invalid access code")
	ErrInvalidCoachCode  = errors.New("Invalid coach code")
	ErrMissingAccessCode = errors.New("Missing access code")
	ErrInvalidAdminCode  = errors.New("Invalid admin code")
)

// AuthService resolves access codes to sessions. There are no tokens and no
// server-side sessions: every request re-presents its code and is re-checked.
type AuthService interface {
	// Login resolves a submitted code to a session. The admin sentinel short
	// circuits without a directory lookup; all other codes must resolve to a
	// coach row in the directory.
	Login(ctx context.Context, code string) (*domain.Session, error)

	// AuthenticateCoach validates a coach code from a request header against
	// the directory and returns the directory row.
	AuthenticateCoach(ctx context.Context, code string) (*domain.AccessCode, error)

	// IsAdminCode compares a code against the configured admin sentinel.
	IsAdminCode(code string) bool
}

// authService implements the AuthService interface.
type authService struct {
	accessCodeRepo repository.AccessCodeRepository
	adminCode      string
}

// NewAuthService creates a new instance of authService.
func NewAuthService(accessCodeRepo repository.AccessCodeRepository, adminCode string) AuthService {
	if adminCode == "" {
		panic("admin sentinel code cannot be empty") // Critical configuration
	}
	return &authService{
		accessCodeRepo: accessCodeRepo,
		adminCode:      adminCode,
	}
}

// Login handles the shared-code login.
func (s *authService) Login(ctx context.Context, code string) (*domain.Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	// Admin sentinel: no directory lookup.
	if code == s.adminCode {
		return &domain.Session{Role: domain.RoleAdmin, Code: s.adminCode}, nil
	}

	ac, err := s.accessCodeRepo.GetCoachByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidAccessCode
		}
		return nil, err // Propagate store errors
	}

	return &domain.Session{
		Role:      domain.RoleCoach,
		Code:      ac.Code,
		CoachName: ac.CoachName,
	}, nil
}

// AuthenticateCoach validates the x-access-code header value for coach routes.
func (s *authService) AuthenticateCoach(ctx context.Context, code string) (*domain.AccessCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMissingAccessCode
	}

	ac, err := s.accessCodeRepo.GetCoachByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCoachCode
		}
		return nil, err
	}
	return ac, nil
}

// IsAdminCode compares against the configured sentinel on every call; there
// is no expiry and no revocation list.
func (s *authService) IsAdminCode(code string) bool {
	return strings.TrimSpace(code) == s.adminCode
}
