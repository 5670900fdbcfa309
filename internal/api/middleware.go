package api

import (
	"errors"
	"net/http"
	"strings"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/service"

	"github.com/gin-gonic/gin"
)

// Header carrying the shared-secret access code on every request.
const AccessCodeHeader = "x-access-code"

// Constants for context keys
const (
	ContextCoachKey = "coach"
)

// accessCodeFromRequest reads and trims the access code header.
func accessCodeFromRequest(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(AccessCodeHeader))
}

// RequireCoach creates a Gin middleware that authenticates coach routes.
// The header value is looked up in the access code directory on every
// request; there is nothing to expire or revoke.
func RequireCoach(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := accessCodeFromRequest(c)
		if code == "" {
			abortWithError(c, http.StatusUnauthorized, service.ErrMissingAccessCode.Error())
			return
		}

		coach, err := authService.AuthenticateCoach(c.Request.Context(), code)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCoachCode) || errors.Is(err, service.ErrMissingAccessCode) {
				abortWithError(c, http.StatusUnauthorized, err.Error())
			} else {
				abortWithError(c, http.StatusInternalServerError, err.Error())
			}
			return
		}

		// Stash the directory row for downstream handlers.
		c.Set(ContextCoachKey, coach)
		c.Next()
	}
}

// RequireAdmin creates a Gin middleware guarding admin routes. The header is
// compared against the configured sentinel; no directory lookup happens.
func RequireAdmin(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authService.IsAdminCode(accessCodeFromRequest(c)) {
			abortWithError(c, http.StatusUnauthorized, service.ErrInvalidAdminCode.Error())
			return
		}
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get the authenticated coach from context (used by handlers)
func getCoachFromContext(c *gin.Context) (*domain.AccessCode, error) {
	raw, exists := c.Get(ContextCoachKey)
	if !exists {
		return nil, errors.New("coach not found in context")
	}
	coach, ok := raw.(*domain.AccessCode)
	if !ok {
		return nil, errors.New("invalid coach type in context")
	}
	return coach, nil
}
