package api

import (
	"errors"
	"net/http"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Code string `json:"code"`
}

// LoginResponse echoes the resolved identity. CoachName is empty for admin.
type LoginResponse struct {
	Code      string      `json:"code"`
	CoachName string      `json:"coach_name,omitempty"`
	Role      domain.Role `json:"role"`
}

// --- Handler Methods ---

// Login resolves a submitted access code to a role. The admin sentinel short
// circuits without touching the directory; everything else must be a coach
// code. Stateless: nothing is issued or stored.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	// A malformed body is treated the same as a missing code.
	_ = c.ShouldBindJSON(&req)

	session, err := h.authService.Login(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrCodeRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrInvalidAccessCode) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Db Error: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Code:      session.Code,
		CoachName: session.CoachName,
		Role:      session.Role,
	})
}
