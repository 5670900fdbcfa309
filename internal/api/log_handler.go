package api

import (
	"errors"
	"log"
	"net/http"

	"nakram/coach-builder/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler holds the workout log service dependency.
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// DeleteResponse is the bulk reset result.
type DeleteResponse struct {
	Deleted bool  `json:"deleted"`
	Count   int64 `json:"count"`
}

// --- Handler Methods ---

// CreateWorkoutLog appends one log row for the authenticated coach. Field
// validation is sequential and surfaces only the first failure; the ownership
// check rejects a body coach_code that differs from the header identity.
func (h *LogHandler) CreateWorkoutLog(c *gin.Context) {
	coach, err := getCoachFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Unable to identify coach from access code")
		return
	}

	var req service.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	row, err := h.logService.Create(c.Request.Context(), coach, req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			abortWithError(c, http.StatusBadRequest, verr.Message)
		} else if errors.Is(err, service.ErrCoachCodeMismatch) {
			abortWithError(c, http.StatusForbidden, err.Error())
		} else if errors.Is(err, service.ErrCoachNotFound) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			log.Printf("ERROR: Failed to insert workout log for coach %s: %v", coach.Code, err)
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	log.Printf("Created workout log %s for coach %s (%d exercises)", row.ID.Hex(), row.CoachCode, row.Exercises.Count())
	c.JSON(http.StatusOK, row)
}

// ListWorkoutLogs returns every row, newest first. Admin only; unbounded.
func (h *LogHandler) ListWorkoutLogs(c *gin.Context) {
	rows, err := h.logService.ListAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

// DeleteWorkoutLogs is the admin bulk reset: fetch all ids, delete exactly
// that id set. An empty table is a zero-count success.
func (h *LogHandler) DeleteWorkoutLogs(c *gin.Context) {
	count, err := h.logService.DeleteAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Deleted: true, Count: count})
}
