package api

import (
	"net/http"

	"nakram/coach-builder/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface. Four operations plus a health probe;
// everything else lives in the CLI against this API.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	logService service.LogService,
) {
	authHandler := NewAuthHandler(authService)
	logHandler := NewLogHandler(logService)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		apiGroup.POST("/login", authHandler.Login)

		// Coaches append rows; only the admin sentinel reads or resets them.
		apiGroup.POST("/workout-logs", RequireCoach(authService), logHandler.CreateWorkoutLog)
		apiGroup.GET("/workout-logs", RequireAdmin(authService), logHandler.ListWorkoutLogs)
		apiGroup.DELETE("/workout-logs", RequireAdmin(authService), logHandler.DeleteWorkoutLogs)
	}
}
