// Package handler provides the HTTP handlers for the stats feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authentity "college_backend/internal/feature/auth/domain/entity"
	"college_backend/internal/feature/stats/domain/entity"
	"college_backend/internal/platform/identity"
)

// StatsUsecase defines the statistics operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StatsUsecase interface {
	Overview(ctx context.Context) (*entity.Overview, error)
	StudentOverview(ctx context.Context, studentID uint) (*entity.Overview, *entity.AttendanceSummary, error)
}

// StatsHandler handles HTTP requests for the statistics endpoints.
type StatsHandler struct {
	uc StatsUsecase
}

// NewStatsHandler creates a new instance of StatsHandler.
func NewStatsHandler(uc StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Hello handles the root endpoint.
func (h *StatsHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World!"})
}

// Statistics is a public endpoint that branches on the resolved identity:
// students additionally get their own attendance summary. Anonymous and
// staff callers get the plain entity counts.
func (h *StatsHandler) Statistics(c *gin.Context) {
	user := identity.CurrentUser(c)

	if user != nil && user.Role == authentity.RoleStudent {
		overview, summary, err := h.uc.StudentOverview(c.Request.Context(), user.ID)
		if err != nil {
			slog.Error("failed to compute student statistics", "error", err, "user", user.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"courses":    overview.Courses,
			"subjects":   overview.Subjects,
			"teachers":   overview.Teachers,
			"students":   overview.Students,
			"admins":     overview.Admins,
			"attendance": summary,
		})
		return
	}

	overview, err := h.uc.Overview(c.Request.Context())
	if err != nil {
		slog.Error("failed to compute statistics", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, overview)
}
