// Package handler provides the HTTP handlers for the attendance feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"college_backend/internal/feature/attendance/domain/entity"
	"college_backend/internal/feature/attendance/transport/http/dto"
	"college_backend/internal/feature/attendance/usecase"
)

// AttendanceUsecase defines the attendance operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AttendanceUsecase interface {
	Record(ctx context.Context, in usecase.RecordInput) (*entity.Attendance, error)
	List(ctx context.Context, subjectID uint, date string) ([]entity.Attendance, error)
}

// AttendanceHandler handles HTTP requests for attendance recording.
type AttendanceHandler struct {
	uc AttendanceUsecase
}

// NewAttendanceHandler creates a new instance of AttendanceHandler.
func NewAttendanceHandler(uc AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Create records one attendance entry. A second record for the same
// student, subject and date returns 409.
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.AttendanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := h.uc.Record(c.Request.Context(), usecase.RecordInput{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Date:      req.Date,
		Present:   *req.Present,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAttendanceAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Attendance already exists"})
			return
		}
		slog.Error("failed to record attendance", "error", err, "student", req.StudentID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record attendance"})
		return
	}
	c.JSON(http.StatusCreated, dto.AttendanceRespFromEntity(record))
}

// List returns the attendance records for a subject, optionally
// restricted to the ?date= day.
func (h *AttendanceHandler) List(c *gin.Context) {
	subjectID, err := strconv.ParseUint(c.Param("subjectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}
	date := c.Query("date")

	records, err := h.uc.List(c.Request.Context(), uint(subjectID), date)
	if err != nil {
		slog.Error("failed to list attendance", "error", err, "subject", subjectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list attendance"})
		return
	}
	out := make([]dto.AttendanceResp, 0, len(records))
	for i := range records {
		out = append(out, dto.AttendanceRespFromEntity(&records[i]))
	}
	c.JSON(http.StatusOK, out)
}
