// Package dto defines data transfer objects for the attendance feature's HTTP transport layer.
package dto

import (
	"time"

	"college_backend/internal/feature/attendance/domain/entity"
)

// AttendanceReq represents the request body for recording attendance.
type AttendanceReq struct {
	StudentID uint   `json:"studentId" binding:"required"`
	SubjectID uint   `json:"subjectId" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Present   *bool  `json:"present" binding:"required"`
}

// AttendanceResp represents an attendance record in API responses.
type AttendanceResp struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"studentId"`
	SubjectID uint      `json:"subjectId"`
	Date      string    `json:"date"`
	Present   bool      `json:"present"`
	CreatedAt time.Time `json:"createdAt"`
}

// AttendanceRespFromEntity maps an attendance entity to its response shape.
func AttendanceRespFromEntity(a *entity.Attendance) AttendanceResp {
	return AttendanceResp{
		ID:        a.ID,
		StudentID: a.UserID,
		SubjectID: a.SubjectID,
		Date:      a.Date,
		Present:   a.Present,
		CreatedAt: a.CreatedAt,
	}
}
