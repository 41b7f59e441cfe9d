package dto

import (
	"time"

	"college_backend/internal/feature/courses/domain/entity"
)

// SubjectReq represents the request body for creating or editing a subject.
type SubjectReq struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required"`
	CourseID   uint   `json:"courseId" binding:"required"`
	SemesterID uint   `json:"semesterId" binding:"required"`
	TeacherID  uint   `json:"teacherId" binding:"required"`
}

// SubjectResp represents a subject in API responses.
type SubjectResp struct {
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	CourseID   uint      `json:"courseId"`
	SemesterID uint      `json:"semesterId"`
	TeacherID  uint      `json:"teacherId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	ID         uint      `json:"id"`
}

// SubjectRespFromEntity maps a subject entity to its response shape.
func SubjectRespFromEntity(s *entity.Subject) SubjectResp {
	return SubjectResp{
		Name:       s.Name,
		Code:       s.Code,
		CourseID:   s.CourseID,
		SemesterID: s.SemesterID,
		TeacherID:  s.TeacherID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		ID:         s.ID,
	}
}
