// Package dto defines data transfer objects for the courses feature's HTTP transport layer.
package dto

import (
	"time"

	"college_backend/internal/feature/courses/domain/entity"
)

// CourseReq represents the request body for creating or editing a course.
type CourseReq struct {
	Name string `json:"name" binding:"required"`
}

// CourseResp represents a course in API responses.
type CourseResp struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        uint      `json:"id"`
}

// CourseRespFromEntity maps a course entity to its response shape.
func CourseRespFromEntity(c *entity.Course) CourseResp {
	return CourseResp{
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		ID:        c.ID,
	}
}
