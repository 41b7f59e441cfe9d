// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	authdto "college_backend/internal/feature/auth/transport/http/dto"
)

// CreateTeacherReq represents the request body for creating a teacher profile.
type CreateTeacherReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	CourseID *uint  `json:"courseId"`
}

// EditTeacherReq represents the request body for editing a teacher profile.
type EditTeacherReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	CourseID *uint  `json:"courseId"`
	Subjects []uint `json:"subjects"`
}

// StudentProfileReq represents the request body for creating or editing a
// student profile.
type StudentProfileReq struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Contact        string `json:"contact" binding:"required"`
	Password       string `json:"password" binding:"required,min=8"`
	CourseID       *uint  `json:"courseId"`
	ActiveSemester *uint  `json:"activeSemester"`
}

// ProfileResp wraps a public profile in the original message envelope.
type ProfileResp struct {
	Message string              `json:"message"`
	Data    authdto.UserProfile `json:"data"`
}
