// Package handler provides the HTTP handlers for the courses feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"college_backend/internal/feature/courses/domain/entity"
	"college_backend/internal/feature/courses/transport/http/dto"
	"college_backend/internal/feature/courses/usecase"
)

// CoursesUsecase defines the course and subject operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CoursesUsecase interface {
	ListCourses(ctx context.Context) ([]entity.Course, error)
	CreateCourse(ctx context.Context, name string) (*entity.Course, error)
	EditCourse(ctx context.Context, id uint, name string) (*entity.Course, error)
	DeleteCourse(ctx context.Context, id uint) error
	ListSubjects(ctx context.Context) ([]entity.Subject, error)
	CreateSubject(ctx context.Context, in usecase.SubjectInput) (*entity.Subject, error)
	EditSubject(ctx context.Context, id uint, in usecase.SubjectInput) (*entity.Subject, error)
	DeleteSubject(ctx context.Context, id uint) error
}

// CoursesHandler handles HTTP requests for course and subject management.
type CoursesHandler struct {
	uc CoursesUsecase
}

// NewCoursesHandler creates a new instance of CoursesHandler.
func NewCoursesHandler(uc CoursesUsecase) *CoursesHandler {
	return &CoursesHandler{uc: uc}
}

// parseID reads a numeric :id path parameter. A non-numeric value fails
// the request with 400.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListCourses returns all courses.
func (h *CoursesHandler) ListCourses(c *gin.Context) {
	courses, err := h.uc.ListCourses(c.Request.Context())
	if err != nil {
		slog.Error("failed to list courses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courses"})
		return
	}
	out := make([]dto.CourseResp, 0, len(courses))
	for i := range courses {
		out = append(out, dto.CourseRespFromEntity(&courses[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateCourse creates a new course.
func (h *CoursesHandler) CreateCourse(c *gin.Context) {
	var req dto.CourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course, err := h.uc.CreateCourse(c.Request.Context(), req.Name)
	if err != nil {
		slog.Error("failed to create course", "error", err, "name", req.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create course"})
		return
	}
	c.JSON(http.StatusCreated, dto.CourseRespFromEntity(course))
}

// EditCourse renames an existing course.
func (h *CoursesHandler) EditCourse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course, err := h.uc.EditCourse(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course does not exist"})
			return
		}
		slog.Error("failed to edit course", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit course"})
		return
	}
	c.JSON(http.StatusOK, dto.CourseRespFromEntity(course))
}

// DeleteCourse removes a course.
func (h *CoursesHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.DeleteCourse(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course does not exist"})
			return
		}
		slog.Error("failed to delete course", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

// ListSubjects returns all subjects.
func (h *CoursesHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.uc.ListSubjects(c.Request.Context())
	if err != nil {
		slog.Error("failed to list subjects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list subjects"})
		return
	}
	out := make([]dto.SubjectResp, 0, len(subjects))
	for i := range subjects {
		out = append(out, dto.SubjectRespFromEntity(&subjects[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateSubject creates a new subject. Duplicate (course, semester, code)
// combinations return 409.
func (h *CoursesHandler) CreateSubject(c *gin.Context) {
	var req dto.SubjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	subject, err := h.uc.CreateSubject(c.Request.Context(), usecase.SubjectInput{
		Name:       req.Name,
		Code:       req.Code,
		CourseID:   req.CourseID,
		SemesterID: req.SemesterID,
		TeacherID:  req.TeacherID,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrSubjectAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Subject already exists"})
			return
		}
		slog.Error("failed to create subject", "error", err, "code", req.Code)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subject"})
		return
	}
	c.JSON(http.StatusCreated, dto.SubjectRespFromEntity(subject))
}

// EditSubject updates an existing subject.
func (h *CoursesHandler) EditSubject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SubjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	subject, err := h.uc.EditSubject(c.Request.Context(), id, usecase.SubjectInput{
		Name:       req.Name,
		Code:       req.Code,
		CourseID:   req.CourseID,
		SemesterID: req.SemesterID,
		TeacherID:  req.TeacherID,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject does not exist"})
			return
		}
		slog.Error("failed to edit subject", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit subject"})
		return
	}
	c.JSON(http.StatusOK, dto.SubjectRespFromEntity(subject))
}

// DeleteSubject removes a subject.
func (h *CoursesHandler) DeleteSubject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.DeleteSubject(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject does not exist"})
			return
		}
		slog.Error("failed to delete subject", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subject"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted successfully"})
}
