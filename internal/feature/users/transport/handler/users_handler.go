// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authentity "college_backend/internal/feature/auth/domain/entity"
	authdto "college_backend/internal/feature/auth/transport/http/dto"
	"college_backend/internal/feature/users/domain/entity"
	"college_backend/internal/feature/users/transport/http/dto"
	"college_backend/internal/feature/users/usecase"
	"college_backend/internal/platform/identity"
)

// UsersUsecase defines the profile and notification operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UsersUsecase interface {
	CreateTeacher(ctx context.Context, in usecase.ProfileInput) (*authentity.User, error)
	CreateStudent(ctx context.Context, in usecase.ProfileInput) (*authentity.User, error)
	EditTeacher(ctx context.Context, id uint, in usecase.ProfileInput) (*authentity.User, error)
	EditStudent(ctx context.Context, id uint, in usecase.ProfileInput) (*authentity.User, error)
	DeleteTeacher(ctx context.Context, id uint) error
	DeleteStudent(ctx context.Context, id uint) error
	GetTeachers(ctx context.Context) ([]authentity.User, error)
	GetStudents(ctx context.Context, me *authentity.User, onlyMine bool) ([]authentity.User, error)
	Notify(ctx context.Context, sender *authentity.User, in usecase.NotifyInput) error
	GetNotifications(ctx context.Context, user *authentity.User) ([]entity.Notification, error)
}

// UsersHandler handles HTTP requests for profile management and notifications.
type UsersHandler struct {
	uc UsersUsecase
}

// NewUsersHandler creates a new instance of UsersHandler.
func NewUsersHandler(uc UsersUsecase) *UsersHandler {
	return &UsersHandler{uc: uc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// CreateTeacher registers a new teacher profile. Duplicate emails return 409.
func (h *UsersHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teacher, err := h.uc.CreateTeacher(c.Request.Context(), usecase.ProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Contact:  req.Contact,
		CourseID: req.CourseID,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User with that email already exists"})
			return
		}
		slog.Error("failed to create teacher", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create teacher"})
		return
	}
	c.JSON(http.StatusCreated, dto.ProfileResp{
		Message: "Teacher created successfully",
		Data:    authdto.UserProfileFromEntity(teacher),
	})
}

// CreateStudent registers a new student profile. Duplicate emails return 409.
func (h *UsersHandler) CreateStudent(c *gin.Context) {
	var req dto.StudentProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, err := h.uc.CreateStudent(c.Request.Context(), usecase.ProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Address:    req.Address,
		Contact:    req.Contact,
		CourseID:   req.CourseID,
		SemesterID: req.ActiveSemester,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User with that email already exists"})
			return
		}
		slog.Error("failed to create student", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create student"})
		return
	}
	c.JSON(http.StatusCreated, dto.ProfileResp{
		Message: "Student created successfully",
		Data:    authdto.UserProfileFromEntity(student),
	})
}

// EditTeacher updates a teacher profile and reassigns subjects.
func (h *UsersHandler) EditTeacher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EditTeacherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	teacher, err := h.uc.EditTeacher(c.Request.Context(), id, usecase.ProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Contact:  req.Contact,
		CourseID: req.CourseID,
		Subjects: req.Subjects,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher does not exist"})
			return
		}
		slog.Error("failed to edit teacher", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit teacher"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResp{
		Message: "Teacher updated successfully",
		Data:    authdto.UserProfileFromEntity(teacher),
	})
}

// EditStudent updates a student profile.
func (h *UsersHandler) EditStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.StudentProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, err := h.uc.EditStudent(c.Request.Context(), id, usecase.ProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Address:    req.Address,
		Contact:    req.Contact,
		CourseID:   req.CourseID,
		SemesterID: req.ActiveSemester,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student does not exist"})
			return
		}
		slog.Error("failed to edit student", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit student"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResp{
		Message: "Student updated successfully",
		Data:    authdto.UserProfileFromEntity(student),
	})
}

// DeleteTeacher removes a teacher and revokes their session.
func (h *UsersHandler) DeleteTeacher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteTeacher(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher does not exist"})
			return
		}
		slog.Error("failed to delete teacher", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete teacher"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted successfully"})
}

// DeleteStudent removes a student and revokes their session.
func (h *UsersHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteStudent(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student does not exist"})
			return
		}
		slog.Error("failed to delete student", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete student"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

// GetTeachers returns all teacher profiles.
func (h *UsersHandler) GetTeachers(c *gin.Context) {
	teachers, err := h.uc.GetTeachers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list teachers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teachers"})
		return
	}
	out := make([]authdto.UserProfile, 0, len(teachers))
	for i := range teachers {
		out = append(out, authdto.UserProfileFromEntity(&teachers[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetStudents returns student profiles. ?my=true restricts the list to
// students reached by a subject the caller teaches.
func (h *UsersHandler) GetStudents(c *gin.Context) {
	me := identity.CurrentUser(c)
	if me == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	onlyMine := c.DefaultQuery("my", "false") == "true"

	students, err := h.uc.GetStudents(c.Request.Context(), me, onlyMine)
	if err != nil {
		slog.Error("failed to list students", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list students"})
		return
	}
	out := make([]authdto.UserProfile, 0, len(students))
	for i := range students {
		out = append(out, authdto.UserProfileFromEntity(&students[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Notify delivers a notification from the caller. A negative sentToId
// broadcasts to every user holding the given role.
func (h *UsersHandler) Notify(c *gin.Context) {
	me := identity.CurrentUser(c)
	if me == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.NotifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.uc.Notify(c.Request.Context(), me, usecase.NotifyInput{
		Title:    req.Title,
		Message:  req.Message,
		SentToID: *req.SentToID,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User does not exist"})
			return
		}
		slog.Error("failed to send notification", "error", err, "sender", me.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent successfully"})
}

// GetNotifications returns the caller's notifications.
func (h *UsersHandler) GetNotifications(c *gin.Context) {
	me := identity.CurrentUser(c)
	if me == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ns, err := h.uc.GetNotifications(c.Request.Context(), me)
	if err != nil {
		slog.Error("failed to list notifications", "error", err, "user", me.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	out := make([]dto.NotificationResp, 0, len(ns))
	for i := range ns {
		out = append(out, dto.NotificationRespFromEntity(&ns[i]))
	}
	c.JSON(http.StatusOK, out)
}
