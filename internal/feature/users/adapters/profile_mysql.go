// Package adapters provides repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	authentity "college_backend/internal/feature/auth/domain/entity"
	coursesentity "college_backend/internal/feature/courses/domain/entity"
	"college_backend/internal/feature/users/usecase"
)

// profileMySQL is a MySQL implementation of the ProfileRepository interface.
type profileMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure profileMySQL implements ProfileRepository.
var _ usecase.ProfileRepository = (*profileMySQL)(nil)

// NewProfileMySQL creates a new instance of profileMySQL.
func NewProfileMySQL(db *gorm.DB) *profileMySQL {
	return &profileMySQL{db: db}
}

// Create adds a user to the database.
// A duplicate email maps to usecase.ErrEmailAlreadyExists.
func (r *profileMySQL) Create(ctx context.Context, u *authentity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email, or nil without error when no
// user exists.
func (r *profileMySQL) FindByEmail(ctx context.Context, email string) (*authentity.User, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound if the user does not exist.
func (r *profileMySQL) FindByID(ctx context.Context, id uint) (*authentity.User, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByIDAndRole retrieves a user holding the given role.
// It returns usecase.ErrUserNotFound if no such user exists.
func (r *profileMySQL) FindByIDAndRole(ctx context.Context, id uint, role authentity.Role) (*authentity.User, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("id = ? AND role = ?", id, role).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update persists changes to an existing user.
func (r *profileMySQL) Update(ctx context.Context, u *authentity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// DeleteByIDAndRole removes a user holding the given role, reporting
// whether a row was deleted.
func (r *profileMySQL) DeleteByIDAndRole(ctx context.Context, id uint, role authentity.Role) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, role).
		Delete(&authentity.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByRole returns all users holding the given role, ordered by ID.
func (r *profileMySQL) ListByRole(ctx context.Context, role authentity.Role) ([]authentity.User, error) {
	var users []authentity.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListStudentsOfTeacher returns students whose course and active semester
// match a subject taught by the teacher.
func (r *profileMySQL) ListStudentsOfTeacher(ctx context.Context, teacherID uint) ([]authentity.User, error) {
	var subjects []coursesentity.Subject
	if err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Find(&subjects).Error; err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return []authentity.User{}, nil
	}

	courseIDs := make([]uint, 0, len(subjects))
	semesterIDs := make([]uint, 0, len(subjects))
	for _, s := range subjects {
		courseIDs = append(courseIDs, s.CourseID)
		semesterIDs = append(semesterIDs, s.SemesterID)
	}

	var students []authentity.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND course_id IN ? AND semester_id IN ?",
			authentity.RoleStudent, courseIDs, semesterIDs).
		Order("id ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
