// Package adapters provides repository implementations for the courses feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"college_backend/internal/feature/courses/domain/entity"
	"college_backend/internal/feature/courses/usecase"
)

// courseMySQL is a MySQL implementation of the CourseRepository interface.
type courseMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure courseMySQL implements CourseRepository.
var _ usecase.CourseRepository = (*courseMySQL)(nil)

// NewCourseMySQL creates a new instance of courseMySQL.
func NewCourseMySQL(db *gorm.DB) *courseMySQL {
	return &courseMySQL{db: db}
}

// List returns all courses ordered by ID.
func (r *courseMySQL) List(ctx context.Context) ([]entity.Course, error) {
	var courses []entity.Course
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Create adds a course to the database.
func (r *courseMySQL) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// FindByID retrieves a course by ID.
// It returns usecase.ErrCourseNotFound if the course does not exist.
func (r *courseMySQL) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var course entity.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Update persists changes to an existing course.
func (r *courseMySQL) Update(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// Delete removes a course by ID.
// It returns usecase.ErrCourseNotFound if no row was deleted.
func (r *courseMySQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Course{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCourseNotFound
	}
	return nil
}
