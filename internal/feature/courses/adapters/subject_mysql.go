package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"college_backend/internal/feature/courses/domain/entity"
	"college_backend/internal/feature/courses/usecase"
)

// subjectMySQL is a MySQL implementation of the SubjectRepository interface.
type subjectMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure subjectMySQL implements SubjectRepository.
var _ usecase.SubjectRepository = (*subjectMySQL)(nil)

// NewSubjectMySQL creates a new instance of subjectMySQL.
func NewSubjectMySQL(db *gorm.DB) *subjectMySQL {
	return &subjectMySQL{db: db}
}

// List returns all subjects ordered by ID.
func (r *subjectMySQL) List(ctx context.Context) ([]entity.Subject, error) {
	var subjects []entity.Subject
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

// Create adds a subject to the database.
// A duplicate (course, semester, code) combination maps to
// usecase.ErrSubjectAlreadyExists.
func (r *subjectMySQL) Create(ctx context.Context, subject *entity.Subject) error {
	if err := r.db.WithContext(ctx).Create(subject).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrSubjectAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrSubjectAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a subject by ID.
// It returns usecase.ErrSubjectNotFound if the subject does not exist.
func (r *subjectMySQL) FindByID(ctx context.Context, id uint) (*entity.Subject, error) {
	var subject entity.Subject
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSubjectNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// Update persists changes to an existing subject.
func (r *subjectMySQL) Update(ctx context.Context, subject *entity.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

// Delete removes a subject by ID.
// It returns usecase.ErrSubjectNotFound if no row was deleted.
func (r *subjectMySQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Subject{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSubjectNotFound
	}
	return nil
}

// AssignTeacher points the given subjects at a teacher and course.
// Used by the users feature when editing a teacher's profile.
func (r *subjectMySQL) AssignTeacher(ctx context.Context, subjectIDs []uint, teacherID, courseID uint) error {
	if len(subjectIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&entity.Subject{}).
		Where("id IN ?", subjectIDs).
		Updates(map[string]interface{}{"teacher_id": teacherID, "course_id": courseID}).Error
}
