// Package adapters provides repository implementations for the attendance feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"college_backend/internal/feature/attendance/domain/entity"
	"college_backend/internal/feature/attendance/usecase"
)

// attendanceMySQL is a MySQL implementation of the AttendanceRepository interface.
type attendanceMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure attendanceMySQL implements AttendanceRepository.
var _ usecase.AttendanceRepository = (*attendanceMySQL)(nil)

// NewAttendanceMySQL creates a new instance of attendanceMySQL.
func NewAttendanceMySQL(db *gorm.DB) *attendanceMySQL {
	return &attendanceMySQL{db: db}
}

// Create adds an attendance record to the database.
// A duplicate (student, subject, date) combination maps to
// usecase.ErrAttendanceAlreadyExists.
func (r *attendanceMySQL) Create(ctx context.Context, record *entity.Attendance) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAttendanceAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAttendanceAlreadyExists
		}
		return err
	}
	return nil
}

// ListBySubject returns the records for a subject, oldest first. A
// non-empty date restricts the result to that day.
func (r *attendanceMySQL) ListBySubject(ctx context.Context, subjectID uint, date string) ([]entity.Attendance, error) {
	q := r.db.WithContext(ctx).Where("subject_id = ?", subjectID)
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var records []entity.Attendance
	if err := q.Order("date ASC, user_id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
