// Package adapters provides repository implementations for the stats feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	attendanceentity "college_backend/internal/feature/attendance/domain/entity"
	authentity "college_backend/internal/feature/auth/domain/entity"
	coursesentity "college_backend/internal/feature/courses/domain/entity"
	"college_backend/internal/feature/stats/domain/entity"
	"college_backend/internal/feature/stats/usecase"
)

// statsMySQL is a MySQL implementation of the StatsRepository interface.
type statsMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure statsMySQL implements StatsRepository.
var _ usecase.StatsRepository = (*statsMySQL)(nil)

// NewStatsMySQL creates a new instance of statsMySQL.
func NewStatsMySQL(db *gorm.DB) *statsMySQL {
	return &statsMySQL{db: db}
}

func (r *statsMySQL) countRole(ctx context.Context, role authentity.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

// Overview returns the college-wide entity counts.
func (r *statsMySQL) Overview(ctx context.Context) (*entity.Overview, error) {
	var out entity.Overview

	if err := r.db.WithContext(ctx).Model(&coursesentity.Course{}).Count(&out.Courses).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&coursesentity.Subject{}).Count(&out.Subjects).Error; err != nil {
		return nil, err
	}

	var err error
	if out.Teachers, err = r.countRole(ctx, authentity.RoleTeacher); err != nil {
		return nil, err
	}
	if out.Students, err = r.countRole(ctx, authentity.RoleStudent); err != nil {
		return nil, err
	}
	if out.Admins, err = r.countRole(ctx, authentity.RoleAdmin); err != nil {
		return nil, err
	}
	return &out, nil
}

// AttendanceSummary returns one student's attendance tally.
func (r *statsMySQL) AttendanceSummary(ctx context.Context, studentID uint) (*entity.AttendanceSummary, error) {
	var out entity.AttendanceSummary

	if err := r.db.WithContext(ctx).
		Model(&attendanceentity.Attendance{}).
		Where("user_id = ?", studentID).
		Count(&out.Recorded).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&attendanceentity.Attendance{}).
		Where("user_id = ? AND present = ?", studentID, true).
		Count(&out.Attended).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
