package usecase

import (
	"context"

	"college_backend/internal/feature/attendance/domain/entity"
)

// AttendanceRepository abstracts the persistence layer for attendance records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type AttendanceRepository interface {
	// Create persists a new attendance record. It returns
	// ErrAttendanceAlreadyExists when a record for the same student,
	// subject and date exists.
	Create(ctx context.Context, record *entity.Attendance) error

	// ListBySubject returns the records for a subject. A non-empty date
	// restricts the result to that day.
	ListBySubject(ctx context.Context, subjectID uint, date string) ([]entity.Attendance, error)
}

// AttendanceUsecase provides business logic for attendance recording.
type AttendanceUsecase struct {
	records AttendanceRepository
}

// NewAttendanceUsecase creates a new AttendanceUsecase with the given repository.
func NewAttendanceUsecase(records AttendanceRepository) *AttendanceUsecase {
	return &AttendanceUsecase{records: records}
}

// RecordInput carries the fields of an attendance record request.
type RecordInput struct {
	StudentID uint
	SubjectID uint
	Date      string
	Present   bool
}

// Record stores one attendance entry. A duplicate (student, subject,
// date) combination fails with ErrAttendanceAlreadyExists.
func (u *AttendanceUsecase) Record(ctx context.Context, in RecordInput) (*entity.Attendance, error) {
	record := &entity.Attendance{
		UserID:    in.StudentID,
		SubjectID: in.SubjectID,
		Date:      in.Date,
		Present:   in.Present,
	}
	if err := u.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns the attendance records for a subject, optionally
// restricted to one date.
func (u *AttendanceUsecase) List(ctx context.Context, subjectID uint, date string) ([]entity.Attendance, error) {
	return u.records.ListBySubject(ctx, subjectID, date)
}
