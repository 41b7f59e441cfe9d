package usecase

import (
	"context"

	"college_backend/internal/feature/courses/domain/entity"
)

// CourseRepository abstracts the persistence layer for courses.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CourseRepository interface {
	// List returns all courses.
	List(ctx context.Context) ([]entity.Course, error)

	// Create persists a new course.
	Create(ctx context.Context, course *entity.Course) error

	// FindByID retrieves a course by ID. It returns ErrCourseNotFound if
	// the course does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Course, error)

	// Update persists changes to an existing course.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course by ID. It returns ErrCourseNotFound if no
	// row was deleted.
	Delete(ctx context.Context, id uint) error
}

// SubjectRepository abstracts the persistence layer for subjects.
type SubjectRepository interface {
	// List returns all subjects.
	List(ctx context.Context) ([]entity.Subject, error)

	// Create persists a new subject. It returns ErrSubjectAlreadyExists
	// when a subject with the same (course, semester, code) exists.
	Create(ctx context.Context, subject *entity.Subject) error

	// FindByID retrieves a subject by ID. It returns ErrSubjectNotFound if
	// the subject does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Subject, error)

	// Update persists changes to an existing subject.
	Update(ctx context.Context, subject *entity.Subject) error

	// Delete removes a subject by ID. It returns ErrSubjectNotFound if no
	// row was deleted.
	Delete(ctx context.Context, id uint) error
}

// CoursesUsecase provides business logic for course and subject management.
type CoursesUsecase struct {
	courses  CourseRepository
	subjects SubjectRepository
}

// NewCoursesUsecase creates a new CoursesUsecase with the given repositories.
func NewCoursesUsecase(courses CourseRepository, subjects SubjectRepository) *CoursesUsecase {
	return &CoursesUsecase{courses: courses, subjects: subjects}
}

// ListCourses returns all courses.
func (u *CoursesUsecase) ListCourses(ctx context.Context) ([]entity.Course, error) {
	return u.courses.List(ctx)
}

// CreateCourse creates a new course with the given name.
func (u *CoursesUsecase) CreateCourse(ctx context.Context, name string) (*entity.Course, error) {
	course := &entity.Course{Name: name}
	if err := u.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// EditCourse renames an existing course.
func (u *CoursesUsecase) EditCourse(ctx context.Context, id uint, name string) (*entity.Course, error) {
	course, err := u.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Name = name
	if err := u.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course by ID.
func (u *CoursesUsecase) DeleteCourse(ctx context.Context, id uint) error {
	if _, err := u.courses.FindByID(ctx, id); err != nil {
		return err
	}
	return u.courses.Delete(ctx, id)
}

// ListSubjects returns all subjects.
func (u *CoursesUsecase) ListSubjects(ctx context.Context) ([]entity.Subject, error) {
	return u.subjects.List(ctx)
}

// SubjectInput carries the fields for creating or editing a subject.
type SubjectInput struct {
	Name       string
	Code       string
	CourseID   uint
	SemesterID uint
	TeacherID  uint
}

// CreateSubject creates a new subject. A duplicate (course, semester,
// code) combination fails with ErrSubjectAlreadyExists.
func (u *CoursesUsecase) CreateSubject(ctx context.Context, in SubjectInput) (*entity.Subject, error) {
	subject := &entity.Subject{
		Name:       in.Name,
		Code:       in.Code,
		CourseID:   in.CourseID,
		SemesterID: in.SemesterID,
		TeacherID:  in.TeacherID,
	}
	if err := u.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// EditSubject updates an existing subject.
func (u *CoursesUsecase) EditSubject(ctx context.Context, id uint, in SubjectInput) (*entity.Subject, error) {
	subject, err := u.subjects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	subject.Name = in.Name
	subject.Code = in.Code
	subject.CourseID = in.CourseID
	subject.SemesterID = in.SemesterID
	subject.TeacherID = in.TeacherID
	if err := u.subjects.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes a subject by ID.
func (u *CoursesUsecase) DeleteSubject(ctx context.Context, id uint) error {
	if _, err := u.subjects.FindByID(ctx, id); err != nil {
		return err
	}
	return u.subjects.Delete(ctx, id)
}
