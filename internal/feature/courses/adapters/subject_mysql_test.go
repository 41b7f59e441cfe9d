package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"college_backend/internal/feature/courses/domain/entity"
	"college_backend/internal/feature/courses/usecase"
)

// setupTestDB creates an in-memory SQLite database and migrates the courses schema.
// TranslateError maps the driver's unique-constraint error to gorm.ErrDuplicatedKey,
// which the adapter handles alongside MySQL's error 1062.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open in-memory database")
	require.NoError(t, db.AutoMigrate(&entity.Course{}, &entity.Semester{}, &entity.Subject{}), "failed to migrate")
	return db
}

func TestSubjectMySQL_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectMySQL(db)
	ctx := context.Background()

	subject := &entity.Subject{Name: "Algorithms", Code: "CS201", CourseID: 1, SemesterID: 2, TeacherID: 4}

	t.Run("stores a new subject", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, subject))
		assert.NotZero(t, subject.ID)
	})

	t.Run("duplicate slot returns ErrSubjectAlreadyExists", func(t *testing.T) {
		dup := &entity.Subject{Name: "Algorithms II", Code: "CS201", CourseID: 1, SemesterID: 2, TeacherID: 5}

		err := repo.Create(ctx, dup)

		assert.ErrorIs(t, err, usecase.ErrSubjectAlreadyExists)
	})

	t.Run("same code in another semester is allowed", func(t *testing.T) {
		other := &entity.Subject{Name: "Algorithms", Code: "CS201", CourseID: 1, SemesterID: 3, TeacherID: 4}

		assert.NoError(t, repo.Create(ctx, other))
	})
}

func TestSubjectMySQL_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectMySQL(db)
	ctx := context.Background()

	seeded := &entity.Subject{Name: "Databases", Code: "CS305", CourseID: 1, SemesterID: 5, TeacherID: 4}
	require.NoError(t, repo.Create(ctx, seeded))

	t.Run("returns the subject for a known id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, "Databases", got.Name)
	})

	t.Run("returns ErrSubjectNotFound for an unknown id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, 9999)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, usecase.ErrSubjectNotFound)
	})
}

func TestSubjectMySQL_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectMySQL(db)
	ctx := context.Background()

	seeded := &entity.Subject{Name: "Networks", Code: "CS310", CourseID: 1, SemesterID: 5, TeacherID: 4}
	require.NoError(t, repo.Create(ctx, seeded))

	t.Run("removes an existing subject", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, seeded.ID))

		_, err := repo.FindByID(ctx, seeded.ID)
		assert.ErrorIs(t, err, usecase.ErrSubjectNotFound)
	})

	t.Run("returns ErrSubjectNotFound when nothing was deleted", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, 9999), usecase.ErrSubjectNotFound)
	})
}

func TestSubjectMySQL_AssignTeacher(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectMySQL(db)
	ctx := context.Background()

	first := &entity.Subject{Name: "Algebra", Code: "MA101", CourseID: 1, SemesterID: 1, TeacherID: 4}
	second := &entity.Subject{Name: "Calculus", Code: "MA102", CourseID: 1, SemesterID: 1, TeacherID: 4}
	untouched := &entity.Subject{Name: "Geometry", Code: "MA103", CourseID: 1, SemesterID: 1, TeacherID: 4}
	for _, s := range []*entity.Subject{first, second, untouched} {
		require.NoError(t, repo.Create(ctx, s))
	}

	t.Run("repoints only the listed subjects", func(t *testing.T) {
		require.NoError(t, repo.AssignTeacher(ctx, []uint{first.ID, second.ID}, 9, 2))

		got, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 9, got.TeacherID)
		assert.EqualValues(t, 2, got.CourseID)

		got, err = repo.FindByID(ctx, untouched.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 4, got.TeacherID)
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.AssignTeacher(ctx, nil, 9, 2))
	})
}

func TestCourseMySQL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseMySQL(db)
	ctx := context.Background()

	t.Run("list reflects created courses in order", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &entity.Course{Name: "Computer Science"}))
		require.NoError(t, repo.Create(ctx, &entity.Course{Name: "Mathematics"}))

		got, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Computer Science", got[0].Name)
		assert.Equal(t, "Mathematics", got[1].Name)
	})

	t.Run("find and delete report missing courses", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, usecase.ErrCourseNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, 9999), usecase.ErrCourseNotFound)
	})
}
