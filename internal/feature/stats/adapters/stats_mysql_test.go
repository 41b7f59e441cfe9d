package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	attendanceentity "college_backend/internal/feature/attendance/domain/entity"
	authentity "college_backend/internal/feature/auth/domain/entity"
	coursesentity "college_backend/internal/feature/courses/domain/entity"
)

// setupTestDB creates an in-memory SQLite database and migrates every
// entity the aggregate queries touch.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open in-memory database")
	require.NoError(t, db.AutoMigrate(
		&authentity.User{},
		&coursesentity.Course{},
		&coursesentity.Subject{},
		&attendanceentity.Attendance{},
	), "failed to migrate")
	return db
}

func TestStatsMySQL_Overview(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsMySQL(db)
	ctx := context.Background()

	t.Run("empty database counts all zeros", func(t *testing.T) {
		got, err := repo.Overview(ctx)

		require.NoError(t, err)
		assert.Zero(t, got.Courses)
		assert.Zero(t, got.Students)
	})

	t.Run("counts every entity by kind", func(t *testing.T) {
		require.NoError(t, db.Create(&coursesentity.Course{Name: "CS"}).Error)
		require.NoError(t, db.Create(&coursesentity.Subject{Name: "Algorithms", Code: "CS201", CourseID: 1, SemesterID: 1, TeacherID: 1}).Error)
		users := []authentity.User{
			{Name: "A", Email: "a@example.com", Password: "x", Role: authentity.RoleAdmin},
			{Name: "T", Email: "t@example.com", Password: "x", Role: authentity.RoleTeacher},
			{Name: "S1", Email: "s1@example.com", Password: "x", Role: authentity.RoleStudent},
			{Name: "S2", Email: "s2@example.com", Password: "x", Role: authentity.RoleStudent},
		}
		require.NoError(t, db.Create(&users).Error)

		got, err := repo.Overview(ctx)

		require.NoError(t, err)
		assert.EqualValues(t, 1, got.Courses)
		assert.EqualValues(t, 1, got.Subjects)
		assert.EqualValues(t, 1, got.Teachers)
		assert.EqualValues(t, 2, got.Students)
		assert.EqualValues(t, 1, got.Admins)
	})
}

func TestStatsMySQL_AttendanceSummary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsMySQL(db)
	ctx := context.Background()

	records := []attendanceentity.Attendance{
		{UserID: 20, SubjectID: 11, Date: "2026-08-25", Present: true},
		{UserID: 20, SubjectID: 11, Date: "2026-08-26", Present: false},
		{UserID: 20, SubjectID: 11, Date: "2026-08-27", Present: true},
		{UserID: 21, SubjectID: 11, Date: "2026-08-27", Present: true},
	}
	require.NoError(t, db.Create(&records).Error)

	t.Run("tallies only the student's records", func(t *testing.T) {
		got, err := repo.AttendanceSummary(ctx, 20)

		require.NoError(t, err)
		assert.EqualValues(t, 3, got.Recorded)
		assert.EqualValues(t, 2, got.Attended)
	})

	t.Run("a student without records tallies zero", func(t *testing.T) {
		got, err := repo.AttendanceSummary(ctx, 99)

		require.NoError(t, err)
		assert.Zero(t, got.Recorded)
		assert.Zero(t, got.Attended)
	})
}
