// Package db opens the MySQL connection used by every repository.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	attendanceentity "college_backend/internal/feature/attendance/domain/entity"
	authentity "college_backend/internal/feature/auth/domain/entity"
	coursesentity "college_backend/internal/feature/courses/domain/entity"
	usersentity "college_backend/internal/feature/users/domain/entity"
)

// OpenDB connects to MySQL using the DB_* environment variables,
// retrying for up to 60 seconds so the server survives a database that
// is still starting. With RUN_MIGRATIONS=true it also runs AutoMigrate
// for every entity.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate runs AutoMigrate for every entity in dependency order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&authentity.Token{},
		&coursesentity.Course{},
		&coursesentity.Semester{},
		&coursesentity.Subject{},
		&attendanceentity.Attendance{},
		&usersentity.Notification{},
	)
}
