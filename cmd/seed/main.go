// Command seed bootstraps the initial admin account. It is a no-op when
// any user already exists, so it is safe to run on every deploy.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	authentity "college_backend/internal/feature/auth/domain/entity"
	infradb "college_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	db := infradb.OpenDB()
	if err := infradb.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	var count int64
	if err := db.Model(&authentity.User{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count users: %v", err)
	}
	if count > 0 {
		log.Println("users already present; nothing to seed")
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@college.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin account")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &authentity.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     authentity.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("seeded admin account %s (id=%d)", admin.Email, admin.ID)
}
