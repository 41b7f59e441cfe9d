package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"college_backend/internal/app/router"
	attendanceadapters "college_backend/internal/feature/attendance/adapters"
	attendancehandler "college_backend/internal/feature/attendance/transport/handler"
	attendanceusecase "college_backend/internal/feature/attendance/usecase"
	authadapters "college_backend/internal/feature/auth/adapters"
	authhandler "college_backend/internal/feature/auth/transport/handler"
	authusecase "college_backend/internal/feature/auth/usecase"
	coursesadapters "college_backend/internal/feature/courses/adapters"
	courseshandler "college_backend/internal/feature/courses/transport/handler"
	coursesusecase "college_backend/internal/feature/courses/usecase"
	statsadapters "college_backend/internal/feature/stats/adapters"
	statshandler "college_backend/internal/feature/stats/transport/handler"
	statsusecase "college_backend/internal/feature/stats/usecase"
	usersadapters "college_backend/internal/feature/users/adapters"
	usershandler "college_backend/internal/feature/users/transport/handler"
	usersusecase "college_backend/internal/feature/users/usecase"
	"college_backend/internal/platform/cache"
	infradb "college_backend/internal/platform/db"
	"college_backend/internal/platform/identity"
	infraredis "college_backend/internal/platform/redis"
	"college_backend/internal/platform/token"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	tokenRepo := authadapters.NewTokenMySQL(db)
	profileRepo := usersadapters.NewProfileMySQL(db)
	notificationRepo := usersadapters.NewNotificationMySQL(db)
	courseRepo := coursesadapters.NewCourseMySQL(db)
	subjectRepo := coursesadapters.NewSubjectMySQL(db)
	attendanceRepo := attendanceadapters.NewAttendanceMySQL(db)
	statsRepo := statsadapters.NewStatsMySQL(db)

	// The overview counts change rarely; serve them through Redis.
	cachedStatsRepo := cache.NewCachingStatsRepository(rdb, 0, statsRepo, "stats")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, token.NewGenerator())
	usersUC := usersusecase.NewUsersUsecase(profileRepo, notificationRepo, subjectRepo, tokenRepo)
	coursesUC := coursesusecase.NewCoursesUsecase(courseRepo, subjectRepo)
	attendanceUC := attendanceusecase.NewAttendanceUsecase(attendanceRepo)
	statsUC := statsusecase.NewStatsUsecase(cachedStatsRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	usersH := usershandler.NewUsersHandler(usersUC)
	coursesH := courseshandler.NewCoursesHandler(coursesUC)
	attendanceH := attendancehandler.NewAttendanceHandler(attendanceUC)
	statsH := statshandler.NewStatsHandler(statsUC)

	// CORS
	corsMW := cors.Default()
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = []string{origin}
		cfg.AllowCredentials = true
		cfg.AddAllowHeaders("Authorization")
		corsMW = cors.New(cfg)
	}

	r := router.NewRouter(corsMW, identity.Resolve(tokenRepo), authH, usersH, coursesH, attendanceH, statsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
