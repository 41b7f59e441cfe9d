// Package router builds the Gin engine and wires every route to its guard.
package router

import (
	"github.com/gin-gonic/gin"

	attendancehandler "college_backend/internal/feature/attendance/transport/handler"
	"college_backend/internal/feature/auth/domain/entity"
	authhandler "college_backend/internal/feature/auth/transport/handler"
	courseshandler "college_backend/internal/feature/courses/transport/handler"
	statshandler "college_backend/internal/feature/stats/transport/handler"
	usershandler "college_backend/internal/feature/users/transport/handler"
	"college_backend/internal/platform/http/handler"
	"college_backend/internal/platform/identity"
)

// NewRouter builds the engine. The identity resolver runs globally so
// every route, guarded or not, sees the resolved caller; guards are
// attached per route at registration time.
func NewRouter(corsMW, resolve gin.HandlerFunc,
	authH *authhandler.AuthHandler,
	usersH *usershandler.UsersHandler,
	coursesH *courseshandler.CoursesHandler,
	attendanceH *attendancehandler.AttendanceHandler,
	statsH *statshandler.StatsHandler) *gin.Engine {

	r := gin.Default()
	r.Use(corsMW, RequestID(), AccessLog(), resolve)

	admin := identity.Require(identity.RoleEquals(entity.RoleAdmin))
	teacher := identity.Require(identity.RoleEquals(entity.RoleTeacher))
	staff := identity.Require(identity.RoleIn(entity.RoleAdmin, entity.RoleTeacher))
	authed := identity.Require(identity.Authenticated())

	// Public endpoints. /statistics branches internally on the resolved
	// role instead of mounting a guard.
	r.GET("/healthz", handler.Health)
	r.GET("/", statsH.Hello)
	r.GET("/statistics", statsH.Statistics)

	users := r.Group("/users")
	{
		users.POST("/login", authH.Login)
		users.GET("/me", authed, authH.Me)

		users.POST("/teacher", admin, usersH.CreateTeacher)
		users.GET("/teacher", authed, usersH.GetTeachers)
		users.PATCH("/teacher/:id", admin, usersH.EditTeacher)
		users.DELETE("/teacher/:id", admin, usersH.DeleteTeacher)

		users.POST("/student", admin, usersH.CreateStudent)
		users.GET("/student", authed, usersH.GetStudents)
		users.PATCH("/student/:id", admin, usersH.EditStudent)
		users.DELETE("/student/:id", admin, usersH.DeleteStudent)

		users.POST("/notify", staff, usersH.Notify)
		users.GET("/notifications", authed, usersH.GetNotifications)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", authed, coursesH.ListCourses)
		courses.POST("", admin, coursesH.CreateCourse)
		courses.PATCH("/:id", admin, coursesH.EditCourse)
		courses.DELETE("/:id", admin, coursesH.DeleteCourse)
	}

	subjects := r.Group("/subjects")
	{
		subjects.GET("", authed, coursesH.ListSubjects)
		subjects.POST("", admin, coursesH.CreateSubject)
		subjects.PATCH("/:id", admin, coursesH.EditSubject)
		subjects.DELETE("/:id", admin, coursesH.DeleteSubject)
	}

	attendance := r.Group("/attendance")
	{
		attendance.POST("", teacher, attendanceH.Create)
		attendance.GET("/:subjectId", teacher, attendanceH.List)
	}

	return r
}
