package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"college_backend/internal/feature/auth/domain/entity"
)

func TestGuards(t *testing.T) {
	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}
	teacher := &entity.User{ID: 2, Role: entity.RoleTeacher}
	student := &entity.User{ID: 3, Role: entity.RoleStudent}

	tests := []struct {
		name  string
		guard Guard
		user  *entity.User
		want  bool
	}{
		{"authenticated rejects anonymous", Authenticated(), nil, false},
		{"authenticated passes any identity", Authenticated(), student, true},

		{"role equals rejects anonymous", RoleEquals(entity.RoleAdmin), nil, false},
		{"role equals passes matching role", RoleEquals(entity.RoleAdmin), admin, true},
		{"role equals rejects other role", RoleEquals(entity.RoleAdmin), teacher, false},

		{"role in rejects anonymous", RoleIn(entity.RoleAdmin, entity.RoleTeacher), nil, false},
		{"role in passes listed role", RoleIn(entity.RoleAdmin, entity.RoleTeacher), teacher, true},
		{"role in rejects unlisted role", RoleIn(entity.RoleAdmin, entity.RoleTeacher), student, false},
		{"role in with empty list rejects everyone", RoleIn(), admin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guard(tt.user))
			// Guards are pure; a second evaluation must agree.
			assert.Equal(t, tt.want, tt.guard(tt.user))
		})
	}
}

func TestRequire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(guard Guard, user *entity.User) (*gin.Engine, *bool) {
		reached := false
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if user != nil {
				c.Set(contextUser, user)
			}
			c.Next()
		})
		r.GET("/protected", Require(guard), func(c *gin.Context) {
			reached = true
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r, &reached
	}

	t.Run("failing guard aborts with 401 before the handler", func(t *testing.T) {
		r, reached := newRouter(RoleEquals(entity.RoleAdmin), nil)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "unauthorized"}`, w.Body.String())
		assert.False(t, *reached, "handler must not run behind a failing guard")
	})

	t.Run("passing guard lets the handler run", func(t *testing.T) {
		admin := &entity.User{ID: 1, Role: entity.RoleAdmin}
		r, reached := newRouter(RoleEquals(entity.RoleAdmin), admin)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *reached)
	})
}
