package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college_backend/internal/feature/auth/domain/entity"
	"college_backend/internal/feature/auth/usecase"
)

// mockTokenResolver is a mock implementation of the TokenResolver interface.
type mockTokenResolver struct {
	FindUserByTokenFunc func(ctx context.Context, token string) (*entity.User, error)
}

// FindUserByToken is the mock implementation of the FindUserByToken method.
func (m *mockTokenResolver) FindUserByToken(ctx context.Context, token string) (*entity.User, error) {
	if m.FindUserByTokenFunc != nil {
		return m.FindUserByTokenFunc(ctx, token)
	}
	return nil, usecase.ErrTokenNotFound
}

// newResolverRouter builds a router with the resolver installed and a
// probe route that reports what the handler observes.
func newResolverRouter(tokens TokenResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Resolve(tokens))
	r.GET("/whoami", func(c *gin.Context) {
		// Both carriers must agree.
		fromGin := CurrentUser(c)
		fromCtx, ok := UserFromContext(c.Request.Context())
		if !ok || fromGin != fromCtx {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "carrier mismatch"})
			return
		}
		if fromGin == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": false, "email": fromGin.Email})
	})
	return r
}

func TestResolve(t *testing.T) {
	user := &entity.User{ID: 7, Email: "teacher@example.com", Role: entity.RoleTeacher}

	tests := []struct {
		name       string
		header     string
		resolveFn  func(ctx context.Context, token string) (*entity.User, error)
		wantAnon   bool
		wantLookup bool
	}{
		{
			name:     "absent header resolves to anonymous without lookup",
			header:   "",
			wantAnon: true,
		},
		{
			name:   "unknown token resolves to anonymous",
			header: "garbage-token",
			resolveFn: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, usecase.ErrTokenNotFound
			},
			wantAnon:   true,
			wantLookup: true,
		},
		{
			name:   "dangling token resolves to anonymous",
			header: "dangling-token",
			resolveFn: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
			wantAnon:   true,
			wantLookup: true,
		},
		{
			name:   "storage error downgrades to anonymous",
			header: "any-token",
			resolveFn: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, errors.New("connection refused")
			},
			wantAnon:   true,
			wantLookup: true,
		},
		{
			name:   "valid token resolves to the owning user",
			header: "valid-token",
			resolveFn: func(ctx context.Context, token string) (*entity.User, error) {
				if token == "valid-token" {
					return user, nil
				}
				return nil, usecase.ErrTokenNotFound
			},
			wantAnon:   false,
			wantLookup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookups := 0
			mock := &mockTokenResolver{
				FindUserByTokenFunc: func(ctx context.Context, token string) (*entity.User, error) {
					lookups++
					if tt.resolveFn != nil {
						return tt.resolveFn(ctx, token)
					}
					return nil, usecase.ErrTokenNotFound
				},
			}
			r := newResolverRouter(mock)

			req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code, "resolution must never fail the request")
			if tt.wantAnon {
				assert.Contains(t, w.Body.String(), `"anonymous":true`)
			} else {
				assert.Contains(t, w.Body.String(), user.Email)
			}
			if tt.wantLookup {
				assert.Equal(t, 1, lookups, "token must be looked up exactly once")
			} else {
				assert.Zero(t, lookups, "absent header must not trigger a lookup")
			}
		})
	}
}

// TestResolve_FullHeaderIsToken verifies that the header value is used
// verbatim: a "Bearer x" prefix is part of the token, not a scheme.
func TestResolve_FullHeaderIsToken(t *testing.T) {
	var got string
	mock := &mockTokenResolver{
		FindUserByTokenFunc: func(ctx context.Context, token string) (*entity.User, error) {
			got = token
			return nil, usecase.ErrTokenNotFound
		},
	}
	r := newResolverRouter(mock)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "Bearer abc123", got, "header must be treated as the literal token")
}

// TestResolve_ConcurrentIsolation runs a teacher and a student request
// through the same engine at once and checks that neither observes the
// other's identity.
func TestResolve_ConcurrentIsolation(t *testing.T) {
	teacher := &entity.User{ID: 1, Email: "teacher@example.com", Role: entity.RoleTeacher}
	student := &entity.User{ID: 2, Email: "student@example.com", Role: entity.RoleStudent}

	mock := &mockTokenResolver{
		FindUserByTokenFunc: func(ctx context.Context, token string) (*entity.User, error) {
			switch token {
			case "teacher-token":
				return teacher, nil
			case "student-token":
				return student, nil
			}
			return nil, usecase.ErrTokenNotFound
		},
	}
	r := newResolverRouter(mock)

	const rounds = 100
	var wg sync.WaitGroup
	errs := make(chan string, rounds*2)

	run := func(token, wantEmail string) {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				errs <- "unexpected status"
				return
			}
			body := w.Body.String()
			if !strings.Contains(body, wantEmail) {
				errs <- "identity leaked: " + body
				return
			}
		}
	}

	wg.Add(2)
	go run("teacher-token", teacher.Email)
	go run("student-token", student.Email)
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
