package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"college_backend/internal/feature/auth/domain/entity"
)

// Guard is a pure predicate over the resolved identity. Guards never
// mutate state, so evaluating one twice in the same request yields the
// same result.
type Guard func(user *entity.User) bool

// Authenticated passes when any identity is present.
func Authenticated() Guard {
	return func(user *entity.User) bool {
		return user != nil
	}
}

// RoleEquals passes when the identity is present and holds exactly role.
func RoleEquals(role entity.Role) Guard {
	return func(user *entity.User) bool {
		return user != nil && user.Role == role
	}
}

// RoleIn passes when the identity is present and holds one of roles.
func RoleIn(roles ...entity.Role) Guard {
	return func(user *entity.User) bool {
		if user == nil {
			return false
		}
		for _, r := range roles {
			if user.Role == r {
				return true
			}
		}
		return false
	}
}

// Require lifts a guard into route middleware. A failing guard aborts the
// request with 401 before the handler runs; the response reveals nothing
// beyond "unauthorized".
func Require(guard Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !guard(CurrentUser(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
