package identity

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"college_backend/internal/feature/auth/domain/entity"
	"college_backend/internal/feature/auth/usecase"
)

// TokenResolver resolves a bearer token to its owning user.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (adapters).
type TokenResolver interface {
	FindUserByToken(ctx context.Context, token string) (*entity.User, error)
}

// Resolve returns a Gin middleware that resolves the caller's identity
// exactly once per request, before any guard or handler runs.
//
// The full Authorization header value is treated as the literal token;
// there is no "Bearer " scheme prefix. An absent header, an unknown
// token, a token whose user no longer exists, and a storage error all
// resolve to anonymous: rejection is deferred to the guards so a garbage
// token and a missing one produce identical outcomes. Storage errors are
// logged, since silently treating an outage as a miss would otherwise be
// invisible.
func Resolve(tokens TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *entity.User

		if raw := c.GetHeader("Authorization"); raw != "" {
			u, err := tokens.FindUserByToken(c.Request.Context(), raw)
			switch {
			case err == nil:
				user = u
			case errors.Is(err, usecase.ErrTokenNotFound), errors.Is(err, usecase.ErrUserNotFound):
				// Unknown or dangling token: anonymous.
			default:
				slog.Error("token resolution failed", "error", err, "remote_addr", c.ClientIP())
			}
		}

		c.Set(contextUser, user)
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))
		c.Next()
	}
}
