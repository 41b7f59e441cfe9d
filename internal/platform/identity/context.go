// Package identity resolves the caller of each request and gates routes
// on the resolved identity.
//
// The resolver middleware runs once per request, before any route logic,
// and stores the result in the request's context. Concurrent requests
// each carry their own context value, so identities never leak between
// in-flight requests.
package identity

import (
	"context"

	"github.com/gin-gonic/gin"

	"college_backend/internal/feature/auth/domain/entity"
)

// ctxKey is the private context key type for the resolved identity.
type ctxKey struct{}

// contextUser is the Gin context key mirroring the request context value,
// for handlers that only hold a *gin.Context.
const contextUser = "identity.user"

// WithUser returns a copy of ctx carrying user as the resolved identity.
// A nil user marks the request as anonymous.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the identity resolved for this request.
// ok is false when the resolver has not run; a nil user with ok true
// means the request is anonymous.
func UserFromContext(ctx context.Context) (user *entity.User, ok bool) {
	user, ok = ctx.Value(ctxKey{}).(*entity.User)
	return user, ok
}

// CurrentUser returns the identity resolved for the request handled by c,
// or nil when the request is anonymous.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(contextUser); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}
