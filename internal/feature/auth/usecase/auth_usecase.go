package usecase

import (
	"context"
	"errors"
	"fmt"

	"college_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenRepository abstracts the persistence layer for session tokens.
type TokenRepository interface {
	// Upsert stores token as the single active credential for userID,
	// replacing any previous one.
	Upsert(ctx context.Context, userID uint, token string) error

	// FindUserByToken resolves a stored token to its owning user.
	// It returns ErrTokenNotFound when the token is unknown, and
	// ErrUserNotFound when the token row exists but the user is gone.
	FindUserByToken(ctx context.Context, token string) (*entity.User, error)

	// DeleteByUserID removes every token owned by userID.
	DeleteByUserID(ctx context.Context, userID uint) error
}

// TokenIssuer generates opaque session tokens.
type TokenIssuer interface {
	// Issue returns a new cryptographically random token.
	Issue() (string, error)
}

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	Token string
	User  *entity.User
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenRepository
	issuer TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenRepository, issuer TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		issuer: issuer,
	}
}

// dummyHash keeps bcrypt comparison running even when the email is unknown,
// so the unknown-email and wrong-password paths take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user by email and password.
// On success it issues a fresh token and upserts it as the user's single
// active session, returning the token together with the user record.
// Unknown emails map to ErrUserNotFound and wrong passwords to
// ErrInvalidPassword; the API surfaces these as distinct outcomes.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if compareErr != nil {
		return nil, ErrInvalidPassword
	}

	token, err := u.issuer.Issue()
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := u.tokens.Upsert(ctx, user.ID, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}
