package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"college_backend/internal/feature/auth/domain/entity"
	"college_backend/internal/feature/auth/usecase"
)

// tokenMySQL is a MySQL implementation of the TokenRepository interface.
type tokenMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenMySQL implements TokenRepository.
var _ usecase.TokenRepository = (*tokenMySQL)(nil)

// NewTokenMySQL creates a new instance of tokenMySQL with the given gorm.DB connection.
func NewTokenMySQL(db *gorm.DB) *tokenMySQL {
	return &tokenMySQL{db: db}
}

// Upsert stores token as the single active credential for userID.
// The ON CONFLICT clause keys on user_id, so a second login replaces the
// previous token instead of adding a row.
func (r *tokenMySQL) Upsert(ctx context.Context, userID uint, token string) error {
	row := &entity.Token{UserID: userID, Token: token}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).
		Create(row).Error
}

// FindUserByToken resolves a stored token to its owning user.
// A missing token row maps to usecase.ErrTokenNotFound; a token whose user
// has been deleted maps to usecase.ErrUserNotFound. Callers treat both as
// an anonymous identity.
func (r *tokenMySQL) FindUserByToken(ctx context.Context, token string) (*entity.User, error) {
	var row entity.Token
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}

	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", row.UserID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// DeleteByUserID removes every token owned by userID.
// Deleting zero rows is not an error; the caller may be invalidating a
// user that never logged in.
func (r *tokenMySQL) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Token{}).Error
}
