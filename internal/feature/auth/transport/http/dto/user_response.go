package dto

import "college_backend/internal/feature/auth/domain/entity"

// UserProfile carries the public fields of a user. The password hash is
// never part of any response.
type UserProfile struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    entity.Role `json:"role"`
	Address string      `json:"address"`
	Contact string      `json:"contact"`
	ID      uint        `json:"id"`
}

// UserProfileFromEntity maps a user entity to its public profile.
func UserProfileFromEntity(u *entity.User) UserProfile {
	return UserProfile{
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Address: u.Address,
		Contact: u.Contact,
		ID:      u.ID,
	}
}

// LoginResp represents the response body for a successful login.
type LoginResp struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}
