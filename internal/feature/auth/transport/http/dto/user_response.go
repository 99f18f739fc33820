package dto

import (
	"time"

	"opticode_backend/internal/feature/auth/domain/entity"
)

// UserResponse is the public projection of a user. The password hash is
// deliberately absent.
type UserResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// UserResponseFromEntity converts a domain user to its public projection.
func UserResponseFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
