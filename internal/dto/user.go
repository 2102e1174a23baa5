package dto

import (
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
)

// RegisterUserRequest is the local-account signup payload.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the local-account login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries the mutable profile fields.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
}

// UserResponse is the API shape of a user profile.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		AuthProvider: string(u.AuthProvider),
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
	}
}
