package dto

import (
	"time"

	"storehub/internal/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// SignupRequest: payload for self-service registration. Password policy
// (length plus character classes) is checked in the service, not here.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// LoginRequest: payload for user login. Role is an optional hint in the
// public vocabulary; when present and mismatched the login is rejected.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UserResponse: a user as exposed by the API, role in the public vocabulary,
// never the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse: response payload after successful signup or login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// FromModelToUserResponse converts a User model to its API shape.
func FromModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role.PublicName(),
		CreatedAt: user.CreatedAt,
	}
}
