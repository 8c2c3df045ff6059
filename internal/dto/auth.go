package dto

import (
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest carries the data for a new user account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string `json:"userID"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		CreatedAt: FormatTime(u.CreatedAt),
	}
}
