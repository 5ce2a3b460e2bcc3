package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,user_role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login. The token is also set as
// an HttpOnly cookie; it is included in the body for non-browser clients.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID            uint            `json:"id"`
	Email         string          `json:"email"`
	Role          models.UserRole `json:"role"`
	IsPaid        bool            `json:"is_paid"`
	EmailVerified bool            `json:"email_verified"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		IsPaid:        u.IsPaid,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// CleanupStepResponse reports the outcome of one table's delete during
// account removal. Failed steps carry the error text instead of a count.
type CleanupStepResponse struct {
	Table   string `json:"table"`
	Deleted int64  `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

type DeleteAccountResponse struct {
	Message string                `json:"message"`
	Cleanup []CleanupStepResponse `json:"cleanup"`
}
