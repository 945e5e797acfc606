package response

import (
	"time"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase"
)

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Session.Token,
		ExpiresAt: r.Session.ExpiresAt,
		User:      FromUser(r.User),
	}
}
