package entities

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
)

// User is an account of the storefront.
//
// Storage model (DynamoDB):
//   - PK: email (lowercase)
//
// Credentials are bcrypt hashes; the pending verification code is hashed too.
type User struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Role                 UserRole  `json:"role"`
	IsVerified           bool      `json:"is_verified"`
	PasswordHash         string    `json:"-"`
	VerificationCodeHash string    `json:"-"`
	VerificationAttempts int       `json:"-"`
	CreatedAt            time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Session is an opaque bearer token bound to a user.
//
// Storage model (DynamoDB):
//   - PK: token
//   - TTL attribute: expires_at_epoch
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
