package domain

import "time"

// User represents a storefront account
type User struct {
	ID           uint
	Username     string
	Email        string
	Phone        string
	FullName     string
	PasswordHash string `gorm:"column:password"`
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthRequest represents sign-in credentials
type AuthRequest struct {
	Username string
	Password string
}

// AuthResult represents a successful sign-in outcome
type AuthResult struct {
	User        *User
	AccessToken string
	SessionID   string
	ExpiresIn   int64
}

// Session represents a user session. A session is live from creation until it
// is deleted (logout) or its expiry passes; there is no way back from either.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}
