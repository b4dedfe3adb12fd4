package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to persist a new user.
type UserCreate struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SessionUser is the authenticated caller attached to a request.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Session describes an issued session token.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"token,omitempty"`
}

// SessionView is the body of session responses. Both members are null when
// there is no valid session.
type SessionView struct {
	Session *Session     `json:"session"`
	User    *SessionUser `json:"user"`
}
