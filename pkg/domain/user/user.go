package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/utils"
	"github.com/badoux/checkmail"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)
	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = fmt.Errorf("email already registered: %w", domain.ErrAlreadyExists)
	// ErrInvalidName is returned for a blank name.
	ErrInvalidName = fmt.Errorf("name cannot be empty: %w", domain.ErrValidation)
	// ErrInvalidEmail is returned for an address that is not well formed.
	ErrInvalidEmail = fmt.Errorf("invalid email address: %w", domain.ErrValidation)
)

// User is an account holder. Every category, goal and transaction belongs
// to exactly one user.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a User with a hashed password and current timestamps.
// The email is lower-cased so lookups are case-insensitive.
func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, domain.WithField(ErrInvalidName, "name")
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, domain.WithField(ErrInvalidEmail, "email")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
