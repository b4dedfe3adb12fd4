package user

import (
	"context"

	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the data access operations for users.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by its ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
}
