package category

import (
	"context"

	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the data access operations for categories. Every
// method is scoped to a user.
type Repository interface {
	// Create inserts one category and returns the stored row.
	Create(ctx context.Context, create *dto.CategoryCreate) (*dto.CategoryRead, error)

	// CreateBatch inserts the given categories, skipping rows that collide
	// with an existing (user, name) pair. It returns the number inserted.
	CreateBatch(ctx context.Context, creates []*dto.CategoryCreate) (int64, error)

	// ListForUser returns the user's categories ordered by name.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryRead, error)

	// GetForUser returns the category when it exists and belongs to userID.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*dto.CategoryRead, error)

	// GetByNameForUser looks a category up by its exact name.
	GetByNameForUser(ctx context.Context, name string, userID uuid.UUID) (*dto.CategoryRead, error)

	// CountForUser returns how many categories the user has.
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
