package goal

import (
	"context"

	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the data access operations for savings goals.
type Repository interface {
	Create(ctx context.Context, create *dto.GoalCreate) (*dto.GoalRead, error)

	// ListForUser returns the user's goals, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*dto.GoalRead, error)

	GetForUser(ctx context.Context, id, userID uuid.UUID) (*dto.GoalRead, error)

	// UpdateForUser applies the non-nil fields of update and returns the
	// number of rows changed.
	UpdateForUser(ctx context.Context, id, userID uuid.UUID, update *dto.GoalUpdate) (int64, error)

	// DeleteForUser removes the goal in one statement. Zero affected rows
	// means it was absent or not owned.
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (int64, error)
}
