package transaction

import (
	"context"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the data access operations for transactions.
// Ownership is resolved through the owning category's user.
type Repository interface {
	// Create inserts a transaction. The returned row has no category
	// attached.
	Create(ctx context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error)

	// ListForUser returns the user's transactions with their category,
	// most recent date first. An empty kind lists both types.
	ListForUser(ctx context.Context, userID uuid.UUID, kind domain.EntryType) ([]*dto.TransactionRead, error)

	// GetForUser returns the transaction with its category.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*dto.TransactionRead, error)

	// UpdateForUser replaces the editable fields and returns the number of
	// rows changed.
	UpdateForUser(ctx context.Context, id, userID uuid.UUID, update *dto.TransactionUpdate) (int64, error)

	// DeleteForUser removes the transaction in one statement.
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (int64, error)
}
