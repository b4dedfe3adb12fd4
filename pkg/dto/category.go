package dto

import (
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/google/uuid"
)

// CategoryCreate represents the data needed to create a category.
// ID and UserID are filled in by the service.
type CategoryCreate struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Type   domain.EntryType
	Icon   *string
	Color  *string
}

// CategoryRead represents a read-optimized view of a category.
type CategoryRead struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Type      domain.EntryType `json:"type"`
	Icon      *string          `json:"icon"`
	Color     *string          `json:"color"`
	UserID    uuid.UUID        `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
}
