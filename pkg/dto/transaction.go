package dto

import (
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/google/uuid"
)

// TransactionCreate represents the data needed to record a transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        domain.EntryType
	Amount      money.Amount
	Description string
	Date        time.Time
	CategoryID  uuid.UUID
}

// TransactionUpdate replaces the editable fields of a transaction.
type TransactionUpdate struct {
	Type        domain.EntryType
	Amount      money.Amount
	Description string
	Date        time.Time
	CategoryID  uuid.UUID
}

// TransactionRead is a transaction joined with its category.
type TransactionRead struct {
	ID          uuid.UUID        `json:"id"`
	Type        domain.EntryType `json:"type"`
	Amount      money.Amount     `json:"amount" swaggertype:"number"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	CategoryID  uuid.UUID        `json:"categoryId"`
	UserID      uuid.UUID        `json:"userId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Category    *CategoryRead    `json:"category,omitempty"`
}
