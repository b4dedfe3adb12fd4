package transaction

import (
	"fmt"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/money"
)

var (
	// ErrTransactionNotFound is returned when a transaction is missing or
	// belongs to a category of another user.
	ErrTransactionNotFound = fmt.Errorf("transaction not found: %w", domain.ErrNotFound)
	// ErrCategoryNotOwned is returned when the referenced category does not
	// exist for the caller.
	ErrCategoryNotOwned = fmt.Errorf("category not found or not owned: %w", domain.ErrNotFound)
	// ErrInvalidCategory is returned when the store rejects the category
	// reference.
	ErrInvalidCategory = fmt.Errorf("invalid category: %w", domain.ErrInvalidReference)
)

// Totals is the income/expense summary of a set of transactions.
type Totals struct {
	Income  money.Amount `json:"income" swaggertype:"number"`
	Expense money.Amount `json:"expense" swaggertype:"number"`
	Balance money.Amount `json:"balance" swaggertype:"number"`
}

// Add accounts one transaction amount into t.
func (t *Totals) Add(kind domain.EntryType, amount money.Amount) {
	switch kind {
	case domain.EntryTypeIncome:
		t.Income += amount
	case domain.EntryTypeExpense:
		t.Expense += amount
	}
	t.Balance = t.Income - t.Expense
}
