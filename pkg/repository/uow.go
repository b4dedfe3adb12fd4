package repository

import (
	"context"

	"github.com/Enryuk3/kash-app/pkg/repository/category"
	"github.com/Enryuk3/kash-app/pkg/repository/goal"
	"github.com/Enryuk3/kash-app/pkg/repository/transaction"
	"github.com/Enryuk3/kash-app/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access.
//
// Repositories obtained from the UnitOfWork passed to Do share its
// transaction. Repositories obtained outside Do run each statement on its
// own.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	CategoryRepository() (category.Repository, error)
	GoalRepository() (goal.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	UserRepository() (user.Repository, error)
}
