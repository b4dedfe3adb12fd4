package infra

import (
	"context"

	categoryrepo "github.com/Enryuk3/kash-app/infra/repository/category"
	goalrepo "github.com/Enryuk3/kash-app/infra/repository/goal"
	transactionrepo "github.com/Enryuk3/kash-app/infra/repository/transaction"
	userrepo "github.com/Enryuk3/kash-app/infra/repository/user"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/Enryuk3/kash-app/pkg/repository/category"
	"github.com/Enryuk3/kash-app/pkg/repository/goal"
	"github.com/Enryuk3/kash-app/pkg/repository/transaction"
	"github.com/Enryuk3/kash-app/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides a transaction boundary and repository access in one
// abstraction. Inside Do every repository shares the transaction session.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction. The transaction is committed when
// fn returns nil and rolled back otherwise.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) CategoryRepository() (category.Repository, error) {
	return categoryrepo.New(u.session()), nil
}

func (u *UoW) GoalRepository() (goal.Repository, error) {
	return goalrepo.New(u.session()), nil
}

func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return transactionrepo.New(u.session()), nil
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return userrepo.New(u.session()), nil
}
