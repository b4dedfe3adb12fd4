// Package mocks holds testify mocks of the repository contracts.
package mocks

import (
	"context"

	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/Enryuk3/kash-app/pkg/repository/category"
	"github.com/Enryuk3/kash-app/pkg/repository/goal"
	"github.com/Enryuk3/kash-app/pkg/repository/transaction"
	"github.com/Enryuk3/kash-app/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork is a mock repository.UnitOfWork. Do runs fn with the mock
// itself unless an error is configured for it.
type UnitOfWork struct {
	mock.Mock
}

var _ repository.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates the mock and asserts its expectations on cleanup.
func NewUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *UnitOfWork {
	m := &UnitOfWork{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *UnitOfWork) CategoryRepository() (category.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(category.Repository)
	return repo, args.Error(1)
}

func (m *UnitOfWork) GoalRepository() (goal.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(goal.Repository)
	return repo, args.Error(1)
}

func (m *UnitOfWork) TransactionRepository() (transaction.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(transaction.Repository)
	return repo, args.Error(1)
}

func (m *UnitOfWork) UserRepository() (user.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(user.Repository)
	return repo, args.Error(1)
}
