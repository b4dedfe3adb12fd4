package fixtures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DoRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	userID := uuid.New()
	boom := errors.New("boom")

	err := s.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, _ := uow.CategoryRepository()
		_, err := repo.Create(ctx, &dto.CategoryCreate{UserID: userID, Name: "Comida", Type: domain.EntryTypeExpense})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	_, categories, _, _ := s.Counts()
	assert.Zero(t, categories)
}

func TestStore_CategoryUniquePerUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	repo, _ := s.CategoryRepository()
	alice, bob := uuid.New(), uuid.New()

	_, err := repo.Create(ctx, &dto.CategoryCreate{UserID: alice, Name: "Ropa", Type: domain.EntryTypeExpense})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &dto.CategoryCreate{UserID: alice, Name: "Ropa", Type: domain.EntryTypeExpense})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	_, err = repo.Create(ctx, &dto.CategoryCreate{UserID: bob, Name: "Ropa", Type: domain.EntryTypeExpense})
	assert.NoError(t, err)

	n, err := repo.CreateBatch(ctx, []*dto.CategoryCreate{
		{UserID: alice, Name: "Ropa", Type: domain.EntryTypeExpense},
		{UserID: alice, Name: "Viajes", Type: domain.EntryTypeExpense},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestStore_TransactionOwnershipAndForeignKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	categories, _ := s.CategoryRepository()
	transactions, _ := s.TransactionRepository()
	alice, bob := uuid.New(), uuid.New()

	c, err := categories.Create(ctx, &dto.CategoryCreate{UserID: alice, Name: "Salario", Type: domain.EntryTypeIncome})
	require.NoError(t, err)

	_, err = transactions.Create(ctx, &dto.TransactionCreate{UserID: alice, CategoryID: uuid.New(), Amount: money.MustParse("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	tx, err := transactions.Create(ctx, &dto.TransactionCreate{
		UserID:      alice,
		CategoryID:  c.ID,
		Type:        domain.EntryTypeIncome,
		Amount:      money.MustParse("1000"),
		Description: "Nómina",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = transactions.GetForUser(ctx, tx.ID, bob)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	n, err := transactions.DeleteForUser(ctx, tx.ID, bob)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := transactions.GetForUser(ctx, tx.ID, alice)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Salario", got.Category.Name)
}

func TestStore_TransactionAmountMustBePositive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	categories, _ := s.CategoryRepository()
	transactions, _ := s.TransactionRepository()
	alice := uuid.New()

	c, err := categories.Create(ctx, &dto.CategoryCreate{UserID: alice, Name: "Comida", Type: domain.EntryTypeExpense})
	require.NoError(t, err)

	_, err = transactions.Create(ctx, &dto.TransactionCreate{UserID: alice, CategoryID: c.ID, Type: domain.EntryTypeExpense})
	assert.ErrorIs(t, err, domain.ErrValidation)

	tx, err := transactions.Create(ctx, &dto.TransactionCreate{
		UserID: alice, CategoryID: c.ID, Type: domain.EntryTypeExpense, Amount: money.MustParse("9.99"),
	})
	require.NoError(t, err)

	n, err := transactions.UpdateForUser(ctx, tx.ID, alice, &dto.TransactionUpdate{Type: domain.EntryTypeExpense, Amount: money.MustParse("-1"), CategoryID: c.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, n)

	got, err := transactions.GetForUser(ctx, tx.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, money.MustParse("9.99"), got.Amount)
}

func TestStore_FailWith(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("db down")
	s.FailWith("goal.ListForUser", boom)

	repo, _ := s.GoalRepository()
	_, err := repo.ListForUser(ctx, uuid.New())
	assert.ErrorIs(t, err, boom)

	s.FailWith("goal.ListForUser", nil)
	list, err := repo.ListForUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, list)
}
