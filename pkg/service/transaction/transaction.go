// Package transaction records income and expenses. A transaction always
// points at a category owned by the same user.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/transaction"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/google/uuid"
)

const categoryField = "categoryId"

// Service records and summarizes a user's transactions.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New returns a transaction service backed by uow.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// List returns the user's transactions, most recent first. kind filters by
// type when set.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.EntryType,
) ([]*dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction repository: %w", err)
	}
	return repo.ListForUser(ctx, userID, kind)
}

// Get returns an owned transaction with its category.
func (s *Service) Get(
	ctx context.Context,
	id, userID uuid.UUID,
) (*dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction repository: %w", err)
	}
	t, err := repo.GetForUser(ctx, id, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, transaction.ErrTransactionNotFound
	}
	return t, err
}

// Create records a transaction under one of the user's categories and
// returns it with the category attached.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	in *dto.TransactionCreate,
) (created *dto.TransactionRead, err error) {
	log := s.logger.With("context", "CreateTransaction", "user_id", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := ensureCategory(ctx, uow, in.CategoryID, userID); err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return fmt.Errorf("failed to get transaction repository: %w", err)
		}
		create := *in
		create.ID = uuid.New()
		create.UserID = userID
		if _, err := repo.Create(ctx, &create); err != nil {
			if errors.Is(err, domain.ErrInvalidReference) {
				return domain.WithField(transaction.ErrInvalidCategory, categoryField)
			}
			return err
		}
		created, err = repo.GetForUser(ctx, create.ID, userID)
		return err
	})
	if err != nil {
		log.Warn("Create transaction failed", "error", err)
		return nil, err
	}
	log.Info("Transaction created", "transaction_id", created.ID)
	return created, nil
}

// Update replaces the editable fields of an owned transaction. The new
// category is checked for ownership even when unchanged.
func (s *Service) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	update *dto.TransactionUpdate,
) (updated *dto.TransactionRead, err error) {
	log := s.logger.With("context", "UpdateTransaction", "user_id", userID, "transaction_id", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return fmt.Errorf("failed to get transaction repository: %w", err)
		}
		if _, err := repo.GetForUser(ctx, id, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return transaction.ErrTransactionNotFound
			}
			return err
		}
		if err := ensureCategory(ctx, uow, update.CategoryID, userID); err != nil {
			return err
		}
		n, err := repo.UpdateForUser(ctx, id, userID, update)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidReference) {
				return domain.WithField(transaction.ErrInvalidCategory, categoryField)
			}
			return err
		}
		if n == 0 {
			return transaction.ErrTransactionNotFound
		}
		updated, err = repo.GetForUser(ctx, id, userID)
		return err
	})
	if err != nil {
		log.Warn("Update transaction failed", "error", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes an owned transaction in a single scoped statement.
func (s *Service) Delete(
	ctx context.Context,
	id, userID uuid.UUID,
) error {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return fmt.Errorf("failed to get transaction repository: %w", err)
	}
	n, err := repo.DeleteForUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return transaction.ErrTransactionNotFound
	}
	s.logger.Info("Transaction deleted", "user_id", userID, "transaction_id", id)
	return nil
}

// Totals sums the user's transactions by type.
func (s *Service) Totals(
	ctx context.Context,
	userID uuid.UUID,
) (*transaction.Totals, error) {
	list, err := s.List(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	var t transaction.Totals
	for _, tx := range list {
		t.Add(tx.Type, tx.Amount)
	}
	return &t, nil
}

func ensureCategory(
	ctx context.Context,
	uow repository.UnitOfWork,
	categoryID, userID uuid.UUID,
) error {
	repo, err := uow.CategoryRepository()
	if err != nil {
		return fmt.Errorf("failed to get category repository: %w", err)
	}
	if _, err := repo.GetForUser(ctx, categoryID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithField(transaction.ErrCategoryNotOwned, categoryField)
		}
		return err
	}
	return nil
}
