// Package goal manages savings goals.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/goal"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/google/uuid"
)

// Service manages a user's savings goals.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New returns a goal service backed by uow.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// List returns the user's goals, newest first.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.GoalRead, error) {
	repo, err := s.uow.GoalRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get goal repository: %w", err)
	}
	return repo.ListForUser(ctx, userID)
}

// Get returns an owned goal. Goals of other users are not found.
func (s *Service) Get(
	ctx context.Context,
	id, userID uuid.UUID,
) (*dto.GoalRead, error) {
	repo, err := s.uow.GoalRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get goal repository: %w", err)
	}
	g, err := repo.GetForUser(ctx, id, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, goal.ErrGoalNotFound
	}
	return g, err
}

// Create stores a new goal. New goals are never completed.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	in *dto.GoalCreate,
) (*dto.GoalRead, error) {
	repo, err := s.uow.GoalRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get goal repository: %w", err)
	}
	create := *in
	create.ID = uuid.New()
	create.UserID = userID
	create.IsCompleted = false
	g, err := repo.Create(ctx, &create)
	if err != nil {
		s.logger.Error("Create goal failed", "user_id", userID, "error", err)
		return nil, err
	}
	return g, nil
}

// Update applies the provided fields to an owned goal and returns the
// result. An empty update returns the goal as stored.
func (s *Service) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	update *dto.GoalUpdate,
) (updated *dto.GoalRead, err error) {
	log := s.logger.With("context", "UpdateGoal", "user_id", userID, "goal_id", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.GoalRepository()
		if err != nil {
			return fmt.Errorf("failed to get goal repository: %w", err)
		}
		if _, err := repo.GetForUser(ctx, id, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return goal.ErrGoalNotFound
			}
			return err
		}
		if !update.Empty() {
			n, err := repo.UpdateForUser(ctx, id, userID, update)
			if err != nil {
				return err
			}
			if n == 0 {
				return goal.ErrGoalNotFound
			}
		}
		updated, err = repo.GetForUser(ctx, id, userID)
		return err
	})
	if err != nil {
		log.Warn("Update goal failed", "error", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes an owned goal in a single scoped statement.
func (s *Service) Delete(
	ctx context.Context,
	id, userID uuid.UUID,
) error {
	repo, err := s.uow.GoalRepository()
	if err != nil {
		return fmt.Errorf("failed to get goal repository: %w", err)
	}
	n, err := repo.DeleteForUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return goal.ErrGoalNotFound
	}
	s.logger.Info("Goal deleted", "user_id", userID, "goal_id", id)
	return nil
}
