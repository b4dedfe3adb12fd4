// Package category lists, creates and seeds a user's categories.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/category"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/google/uuid"
)

// Service manages a user's categories.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New returns a category service backed by uow.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// List returns the user's categories ordered by name.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.CategoryRead, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository: %w", err)
	}
	return repo.ListForUser(ctx, userID)
}

// Create stores a new category for the user. A name already used by the
// user yields ErrCategoryExists, whether caught up front or by the unique
// index.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	in *dto.CategoryCreate,
) (created *dto.CategoryRead, err error) {
	log := s.logger.With("context", "CreateCategory", "user_id", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return fmt.Errorf("failed to get category repository: %w", err)
		}
		_, err = repo.GetByNameForUser(ctx, in.Name, userID)
		switch {
		case err == nil:
			return category.ErrCategoryExists
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		create := *in
		create.ID = uuid.New()
		create.UserID = userID
		created, err = repo.Create(ctx, &create)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return category.ErrCategoryExists
		}
		return err
	})
	if err != nil {
		log.Warn("Create category failed", "name", in.Name, "error", err)
		return nil, err
	}
	log.Info("Category created", "category_id", created.ID)
	return created, nil
}

// SeedDefaults gives a user without categories the default set. A user
// that already has categories gets them back unchanged.
func (s *Service) SeedDefaults(
	ctx context.Context,
	userID uuid.UUID,
) (out []*dto.CategoryRead, err error) {
	log := s.logger.With("context", "SeedDefaults", "user_id", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return fmt.Errorf("failed to get category repository: %w", err)
		}
		count, err := repo.CountForUser(ctx, userID)
		if err != nil {
			return err
		}
		if count == 0 {
			creates, err := defaultCreates(userID)
			if err != nil {
				return err
			}
			inserted, err := repo.CreateBatch(ctx, creates)
			if err != nil {
				return err
			}
			log.Info("Default categories seeded", "inserted", inserted)
		}
		out, err = repo.ListForUser(ctx, userID)
		return err
	})
	if err != nil {
		log.Error("Seeding categories failed", "error", err)
		return nil, err
	}
	return out, nil
}

func defaultCreates(userID uuid.UUID) ([]*dto.CategoryCreate, error) {
	defaults := category.Defaults()
	creates := make([]*dto.CategoryCreate, 0, len(defaults))
	for _, d := range defaults {
		name, kind, icon := d.Name, d.Type.String(), d.Icon
		c, err := validation.CategoryInput{Name: &name, Type: &kind, Icon: &icon}.Validate()
		if err != nil {
			return nil, fmt.Errorf("default category %q: %w", d.Name, err)
		}
		c.ID = uuid.New()
		c.UserID = userID
		creates = append(creates, c)
	}
	return creates, nil
}
