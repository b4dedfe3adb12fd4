package user

import (
	"context"

	infrarepo "github.com/Enryuk3/kash-app/infra/repository"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:           create.ID,
		Name:         create.Name,
		Email:        create.Email,
		PasswordHash: create.PasswordHash,
		CreatedAt:    create.CreatedAt,
		UpdatedAt:    create.UpdatedAt,
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(u).Error
	})
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var u User
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	var u User
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
