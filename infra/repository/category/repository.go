package category

import (
	"context"

	infrarepo "github.com/Enryuk3/kash-app/infra/repository"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed category repository.
func New(db *gorm.DB) category.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.CategoryCreate,
) (*dto.CategoryRead, error) {
	m := fromCreate(create)
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	}); err != nil {
		return nil, err
	}
	return m.ToDTO(), nil
}

func (r *repository) CreateBatch(
	ctx context.Context,
	creates []*dto.CategoryCreate,
) (int64, error) {
	if len(creates) == 0 {
		return 0, nil
	}
	models := make([]*Category, 0, len(creates))
	for _, c := range creates {
		models = append(models, fromCreate(c))
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models)
	if res.Error != nil {
		return 0, infrarepo.MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.CategoryRead, error) {
	var rows []Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*dto.CategoryRead, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToDTO())
	}
	return result, nil
}

func (r *repository) GetForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*dto.CategoryRead, error) {
	var m Category
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.ToDTO(), nil
}

func (r *repository) GetByNameForUser(
	ctx context.Context,
	name string,
	userID uuid.UUID,
) (*dto.CategoryRead, error) {
	var m Category
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("name = ? AND user_id = ?", name, userID).
			First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.ToDTO(), nil
}

func (r *repository) CountForUser(
	ctx context.Context,
	userID uuid.UUID,
) (int64, error) {
	var n int64
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Model(&Category{}).
			Where("user_id = ?", userID).
			Count(&n).Error
	})
	return n, err
}
