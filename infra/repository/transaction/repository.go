package transaction

import (
	"context"
	"time"

	infrarepo "github.com/Enryuk3/kash-app/infra/repository"
	"github.com/Enryuk3/kash-app/infra/repository/category"
	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	repo "github.com/Enryuk3/kash-app/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const joinCategories = "JOIN categories ON categories.id = transactions.category_id"

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed transaction repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// ownedCategories selects the ids of the categories owned by userID.
func (r *repository) ownedCategories(userID uuid.UUID) *gorm.DB {
	return r.db.Model(&category.Category{}).Select("id").Where("user_id = ?", userID)
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	id := create.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	m := &Transaction{
		ID:          id,
		UserID:      create.UserID,
		CategoryID:  create.CategoryID,
		Type:        string(create.Type),
		Amount:      create.Amount,
		Description: create.Description,
		Date:        create.Date,
	}
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
	}); err != nil {
		return nil, err
	}
	return m.ToDTO(), nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.EntryType,
) ([]*dto.TransactionRead, error) {
	q := r.db.WithContext(ctx).
		Joins(joinCategories).
		Where("categories.user_id = ?", userID)
	if kind != "" {
		q = q.Where("transactions.type = ?", string(kind))
	}
	var rows []Transaction
	if err := q.Preload("Category").
		Order("transactions.date DESC, transactions.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToDTO())
	}
	return result, nil
}

func (r *repository) GetForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*dto.TransactionRead, error) {
	var m Transaction
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Joins(joinCategories).
			Where("transactions.id = ? AND categories.user_id = ?", id, userID).
			Preload("Category").
			First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.ToDTO(), nil
}

func (r *repository) UpdateForUser(
	ctx context.Context,
	id, userID uuid.UUID,
	update *dto.TransactionUpdate,
) (int64, error) {
	cols := map[string]any{
		"type":        string(update.Type),
		"amount":      update.Amount,
		"description": update.Description,
		"date":        update.Date,
		"updated_at":  time.Now().UTC(),
	}
	if update.CategoryID != uuid.Nil {
		cols["category_id"] = update.CategoryID
	}
	res := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ? AND category_id IN (?)", id, r.ownedCategories(userID)).
		Updates(cols)
	if res.Error != nil {
		return 0, infrarepo.MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *repository) DeleteForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND category_id IN (?)", id, r.ownedCategories(userID)).
		Delete(&Transaction{})
	if res.Error != nil {
		return 0, infrarepo.MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}
