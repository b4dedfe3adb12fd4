package goal

import (
	"context"
	"time"

	infrarepo "github.com/Enryuk3/kash-app/infra/repository"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository/goal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed goal repository.
func New(db *gorm.DB) goal.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.GoalCreate,
) (*dto.GoalRead, error) {
	id := create.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	m := &Goal{
		ID:            id,
		UserID:        create.UserID,
		Name:          create.Name,
		Description:   create.Description,
		TargetAmount:  create.TargetAmount,
		CurrentAmount: create.CurrentAmount,
		TargetDate:    create.TargetDate,
		IsCompleted:   create.IsCompleted,
	}
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	}); err != nil {
		return nil, err
	}
	return m.ToDTO(), nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.GoalRead, error) {
	var rows []Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*dto.GoalRead, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToDTO())
	}
	return result, nil
}

func (r *repository) GetForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*dto.GoalRead, error) {
	var m Goal
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.ToDTO(), nil
}

func (r *repository) UpdateForUser(
	ctx context.Context,
	id, userID uuid.UUID,
	update *dto.GoalUpdate,
) (int64, error) {
	cols := updates(update)
	if len(cols) == 0 {
		return 0, nil
	}
	cols["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&Goal{}).
		Where("id = ? AND user_id = ?", id, userID).
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
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Goal{})
	if res.Error != nil {
		return 0, infrarepo.MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}
