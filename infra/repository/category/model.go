package category

import (
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/google/uuid"
)

// Category represents a category record in the database.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:categories_user_id_name_key,priority:1"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:categories_user_id_name_key,priority:2"`
	Type      string    `gorm:"size:16;not null"`
	Icon      *string   `gorm:"size:64"`
	Color     *string   `gorm:"size:64"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}

// ToDTO maps the model to its read view.
func (m *Category) ToDTO() *dto.CategoryRead {
	return &dto.CategoryRead{
		ID:        m.ID,
		Name:      m.Name,
		Type:      domain.EntryType(m.Type),
		Icon:      m.Icon,
		Color:     m.Color,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func fromCreate(c *dto.CategoryCreate) *Category {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Category{
		ID:     id,
		UserID: c.UserID,
		Name:   c.Name,
		Type:   string(c.Type),
		Icon:   c.Icon,
		Color:  c.Color,
	}
}
