package transaction

import (
	"time"

	"github.com/Enryuk3/kash-app/infra/repository/category"
	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/google/uuid"
)

// Transaction represents a persisted income or expense.
type Transaction struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Category    *category.Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Type        string             `gorm:"size:16;not null"`
	Amount      money.Amount       `gorm:"type:numeric(14,2);not null"`
	Description string             `gorm:"size:255;not null"`
	Date        time.Time          `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// ToDTO maps the model to its read view, including the category when it
// was loaded.
func (m *Transaction) ToDTO() *dto.TransactionRead {
	out := &dto.TransactionRead{
		ID:          m.ID,
		Type:        domain.EntryType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		CategoryID:  m.CategoryID,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Category != nil {
		out.Category = m.Category.ToDTO()
	}
	return out
}
