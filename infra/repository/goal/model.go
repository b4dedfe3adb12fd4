package goal

import (
	"time"

	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/google/uuid"
)

// Goal represents a savings goal record in the database.
type Goal struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index"`
	Name          string       `gorm:"size:100;not null"`
	Description   *string      `gorm:"size:500"`
	TargetAmount  money.Amount `gorm:"type:numeric(14,2);not null"`
	CurrentAmount money.Amount `gorm:"type:numeric(14,2);not null"`
	TargetDate    *time.Time
	IsCompleted   bool `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Goal model.
func (Goal) TableName() string {
	return "goals"
}

// ToDTO maps the model to its read view.
func (m *Goal) ToDTO() *dto.GoalRead {
	return &dto.GoalRead{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		IsCompleted:   m.IsCompleted,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// updates turns a partial update into a column map. Only provided fields
// are included.
func updates(u *dto.GoalUpdate) map[string]any {
	m := make(map[string]any)
	if u.Name != nil {
		m["name"] = *u.Name
	}
	switch {
	case u.ClearDescription:
		m["description"] = nil
	case u.Description != nil:
		m["description"] = *u.Description
	}
	if u.TargetAmount != nil {
		m["target_amount"] = *u.TargetAmount
	}
	if u.CurrentAmount != nil {
		m["current_amount"] = *u.CurrentAmount
	}
	switch {
	case u.ClearTargetDate:
		m["target_date"] = nil
	case u.TargetDate != nil:
		m["target_date"] = *u.TargetDate
	}
	if u.IsCompleted != nil {
		m["is_completed"] = *u.IsCompleted
	}
	return m
}
