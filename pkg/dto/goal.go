package dto

import (
	"time"

	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/google/uuid"
)

// GoalCreate represents the data needed to create a savings goal.
type GoalCreate struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   *string
	TargetAmount  money.Amount
	CurrentAmount money.Amount
	TargetDate    *time.Time
	IsCompleted   bool
}

// GoalUpdate carries a partial goal update. Nil pointers leave the column
// unchanged; the Clear flags set nullable columns to NULL.
type GoalUpdate struct {
	Name             *string
	Description      *string
	ClearDescription bool
	TargetAmount     *money.Amount
	CurrentAmount    *money.Amount
	TargetDate       *time.Time
	ClearTargetDate  bool
	IsCompleted      *bool
}

// Empty reports whether the update would change nothing.
func (u *GoalUpdate) Empty() bool {
	return u.Name == nil &&
		u.Description == nil && !u.ClearDescription &&
		u.TargetAmount == nil &&
		u.CurrentAmount == nil &&
		u.TargetDate == nil && !u.ClearTargetDate &&
		u.IsCompleted == nil
}

// GoalRead represents a read-optimized view of a goal.
type GoalRead struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	Description   *string      `json:"description"`
	TargetAmount  money.Amount `json:"targetAmount" swaggertype:"number"`
	CurrentAmount money.Amount `json:"currentAmount" swaggertype:"number"`
	TargetDate    *time.Time   `json:"targetDate"`
	IsCompleted   bool         `json:"isCompleted"`
	UserID        uuid.UUID    `json:"userId"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
