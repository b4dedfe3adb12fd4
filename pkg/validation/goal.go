package validation

import (
	"strings"
	"time"

	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
)

// GoalInput is the writable shape of a new goal.
type GoalInput struct {
	Name          *string          `json:"name" validate:"required,min=1,max=100"`
	Description   Nullable[string] `json:"description" validate:"omitempty,max=500"`
	TargetAmount  *money.Amount    `json:"targetAmount" swaggertype:"number" validate:"required,gte=1,lte=999999999999.99"`
	CurrentAmount *money.Amount    `json:"currentAmount" swaggertype:"number" validate:"required,gte=0,lte=999999999999.99"`
	TargetDate    Nullable[string] `json:"targetDate" validate:"omitempty,isodate"`
}

// GoalPatchInput has the same rules as GoalInput with every field optional.
// An explicit null clears description or targetDate.
type GoalPatchInput struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description   Nullable[string] `json:"description" validate:"omitempty,max=500"`
	TargetAmount  *money.Amount    `json:"targetAmount" swaggertype:"number" validate:"omitempty,gte=1,lte=999999999999.99"`
	CurrentAmount *money.Amount    `json:"currentAmount" swaggertype:"number" validate:"omitempty,gte=0,lte=999999999999.99"`
	TargetDate    Nullable[string] `json:"targetDate" validate:"omitempty,isodate"`
	IsCompleted   *bool            `json:"isCompleted"`
}

// Goal decodes and validates a new goal. The goal always starts incomplete.
func Goal(body []byte) (*dto.GoalCreate, error) {
	var in GoalInput
	errs, err := decode(body, &in)
	if err != nil {
		return nil, err
	}
	in.Name = trimmed(in.Name)
	if err := check(&in, errs); err != nil {
		return nil, err
	}
	targetDate, err := optionalDate(in.TargetDate)
	if err != nil {
		return nil, err
	}
	return &dto.GoalCreate{
		Name:          *in.Name,
		Description:   nonEmpty(in.Description.Ptr()),
		TargetAmount:  *in.TargetAmount,
		CurrentAmount: *in.CurrentAmount,
		TargetDate:    targetDate,
		IsCompleted:   false,
	}, nil
}

// GoalPatch decodes and validates a partial goal update.
func GoalPatch(body []byte) (*dto.GoalUpdate, error) {
	var in GoalPatchInput
	errs, err := decode(body, &in)
	if err != nil {
		return nil, err
	}
	in.Name = trimmed(in.Name)
	if err := check(&in, errs); err != nil {
		return nil, err
	}
	targetDate, err := optionalDate(in.TargetDate)
	if err != nil {
		return nil, err
	}
	return &dto.GoalUpdate{
		Name:             in.Name,
		Description:      nonEmpty(in.Description.Ptr()),
		ClearDescription: in.Description.IsNull() || (in.Description.Valid && strings.TrimSpace(in.Description.Value) == ""),
		TargetAmount:     in.TargetAmount,
		CurrentAmount:    in.CurrentAmount,
		TargetDate:       targetDate,
		ClearTargetDate:  in.TargetDate.IsNull(),
		IsCompleted:      in.IsCompleted,
	}, nil
}

func optionalDate(n Nullable[string]) (*time.Time, error) {
	if !n.Valid {
		return nil, nil
	}
	t, err := ParseDate(n.Value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
