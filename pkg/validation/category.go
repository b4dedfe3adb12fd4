package validation

import (
	"strings"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
)

// CategoryInput is the writable shape of a category.
type CategoryInput struct {
	Name  *string `json:"name" validate:"required,min=1,max=50"`
	Type  *string `json:"type" validate:"required,oneof=income expense"`
	Icon  *string `json:"icon" validate:"omitempty,max=64"`
	Color *string `json:"color" validate:"omitempty,max=64"`
}

// Category decodes and validates a category body.
func Category(body []byte) (*dto.CategoryCreate, error) {
	var in CategoryInput
	errs, err := decode(body, &in)
	if err != nil {
		return nil, err
	}
	return in.validate(errs)
}

// Validate checks an already decoded category.
func (in CategoryInput) Validate() (*dto.CategoryCreate, error) {
	return in.validate(nil)
}

func (in CategoryInput) validate(errs *Errors) (*dto.CategoryCreate, error) {
	in.Name = trimmed(in.Name)
	if err := check(&in, errs); err != nil {
		return nil, err
	}
	return &dto.CategoryCreate{
		Name:  *in.Name,
		Type:  domain.EntryType(*in.Type),
		Icon:  nonEmpty(in.Icon),
		Color: nonEmpty(in.Color),
	}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
