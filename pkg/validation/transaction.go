package validation

import (
	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/google/uuid"
)

// TransactionInput is the writable shape of a transaction. Updates send the
// full shape as well.
type TransactionInput struct {
	Type        *string       `json:"type" validate:"required,oneof=income expense"`
	Amount      *money.Amount `json:"amount" swaggertype:"number" validate:"required,gt=0,lte=999999999999.99"`
	Description *string       `json:"description" validate:"required,min=3,max=255"`
	Date        *string       `json:"date" validate:"required,isodate"`
	CategoryID  *string       `json:"categoryId" validate:"required,uuid"`
}

// Transaction decodes and validates a transaction body.
func Transaction(body []byte) (*dto.TransactionCreate, error) {
	var in TransactionInput
	errs, err := decode(body, &in)
	if err != nil {
		return nil, err
	}
	return in.validate(errs)
}

// Validate checks an already decoded transaction.
func (in TransactionInput) Validate() (*dto.TransactionCreate, error) {
	return in.validate(nil)
}

func (in TransactionInput) validate(errs *Errors) (*dto.TransactionCreate, error) {
	if err := check(&in, errs); err != nil {
		return nil, err
	}
	date, err := ParseDate(*in.Date)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(*in.CategoryID)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionCreate{
		Type:        domain.EntryType(*in.Type),
		Amount:      *in.Amount,
		Description: *in.Description,
		Date:        date,
		CategoryID:  categoryID,
	}, nil
}

// TransactionUpdate validates a transaction body for an update.
func TransactionUpdate(body []byte) (*dto.TransactionUpdate, error) {
	in, err := Transaction(body)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionUpdate{
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		CategoryID:  in.CategoryID,
	}, nil
}

// EntryTypeFilter validates the optional type query filter. An empty value
// means no filter.
func EntryTypeFilter(raw string) (domain.EntryType, error) {
	kind := domain.EntryType(raw)
	if raw == "" || kind.Valid() {
		return kind, nil
	}
	errs := &Errors{}
	errs.add("type", "must be one of: income, expense")
	return "", errs
}
