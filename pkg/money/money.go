// Package money holds the amount type used for transactions, goals and
// totals. Amounts are kept in cents so sums are exact.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places an amount may carry. It matches
// the NUMERIC(14,2) columns.
const Decimals = 2

// MaxCents is the largest absolute amount the store accepts,
// 999999999999.99.
const MaxCents Amount = 99_999_999_999_999

var (
	// ErrTooManyDecimals is returned for amounts finer than a cent.
	ErrTooManyDecimals = fmt.Errorf("amount has more than %d decimal places: %w", Decimals, domain.ErrValidation)
	// ErrOutOfRange is returned for amounts beyond MaxCents.
	ErrOutOfRange = fmt.Errorf("amount exceeds %s: %w", MaxCents, domain.ErrValidation)
	// ErrNotANumber is returned when the input is not a decimal number.
	ErrNotANumber = fmt.Errorf("amount is not a number: %w", domain.ErrValidation)
)

var maxDecimal = MaxCents.Decimal()

// Amount is a money value in the smallest unit (cents).
type Amount int64

// FromDecimal converts d to an Amount. d must be representable in cents
// and within MaxCents.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if !d.Equal(d.Truncate(Decimals)) {
		return 0, ErrTooManyDecimals
	}
	if d.Abs().GreaterThan(maxDecimal) {
		return 0, ErrOutOfRange
	}
	return Amount(d.Shift(Decimals).IntPart()), nil
}

// Parse reads a decimal string such as "42.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	return FromDecimal(d)
}

// MustParse is Parse for constants; it panics on invalid input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the amount in the main unit.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Decimals)
}

// Float64 returns the amount in the main unit. Only for display and
// comparisons that tolerate rounding.
func (a Amount) Float64() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// String formats the amount with exactly two decimals.
func (a Amount) String() string {
	return a.Decimal().StringFixed(Decimals)
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().String()), nil
}

// UnmarshalJSON accepts JSON numbers only.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return &json.UnmarshalTypeError{Value: jsonKind(s), Type: reflect.TypeOf(float64(0))}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + s, Type: reflect.TypeOf(float64(0))}
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value stores the amount as a decimal string for NUMERIC columns.
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal().String(), nil
}

// Scan reads NUMERIC values returned as strings, bytes or floats.
func (a *Amount) Scan(src any) error {
	if src == nil {
		return errors.New("money: cannot scan NULL into Amount")
	}
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("money: %w", err)
	}
	v, err := FromDecimal(d.Round(Decimals))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func jsonKind(s string) string {
	switch {
	case strings.HasPrefix(s, `"`):
		return "string"
	case s == "true" || s == "false":
		return "bool"
	case strings.HasPrefix(s, "{"):
		return "object"
	case strings.HasPrefix(s, "["):
		return "array"
	default:
		return s
	}
}
