// Package validation turns untrusted request bodies into typed DTOs.
// Each validator reports every offending field at once.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(nullableValue, Nullable[string]{})
	v.RegisterCustomTypeFunc(amountValue, money.Amount(0))
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp
// and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// decode fills dst field by field so that a type mismatch in one field does
// not hide problems in the others.
func decode(body []byte, dst any) (*Errors, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, ErrMalformedBody
	}

	errs := &Errors{}
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := range t.NumField() {
		name := jsonName(t.Field(i))
		msg, ok := raw[name]
		if !ok || name == "" {
			continue
		}
		if err := json.Unmarshal(msg, v.Field(i).Addr().Interface()); err != nil {
			errs.add(name, typeMessage(err))
		}
	}
	return errs, nil
}

func typeMessage(err error) string {
	switch {
	case errors.Is(err, money.ErrTooManyDecimals):
		return fmt.Sprintf("must have at most %d decimal places", money.Decimals)
	case errors.Is(err, money.ErrOutOfRange):
		return "must be at most " + money.MaxCents.String()
	}
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) {
		return "is invalid"
	}
	switch ute.Type.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "must be a number"
	default:
		return "is invalid"
	}
}

// check runs the struct tags of in and appends failures to errs, skipping
// fields that already failed to decode.
func check(in any, errs *Errors) error {
	if errs == nil {
		errs = &Errors{}
	}
	err := validate.Struct(in)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs.add(fe.Field(), message(fe))
		}
	} else if err != nil {
		return err
	}
	return errs.orNil()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must be greater than zero"
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "must be a valid id"
	case "isodate":
		return "must be a valid date (YYYY-MM-DD)"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

// Nullable is a JSON field that distinguishes absent, null and set.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON only runs when the key is present in the object.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the value when present and non-null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// IsNull reports an explicit null.
func (n Nullable[T]) IsNull() bool {
	return n.Set && !n.Valid
}

func (n Nullable[T]) get() (any, bool) {
	return n.Value, n.Valid
}

// amountValue exposes amounts to the numeric tags in the main unit.
func amountValue(field reflect.Value) any {
	if a, ok := field.Interface().(money.Amount); ok {
		return a.Float64()
	}
	return nil
}

func nullableValue(field reflect.Value) any {
	if n, ok := field.Interface().(interface{ get() (any, bool) }); ok {
		if v, valid := n.get(); valid {
			return v
		}
	}
	return nil
}
