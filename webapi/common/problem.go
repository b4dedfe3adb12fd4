// Package common holds the HTTP helpers shared by the route packages.
package common

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/middleware"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ContentTypeProblem is the media type of error responses.
const ContentTypeProblem = "application/problem+json"

const internalDetail = "An unexpected error occurred"

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, validation.ErrMalformedBody):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidReference):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ProblemDetailsJSON writes err as a problem response. Optional args
// override the derived values: a string sets the detail, an int the status
// and a map[string]string the errors member. An empty title is derived
// from the status. Validation failures carry their field map; field scoped
// domain errors report the field as errors.field. Server errors are logged
// and answered with a generic detail.
func ProblemDetailsJSON(
	c *fiber.Ctx,
	title string,
	err error,
	args ...any,
) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Status:   ErrorToStatusCode(err),
		Instance: c.OriginalURL(),
	}

	var verrs *validation.Errors
	var ferr *domain.FieldError
	switch {
	case errors.As(err, &verrs):
		pd.Detail = verrs.Error()
		pd.Errors = verrs.Map()
	case errors.As(err, &ferr):
		pd.Detail = summary(ferr.Err)
		pd.Errors = map[string]string{"field": ferr.Field}
	case err != nil:
		pd.Detail = summary(err)
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			pd.Detail = v
		case int:
			pd.Status = v
		case map[string]string:
			pd.Errors = v
		}
	}

	if pd.Status >= fiber.StatusInternalServerError {
		logServerError(c, err)
		pd.Detail = internalDetail
		pd.Errors = nil
	}
	if title == "" {
		title = http.StatusText(pd.Status)
	}
	pd.Title = title

	return c.Status(pd.Status).JSON(pd, ContentTypeProblem)
}

// Problem writes err with a title derived from its status.
func Problem(c *fiber.Ctx, err error) error {
	return ProblemDetailsJSON(c, "", err)
}

// ErrorHandler is the app-level boundary for errors returned by handlers
// and middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return ProblemDetailsJSON(c, "", err, "Authentication required")
	}
	return Problem(c, err)
}

// ParseID reads a uuid path parameter. A value that is not a uuid cannot
// name an existing row and is reported as not found.
func ParseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

// summary returns the outermost message of a wrapped error chain.
func summary(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i > 0 {
		return msg[:i]
	}
	return msg
}

func logServerError(c *fiber.Ctx, err error) {
	attrs := []any{
		"method", c.Method(),
		"route", c.Route().Path,
		"error", err,
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		attrs = append(attrs, "request_id", rid)
	}
	if u, uerr := middleware.CurrentUser(c); uerr == nil {
		attrs = append(attrs, "user_id", u.ID)
	}
	slog.Default().Error("Request failed", attrs...)
}
