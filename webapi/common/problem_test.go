package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/category"
	"github.com/Enryuk3/kash-app/pkg/domain/transaction"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()
	_, verr := validation.Category([]byte(`{}`))
	require.Error(t, verr)
	_, malformed := validation.Category([]byte(`[1,2]`))
	require.Error(t, malformed)

	tests := []struct {
		err  error
		want int
	}{
		{nil, fiber.StatusOK},
		{malformed, fiber.StatusBadRequest},
		{verr, fiber.StatusUnprocessableEntity},
		{category.ErrCategoryExists, fiber.StatusConflict},
		{domain.WithField(transaction.ErrCategoryNotOwned, "categoryId"), fiber.StatusNotFound},
		{domain.WithField(transaction.ErrInvalidCategory, "categoryId"), fiber.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domain.ErrUnauthorized), fiber.StatusUnauthorized},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("db exploded"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ErrorToStatusCode(tc.err), "%v", tc.err)
	}
}

func problemFor(t *testing.T, handler fiber.Handler) (*http.Response, ProblemDetails) {
	t.Helper()
	app := fiber.New()
	app.Get("/things/:id", handler)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things/abc?x=1", nil))
	require.NoError(t, err)
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return resp, pd
}

func TestProblemDetailsJSON_Validation(t *testing.T) {
	t.Parallel()
	_, verr := validation.Category([]byte(`{"type":"other"}`))
	resp, pd := problemFor(t, func(c *fiber.Ctx) error { return Problem(c, verr) })

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, ContentTypeProblem, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "Unprocessable Entity", pd.Title)
	assert.Equal(t, "/things/abc?x=1", pd.Instance)
	assert.Contains(t, pd.Errors, "name")
	assert.Contains(t, pd.Errors, "type")
	assert.Contains(t, pd.Detail, "name: ")
}

func TestProblemDetailsJSON_FieldScoped(t *testing.T) {
	t.Parallel()
	err := domain.WithField(transaction.ErrCategoryNotOwned, "categoryId")
	resp, pd := problemFor(t, func(c *fiber.Ctx) error { return Problem(c, err) })

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, map[string]string{"field": "categoryId"}, pd.Errors)
	assert.Equal(t, "category not found or not owned", pd.Detail)
}

func TestProblemDetailsJSON_InternalErrorHidden(t *testing.T) {
	t.Parallel()
	resp, pd := problemFor(t, func(c *fiber.Ctx) error {
		return Problem(c, errors.New("pq: password authentication failed"))
	})

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, internalDetail, pd.Detail)
	assert.NotContains(t, pd.Detail, "pq")
}

func TestProblemDetailsJSON_Overrides(t *testing.T) {
	t.Parallel()
	resp, pd := problemFor(t, func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Too Many Requests", errors.New("rate limit exceeded"), fiber.StatusTooManyRequests)
	})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Too Many Requests", pd.Title)
	assert.Equal(t, "rate limit exceeded", pd.Detail)
}

func TestParseID(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		got, err := ParseID(c, "id")
		if err != nil {
			return err
		}
		return c.SendString(got.String())
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/things/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
