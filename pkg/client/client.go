// Package client is a Go client for the kash API. The session cookie set
// at sign-up or sign-in is kept in a cookie jar and sent on every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/transaction"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/google/uuid"
)

// APIError is a problem details response returned by the API.
type APIError struct {
	Status int               `json:"status"`
	Title  string            `json:"title"`
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors"`
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%d %s", e.Status, e.Title)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
}

// Is maps the status onto the domain sentinel errors, so callers can test
// errors.Is(err, domain.ErrNotFound).
func (e *APIError) Is(target error) bool {
	switch e.Status {
	case http.StatusNotFound:
		return target == domain.ErrNotFound
	case http.StatusConflict:
		return target == domain.ErrAlreadyExists
	case http.StatusUnauthorized:
		return target == domain.ErrUnauthorized
	case http.StatusUnprocessableEntity:
		return target == domain.ErrValidation
	}
	return false
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its Jar is replaced
// when nil.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// SetToken makes the client send token as a bearer credential, for callers
// that keep the session outside the cookie jar.
func (c *Client) SetToken(token string) {
	c.token = token
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}
	return c, nil
}

// NewCategory is the body of a category create.
type NewCategory struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

// NewGoal is the body of a goal create. TargetDate is YYYY-MM-DD.
type NewGoal struct {
	Name          string       `json:"name"`
	Description   *string      `json:"description,omitempty"`
	TargetAmount  money.Amount `json:"targetAmount"`
	CurrentAmount money.Amount `json:"currentAmount"`
	TargetDate    *string      `json:"targetDate,omitempty"`
}

// NewTransaction is the body of a transaction create or update.
type NewTransaction struct {
	Type        string       `json:"type"`
	Amount      money.Amount `json:"amount"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	CategoryID  uuid.UUID    `json:"categoryId"`
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) (*dto.SessionView, error) {
	var out dto.SessionView
	in := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-up", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*dto.SessionView, error) {
	var out dto.SessionView
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/sign-out", nil, nil)
}

// Session returns the current session; both members are nil when signed
// out.
func (c *Client) Session(ctx context.Context) (*dto.SessionView, error) {
	var out dto.SessionView
	if err := c.do(ctx, http.MethodGet, "/api/auth/get-session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]*dto.CategoryRead, error) {
	var out []*dto.CategoryRead
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SeedCategories asks the API to create the default categories. Users that
// already have categories get them back unchanged.
func (c *Client) SeedCategories(ctx context.Context) ([]*dto.CategoryRead, error) {
	var out []*dto.CategoryRead
	if err := c.do(ctx, http.MethodPost, "/api/categories/batch", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in NewCategory) (*dto.CategoryRead, error) {
	var out dto.CategoryRead
	if err := c.do(ctx, http.MethodPost, "/api/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Goals(ctx context.Context) ([]*dto.GoalRead, error) {
	var out []*dto.GoalRead
	if err := c.do(ctx, http.MethodGet, "/api/goals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Goal(ctx context.Context, id uuid.UUID) (*dto.GoalRead, error) {
	var out dto.GoalRead
	if err := c.do(ctx, http.MethodGet, "/api/goals/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateGoal(ctx context.Context, in NewGoal) (*dto.GoalRead, error) {
	var out dto.GoalRead
	if err := c.do(ctx, http.MethodPost, "/api/goals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGoal sends a partial update. A nil value clears description or
// targetDate.
func (c *Client) UpdateGoal(ctx context.Context, id uuid.UUID, fields map[string]any) (*dto.GoalRead, error) {
	var out dto.GoalRead
	if err := c.do(ctx, http.MethodPatch, "/api/goals/"+id.String(), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/goals/"+id.String(), nil, nil)
}

// Transactions lists transactions; kind filters by type when set.
func (c *Client) Transactions(ctx context.Context, kind domain.EntryType) ([]*dto.TransactionRead, error) {
	path := "/api/transactions"
	if kind != "" {
		path += "?type=" + url.QueryEscape(string(kind))
	}
	var out []*dto.TransactionRead
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Transaction(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var out dto.TransactionRead
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTransaction(ctx context.Context, in NewTransaction) (*dto.TransactionRead, error) {
	var out dto.TransactionRead
	if err := c.do(ctx, http.MethodPost, "/api/transactions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id uuid.UUID, in NewTransaction) (*dto.TransactionRead, error) {
	var out dto.TransactionRead
	if err := c.do(ctx, http.MethodPatch, "/api/transactions/"+id.String(), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+id.String(), nil, nil)
}

// Summary returns the server-side totals.
func (c *Client) Summary(ctx context.Context) (*transaction.Totals, error) {
	var out transaction.Totals
	if err := c.do(ctx, http.MethodGet, "/api/transactions/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeProblem(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeProblem(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(b) == 0 {
		return apiErr
	}
	var pd APIError
	if err := json.Unmarshal(b, &pd); err != nil {
		return apiErr
	}
	if pd.Title != "" {
		apiErr.Title = pd.Title
	}
	apiErr.Detail = pd.Detail
	apiErr.Errors = pd.Errors
	return apiErr
}

// StatusOf returns the HTTP status of an APIError, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
