// Package testutils runs the assembled kash API for handler and end-to-end
// tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Enryuk3/kash-app/internal/fixtures"
	"github.com/Enryuk3/kash-app/pkg/app"
	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/Enryuk3/kash-app/webapi"
	"github.com/Enryuk3/kash-app/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TestConfig returns an application config suitable for tests.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{},
		Auth: &config.Auth{
			Jwt:    &config.Jwt{Secret: "test-secret-0123456789", Expiry: time.Hour},
			Cookie: &config.Cookie{Name: "kash_session"},
		},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// NewApp builds the full fiber app on top of uow.
func NewApp(uow repository.UnitOfWork, cfg *config.App) *fiber.App {
	deps := &app.Deps{
		Uow:    uow,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return webapi.SetupApp(app.New(deps, cfg))
}

// E2ETestSuite drives the API over app.Test. By default it runs on the
// in-memory store; embedding suites may swap Uow before SetupTest.
type E2ETestSuite struct {
	suite.Suite
	Cfg   *config.App
	Uow   repository.UnitOfWork
	Store *fixtures.Store
	App   *fiber.App
}

// SetupTest gives every test a fresh app. A Uow set by an embedding suite
// is kept; otherwise a new in-memory store is used.
func (s *E2ETestSuite) SetupTest() {
	if s.Cfg == nil {
		s.Cfg = TestConfig()
	}
	uow := s.Uow
	if uow == nil {
		s.Store = fixtures.NewStore()
		uow = s.Store
	}
	s.App = NewApp(uow, s.Cfg)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Decode reads the JSON body of resp into out and closes it.
func (s *E2ETestSuite) Decode(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint: errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

// Problem decodes a problem details body.
func (s *E2ETestSuite) Problem(resp *http.Response) common.ProblemDetails {
	s.Equal(common.ContentTypeProblem, resp.Header.Get(fiber.HeaderContentType))
	var pd common.ProblemDetails
	s.Decode(resp, &pd)
	return pd
}

// SignUp registers a fresh user and returns the session token.
func (s *E2ETestSuite) SignUp() string {
	email := fmt.Sprintf("user_%s@example.com", uuid.NewString()[:8])
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":"password123"}`, email)
	resp := s.MakeRequest(http.MethodPost, "/api/auth/sign-up", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var view struct {
		Session struct {
			Token string `json:"token"`
		} `json:"session"`
	}
	s.Decode(resp, &view)
	s.Require().NotEmpty(view.Session.Token)
	return view.Session.Token
}

// CreateCategory creates a category through the API and returns its id.
func (s *E2ETestSuite) CreateCategory(token, name, kind string) string {
	body := fmt.Sprintf(`{"name":%q,"type":%q}`, name, kind)
	resp := s.MakeRequest(http.MethodPost, "/api/categories", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	s.Decode(resp, &created)
	return created.ID
}
