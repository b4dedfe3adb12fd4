//go:build integration

package webapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/Enryuk3/kash-app/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PostgresFlowSuite struct {
	testutils.PostgresE2ETestSuite
}

func TestPostgresFlowSuite(t *testing.T) {
	suite.Run(t, new(PostgresFlowSuite))
}

func (s *PostgresFlowSuite) TestBudgetFlow() {
	token := s.SignUp()

	resp := s.MakeRequest(http.MethodPost, "/api/categories/batch", "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var categories []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	}
	s.Decode(resp, &categories)
	s.Require().NotEmpty(categories)

	resp = s.MakeRequest(http.MethodPost, "/api/categories", fmt.Sprintf(`{"name":%q,"type":%q}`, categories[0].Name, categories[0].Type), token)
	s.Equal(fiber.StatusConflict, resp.StatusCode)

	salary := s.CreateCategory(token, "Side job", "income")
	body := fmt.Sprintf(`{"type":"income","amount":120.5,"description":"Logo design","date":"2025-10-03","categoryId":%q}`, salary)
	resp = s.MakeRequest(http.MethodPost, "/api/transactions", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID       string `json:"id"`
		Category struct {
			Name string `json:"name"`
		} `json:"category"`
	}
	s.Decode(resp, &created)
	s.Equal("Side job", created.Category.Name)

	other := s.SignUp()
	resp = s.MakeRequest(http.MethodDelete, "/api/transactions/"+created.ID, "", other)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/transactions/summary", "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var totals struct {
		Income float64 `json:"income"`
	}
	s.Decode(resp, &totals)
	s.Equal(120.5, totals.Income)

	resp = s.MakeRequest(http.MethodPost, "/api/goals", `{"name":"Bike","targetAmount":500,"currentAmount":0,"targetDate":"2026-03-01"}`, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var goal struct {
		ID string `json:"id"`
	}
	s.Decode(resp, &goal)

	resp = s.MakeRequest(http.MethodPatch, "/api/goals/"+goal.ID, `{"targetDate":null,"isCompleted":true}`, token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var patched struct {
		TargetDate  *string `json:"targetDate"`
		IsCompleted bool    `json:"isCompleted"`
	}
	s.Decode(resp, &patched)
	s.Nil(patched.TargetDate)
	s.True(patched.IsCompleted)

	resp = s.MakeRequest(http.MethodDelete, "/api/goals/"+goal.ID, "", token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
}

func (s *PostgresFlowSuite) TestAmountsFitNumericColumns() {
	token := s.SignUp()
	salary := s.CreateCategory(token, "Freelance", "income")
	post := func(amount string) *http.Response {
		body := fmt.Sprintf(`{"type":"income","amount":%s,"description":"Invoice","date":"2025-10-03","categoryId":%q}`, amount, salary)
		return s.MakeRequest(http.MethodPost, "/api/transactions", body, token)
	}

	resp := post("42.55")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	s.Decode(resp, &created)

	resp = s.MakeRequest(http.MethodGet, "/api/transactions/"+created.ID, "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var got struct {
		Amount json.Number `json:"amount"`
	}
	s.Decode(resp, &got)
	s.Equal(json.Number("42.55"), got.Amount)

	for amount, want := range map[string]string{
		"0.001":  "must have at most 2 decimal places",
		"42.555": "must have at most 2 decimal places",
		"1e15":   "must be at most 999999999999.99",
	} {
		resp = post(amount)
		s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode, amount)
		s.Equal(want, s.Problem(resp).Errors["amount"], amount)
	}

	resp = post("999999999999.99")
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck
}

func (s *PostgresFlowSuite) TestCheckConstraintIsValidationError() {
	token := s.SignUp()
	salary := s.CreateCategory(token, "Refunds", "income")
	body := fmt.Sprintf(`{"type":"income","amount":10,"description":"Refund","date":"2025-10-03","categoryId":%q}`, salary)
	resp := s.MakeRequest(http.MethodPost, "/api/transactions", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
	}
	s.Decode(resp, &created)

	repo, err := s.Uow.TransactionRepository()
	s.Require().NoError(err)
	_, err = repo.UpdateForUser(context.Background(), uuid.MustParse(created.ID), uuid.MustParse(created.UserID), &dto.TransactionUpdate{
		Type:        domain.EntryTypeIncome,
		Amount:      money.Amount(0),
		Description: "Refund",
		Date:        time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
	})
	s.ErrorIs(err, domain.ErrValidation)
}
