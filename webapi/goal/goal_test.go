package goal_test

import (
	"net/http"
	"testing"

	"github.com/Enryuk3/kash-app/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type GoalTestSuite struct {
	testutils.E2ETestSuite
	token string
}

func TestGoalTestSuite(t *testing.T) {
	suite.Run(t, new(GoalTestSuite))
}

func (s *GoalTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.token = s.SignUp()
}

type goalBody struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    *string `json:"targetDate"`
	IsCompleted   bool    `json:"isCompleted"`
}

func (s *GoalTestSuite) create(body string) goalBody {
	resp := s.MakeRequest(http.MethodPost, "/api/goals", body, s.token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var g goalBody
	s.Decode(resp, &g)
	return g
}

func (s *GoalTestSuite) TestCreateStartsIncomplete() {
	g := s.create(`{"name":"Bike","targetAmount":500,"currentAmount":20,"targetDate":"2026-06-01","isCompleted":true}`)
	s.Equal("Bike", g.Name)
	s.False(g.IsCompleted)
	s.Require().NotNil(g.TargetDate)
	s.Contains(*g.TargetDate, "2026-06-01")
}

func (s *GoalTestSuite) TestCreateInvalid() {
	resp := s.MakeRequest(http.MethodPost, "/api/goals", `{"name":"","targetAmount":0.5,"currentAmount":-1}`, s.token)
	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	pd := s.Problem(resp)
	s.Contains(pd.Errors, "name")
	s.Contains(pd.Errors, "targetAmount")
	s.Contains(pd.Errors, "currentAmount")
}

func (s *GoalTestSuite) TestListNewestFirst() {
	first := s.create(`{"name":"Trip","targetAmount":1000,"currentAmount":0}`)
	second := s.create(`{"name":"Laptop","targetAmount":1500,"currentAmount":0}`)

	resp := s.MakeRequest(http.MethodGet, "/api/goals", "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var list []goalBody
	s.Decode(resp, &list)
	s.Require().Len(list, 2)
	s.Equal(second.ID, list[0].ID)
	s.Equal(first.ID, list[1].ID)
}

func (s *GoalTestSuite) TestGet() {
	g := s.create(`{"name":"Trip","targetAmount":1000,"currentAmount":0}`)

	resp := s.MakeRequest(http.MethodGet, "/api/goals/"+g.ID, "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var got goalBody
	s.Decode(resp, &got)
	s.Equal(g, got)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		resp = s.MakeRequest(http.MethodGet, "/api/goals/"+id, "", s.token)
		s.Equal(fiber.StatusNotFound, resp.StatusCode)
	}
}

func (s *GoalTestSuite) TestPatch() {
	g := s.create(`{"name":"Trip","description":"Lisbon","targetAmount":1000,"currentAmount":0,"targetDate":"2026-09-01"}`)

	resp := s.MakeRequest(http.MethodPatch, "/api/goals/"+g.ID, `{"currentAmount":1000,"isCompleted":true,"description":null}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var updated goalBody
	s.Decode(resp, &updated)
	s.Equal("Trip", updated.Name)
	s.Equal(1000.0, updated.CurrentAmount)
	s.True(updated.IsCompleted)
	s.Nil(updated.Description)
	s.NotNil(updated.TargetDate)

	resp = s.MakeRequest(http.MethodPatch, "/api/goals/"+g.ID, `{"targetAmount":0}`, s.token)
	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *GoalTestSuite) TestPatchBlankDescriptionClearsIt() {
	g := s.create(`{"name":"Trip","description":"Lisbon","targetAmount":1000,"currentAmount":0}`)
	s.Require().NotNil(g.Description)

	resp := s.MakeRequest(http.MethodPatch, "/api/goals/"+g.ID, `{"description":"   "}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var updated goalBody
	s.Decode(resp, &updated)
	s.Nil(updated.Description)

	resp = s.MakeRequest(http.MethodGet, "/api/goals/"+g.ID, "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var got goalBody
	s.Decode(resp, &got)
	s.Nil(got.Description)
}

func (s *GoalTestSuite) TestPatchAmountPrecision() {
	g := s.create(`{"name":"Trip","targetAmount":1000,"currentAmount":0}`)

	resp := s.MakeRequest(http.MethodPatch, "/api/goals/"+g.ID, `{"currentAmount":10.001}`, s.token)
	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	s.Equal("must have at most 2 decimal places", s.Problem(resp).Errors["currentAmount"])

	resp = s.MakeRequest(http.MethodPatch, "/api/goals/"+g.ID, `{"currentAmount":10.25}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var updated goalBody
	s.Decode(resp, &updated)
	s.Equal(10.25, updated.CurrentAmount)
}

func (s *GoalTestSuite) TestForeignGoalIsNotFound() {
	g := s.create(`{"name":"Trip","targetAmount":1000,"currentAmount":0}`)
	other := s.SignUp()

	resp := s.MakeRequest(http.MethodPatch, "/api/goals/"+g.ID, `{"name":"Mine"}`, other)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/api/goals/"+g.ID, "", other)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	_, _, goals, _ := s.Store.Counts()
	s.Equal(1, goals)
}

func (s *GoalTestSuite) TestDelete() {
	g := s.create(`{"name":"Trip","targetAmount":1000,"currentAmount":0}`)

	resp := s.MakeRequest(http.MethodDelete, "/api/goals/"+g.ID, "", s.token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/api/goals/"+g.ID, "", s.token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}
