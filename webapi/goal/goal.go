// Package goal exposes the savings goal routes.
package goal

import (
	"github.com/Enryuk3/kash-app/pkg/middleware"
	goalsvc "github.com/Enryuk3/kash-app/pkg/service/goal"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/Enryuk3/kash-app/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(r fiber.Router, svc *goalsvc.Service, protected ...fiber.Handler) {
	g := r.Group("/goals", protected...)
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Get("/:id", Get(svc))
	g.Patch("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

// List returns the caller's goals, newest first.
// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {array} dto.GoalRead
// @Failure 401 {object} common.ProblemDetails
// @Router /api/goals [get]
// @Security Bearer
func List(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		list, err := svc.List(c.UserContext(), u.ID)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(list)
	}
}

// Get returns one goal.
// @Summary Get goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.GoalRead
// @Failure 404 {object} common.ProblemDetails
// @Router /api/goals/{id} [get]
// @Security Bearer
func Get(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.Problem(c, err)
		}
		g, err := svc.Get(c.UserContext(), id, u.ID)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(g)
	}
}

// Create adds a goal. New goals start incomplete.
// @Summary Create goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body validation.GoalInput true "Goal"
// @Success 201 {object} dto.GoalRead
// @Failure 400 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/goals [post]
// @Security Bearer
func Create(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		in, err := validation.Goal(c.Body())
		if err != nil {
			return common.Problem(c, err)
		}
		created, err := svc.Create(c.UserContext(), u.ID, in)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// Update applies a partial update. Absent fields are left unchanged and an
// explicit null clears description or targetDate.
// @Summary Update goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body validation.GoalPatchInput true "Fields to change"
// @Success 200 {object} dto.GoalRead
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/goals/{id} [patch]
// @Security Bearer
func Update(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.Problem(c, err)
		}
		patch, err := validation.GoalPatch(c.Body())
		if err != nil {
			return common.Problem(c, err)
		}
		updated, err := svc.Update(c.UserContext(), id, u.ID, patch)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(updated)
	}
}

// Delete removes a goal.
// @Summary Delete goal
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /api/goals/{id} [delete]
// @Security Bearer
func Delete(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.Problem(c, err)
		}
		if err := svc.Delete(c.UserContext(), id, u.ID); err != nil {
			return common.Problem(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
