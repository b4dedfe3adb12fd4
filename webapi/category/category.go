// Package category exposes the category routes.
package category

import (
	"github.com/Enryuk3/kash-app/pkg/middleware"
	categorysvc "github.com/Enryuk3/kash-app/pkg/service/category"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/Enryuk3/kash-app/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes mounts the category routes on r behind the protected stages.
func Routes(r fiber.Router, svc *categorysvc.Service, protected ...fiber.Handler) {
	g := r.Group("/categories", protected...)
	g.Get("/", List(svc))
	g.Post("/batch", SeedDefaults(svc))
	g.Post("/", Create(svc))
}

// List returns the caller's categories.
// @Summary List categories
// @Description Categories of the authenticated user ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryRead
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/categories [get]
// @Security Bearer
func List(svc *categorysvc.Service) fiber.Handler {
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

// SeedDefaults gives a user without categories the default set.
// @Summary Seed default categories
// @Description Inserts the default categories when the user has none and returns the user's categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryRead
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/categories/batch [post]
// @Security Bearer
func SeedDefaults(svc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		list, err := svc.SeedDefaults(c.UserContext(), u.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create default categories", err, fiber.StatusInternalServerError)
		}
		return c.JSON(list)
	}
}

// Create adds a category.
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body validation.CategoryInput true "Category"
// @Success 201 {object} dto.CategoryRead
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/categories [post]
// @Security Bearer
func Create(svc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		in, err := validation.Category(c.Body())
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
