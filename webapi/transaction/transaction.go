// Package transaction exposes the income and expense routes.
package transaction

import (
	"github.com/Enryuk3/kash-app/pkg/middleware"
	transactionsvc "github.com/Enryuk3/kash-app/pkg/service/transaction"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/Enryuk3/kash-app/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(r fiber.Router, svc *transactionsvc.Service, protected ...fiber.Handler) {
	g := r.Group("/transactions", protected...)
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Get("/summary", Summary(svc))
	g.Get("/:id", Get(svc))
	g.Patch("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

// List returns the caller's transactions with their category.
// @Summary List transactions
// @Description Most recent date first; optionally filtered by type
// @Tags transactions
// @Produce json
// @Param type query string false "income or expense"
// @Success 200 {array} dto.TransactionRead
// @Failure 401 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/transactions [get]
// @Security Bearer
func List(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		kind, err := validation.EntryTypeFilter(c.Query("type"))
		if err != nil {
			return common.Problem(c, err)
		}
		list, err := svc.List(c.UserContext(), u.ID, kind)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(list)
	}
}

// Summary returns income, expense and balance totals.
// @Summary Transaction totals
// @Tags transactions
// @Produce json
// @Success 200 {object} transaction.Totals
// @Router /api/transactions/summary [get]
// @Security Bearer
func Summary(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		totals, err := svc.Totals(c.UserContext(), u.ID)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(totals)
	}
}

// Get returns one transaction.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionRead
// @Failure 404 {object} common.ProblemDetails
// @Router /api/transactions/{id} [get]
// @Security Bearer
func Get(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.Problem(c, err)
		}
		t, err := svc.Get(c.UserContext(), id, u.ID)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(t)
	}
}

// Create records a transaction under one of the caller's categories.
// @Summary Create transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body validation.TransactionInput true "Transaction"
// @Success 201 {object} dto.TransactionRead
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/transactions [post]
// @Security Bearer
func Create(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		in, err := validation.Transaction(c.Body())
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

// Update replaces a transaction's fields.
// @Summary Update transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body validation.TransactionInput true "Transaction"
// @Success 200 {object} dto.TransactionRead
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/transactions/{id} [patch]
// @Security Bearer
func Update(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := middleware.CurrentUser(c)
		if err != nil {
			return common.Problem(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.Problem(c, err)
		}
		in, err := validation.TransactionUpdate(c.Body())
		if err != nil {
			return common.Problem(c, err)
		}
		updated, err := svc.Update(c.UserContext(), id, u.ID, in)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(updated)
	}
}

// Delete removes a transaction.
// @Summary Delete transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /api/transactions/{id} [delete]
// @Security Bearer
func Delete(svc *transactionsvc.Service) fiber.Handler {
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
