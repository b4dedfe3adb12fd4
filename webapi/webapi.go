// Package webapi assembles the kash HTTP API. Route groups live in
// sub-packages:
// - auth: sign-up, sign-in and session endpoints
// - category: category endpoints
// - goal: savings goal endpoints
// - transaction: income and expense endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/Enryuk3/kash-app/pkg/app"
	"github.com/Enryuk3/kash-app/pkg/middleware"
	authweb "github.com/Enryuk3/kash-app/webapi/auth"
	categoryweb "github.com/Enryuk3/kash-app/webapi/category"
	"github.com/Enryuk3/kash-app/webapi/common"
	goalweb "github.com/Enryuk3/kash-app/webapi/goal"
	transactionweb "github.com/Enryuk3/kash-app/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config

	fiberApp := fiber.New(fiber.Config{
		AppName:      "kash",
		ErrorHandler: common.ErrorHandler,
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
	}))

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(limiter.New(limiter.Config{
		Max:          cfg.RateLimit.MaxRequests,
		Expiration:   cfg.RateLimit.Window,
		Storage:      a.Deps.LimiterStorage,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	fiberApp.Use(middleware.Metrics())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("kash API is running")
	})
	fiberApp.Get("/metrics", middleware.MetricsHandler())

	api := fiberApp.Group("/api")
	authweb.Routes(api, a.AuthService, cfg.Auth)

	protected := middleware.Authenticated(cfg.Auth, a.AuthService)
	categoryweb.Routes(api, a.CategoryService, protected...)
	goalweb.Routes(api, a.GoalService, protected...)
	transactionweb.Routes(api, a.TransactionService, protected...)
	return fiberApp
}

// clientKey identifies the caller for rate limiting. Behind a proxy the
// first X-Forwarded-For hop wins, then X-Real-IP, then the peer address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
