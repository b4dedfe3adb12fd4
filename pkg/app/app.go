package app

import (
	"log/slog"

	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/Enryuk3/kash-app/pkg/service/auth"
	"github.com/Enryuk3/kash-app/pkg/service/category"
	"github.com/Enryuk3/kash-app/pkg/service/goal"
	"github.com/Enryuk3/kash-app/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Uow repository.UnitOfWork
	// LimiterStorage backs the rate limiter. Nil keeps the in-memory store.
	LimiterStorage fiber.Storage
	Logger         *slog.Logger
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AuthService        *auth.Service
	CategoryService    *category.Service
	GoalService        *goal.Service
	TransactionService *transaction.Service
}

func New(deps *Deps, cfg *config.App) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Deps:               deps,
		Config:             cfg,
		AuthService:        auth.New(deps.Uow, cfg.Auth.Jwt, logger),
		CategoryService:    category.New(deps.Uow, logger),
		GoalService:        goal.New(deps.Uow, logger),
		TransactionService: transaction.New(deps.Uow, logger),
	}
}
