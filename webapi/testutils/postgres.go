//go:build integration

package testutils

import (
	"context"
	"time"

	"github.com/Enryuk3/kash-app/infra"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresE2ETestSuite runs the API against a migrated Postgres started
// with Testcontainers.
type PostgresE2ETestSuite struct {
	E2ETestSuite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
}

// SetupSuite starts Postgres and applies the embedded migrations.
func (s *PostgresE2ETestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("kash"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	s.Require().NoError(err)
	s.Require().NoError(infra.RunMigrations(s.DB))

	s.Cfg = TestConfig()
	s.Cfg.DB.Url = dsn
	s.Uow = infra.NewUoW(s.DB)
}

// TearDownSuite cleans up the test suite resources
func (s *PostgresE2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}
