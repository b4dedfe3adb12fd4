package goal

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var columns = []string{
	"id", "user_id", "name", "description", "target_amount", "current_amount",
	"target_date", "is_completed", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestListForUser_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "goals" WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), userID.String(), "Auto", nil, 5000.0, 100.0, nil, false, now, now).
			AddRow(uuid.NewString(), userID.String(), "Viaje", "Japón", 2000.0, 0.0, now.AddDate(1, 0, 0), false, now.Add(-time.Hour), now))

	got, err := repo.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Auto", got[0].Name)
	assert.Nil(t, got[0].Description)
	assert.Nil(t, got[0].TargetDate)
	require.NotNil(t, got[1].Description)
	assert.Equal(t, "Japón", *got[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForUser_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetForUser(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	amount := money.MustParse("750")

	mock.ExpectExec(`UPDATE "goals" SET .*"current_amount"=\$\d+.* WHERE id = \$\d+ AND user_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.UpdateForUser(context.Background(), uuid.New(), uuid.New(), &dto.GoalUpdate{CurrentAmount: &amount})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForUser_ClearsTargetDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectExec(`UPDATE "goals" SET .*"target_date"=\$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.UpdateForUser(context.Background(), uuid.New(), uuid.New(), &dto.GoalUpdate{ClearTargetDate: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForUser_NothingToChange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	n, err := repo.UpdateForUser(context.Background(), uuid.New(), uuid.New(), &dto.GoalUpdate{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteForUser(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "owned goal", affected: 1},
		{name: "absent or foreign goal", affected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := New(db)
			id, userID := uuid.New(), uuid.New()

			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "goals" WHERE id = $1 AND user_id = $2`)).
				WithArgs(id, userID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			n, err := repo.DeleteForUser(context.Background(), id, userID)
			require.NoError(t, err)
			assert.Equal(t, tt.affected, n)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
