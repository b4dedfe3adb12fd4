package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs), "expected *validation.Errors, got %v", err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	return verrs.Map()
}

func TestCategory(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		in, err := validation.Category([]byte(`{"name":"  Mascotas ","type":"expense","icon":"i-tabler-paw"}`))
		require.NoError(t, err)
		assert.Equal(t, "Mascotas", in.Name)
		assert.Equal(t, domain.EntryTypeExpense, in.Type)
		require.NotNil(t, in.Icon)
		assert.Equal(t, "i-tabler-paw", *in.Icon)
		assert.Nil(t, in.Color)
	})

	t.Run("whitespace name and bad type", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Category([]byte(`{"name":"   ","type":"transfer"}`))
		errs := fieldErrors(t, err)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "type")
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'a'
		}
		_, err := validation.Category([]byte(`{"name":"` + string(long) + `","type":"income"}`))
		errs := fieldErrors(t, err)
		assert.Equal(t, "must be at most 50 characters", errs["name"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Category([]byte(`not json`))
		assert.ErrorIs(t, err, validation.ErrMalformedBody)

		_, err = validation.Category([]byte(`[]`))
		assert.ErrorIs(t, err, validation.ErrMalformedBody)
	})
}

func TestTransaction(t *testing.T) {
	t.Parallel()

	categoryID := uuid.New()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		body := `{"type":"income","amount":1500.5,"description":"Sueldo","date":"2024-01-15","categoryId":"` + categoryID.String() + `"}`
		in, err := validation.Transaction([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, domain.EntryTypeIncome, in.Type)
		assert.Equal(t, money.MustParse("1500.5"), in.Amount)
		assert.Equal(t, "Sueldo", in.Description)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), in.Date)
		assert.Equal(t, categoryID, in.CategoryID)
	})

	t.Run("rfc3339 date", func(t *testing.T) {
		t.Parallel()
		body := `{"type":"expense","amount":3,"description":"Bus","date":"2024-01-15T10:30:00-03:00","categoryId":"` + categoryID.String() + `"}`
		in, err := validation.Transaction([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC), in.Date)
	})

	t.Run("reports every offending field", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Transaction([]byte(`{"type":"x","amount":-5,"description":"ab","date":"yesterday","categoryId":"nope"}`))
		errs := fieldErrors(t, err)
		assert.Len(t, errs, 5)
		assert.Equal(t, "must be greater than zero", errs["amount"])
		assert.Equal(t, "must be at least 3 characters", errs["description"])
		assert.Equal(t, "must be a valid date (YYYY-MM-DD)", errs["date"])
		assert.Equal(t, "must be a valid id", errs["categoryId"])
	})

	t.Run("zero amount", func(t *testing.T) {
		t.Parallel()
		body := `{"type":"expense","amount":0,"description":"Café","date":"2024-01-15","categoryId":"` + categoryID.String() + `"}`
		_, err := validation.Transaction([]byte(body))
		errs := fieldErrors(t, err)
		assert.Equal(t, map[string]string{"amount": "must be greater than zero"}, errs)
	})

	t.Run("amount precision and range", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			amount string
			want   string
		}{
			{amount: "0.001", want: "must have at most 2 decimal places"},
			{amount: "42.555", want: "must have at most 2 decimal places"},
			{amount: "1e15", want: "must be at most 999999999999.99"},
			{amount: "1000000000000", want: "must be at most 999999999999.99"},
		}
		for _, tc := range tests {
			body := `{"type":"expense","amount":` + tc.amount + `,"description":"Café","date":"2024-01-15","categoryId":"` + categoryID.String() + `"}`
			_, err := validation.Transaction([]byte(body))
			errs := fieldErrors(t, err)
			assert.Equal(t, map[string]string{"amount": tc.want}, errs, tc.amount)
		}
	})

	t.Run("largest amount is accepted", func(t *testing.T) {
		t.Parallel()
		body := `{"type":"income","amount":999999999999.99,"description":"Premio","date":"2024-01-15","categoryId":"` + categoryID.String() + `"}`
		in, err := validation.Transaction([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, money.MaxCents, in.Amount)
	})

	t.Run("type mismatch is a field error", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Transaction([]byte(`{"type":"expense","amount":"ten","description":"Café","date":"2024-01-15"}`))
		errs := fieldErrors(t, err)
		assert.Equal(t, "must be a number", errs["amount"])
		assert.Equal(t, "is required", errs["categoryId"])
	})

	t.Run("detail joins fields", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Transaction([]byte(`{}`))
		require.Error(t, err)
		assert.Equal(t,
			"type: is required; amount: is required; description: is required; date: is required; categoryId: is required",
			err.Error())
	})
}

func TestGoal(t *testing.T) {
	t.Parallel()

	t.Run("valid body forces incomplete", func(t *testing.T) {
		t.Parallel()
		in, err := validation.Goal([]byte(`{"name":"Vacaciones","targetAmount":2000,"currentAmount":0,"targetDate":"2025-12-01","description":null}`))
		require.NoError(t, err)
		assert.Equal(t, "Vacaciones", in.Name)
		assert.Nil(t, in.Description)
		require.NotNil(t, in.TargetDate)
		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), *in.TargetDate)
		assert.False(t, in.IsCompleted)
	})

	t.Run("bounds", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Goal([]byte(`{"name":"","targetAmount":0,"currentAmount":-1}`))
		errs := fieldErrors(t, err)
		assert.Contains(t, errs, "name")
		assert.Equal(t, "must be greater than or equal to 1", errs["targetAmount"])
		assert.Equal(t, "must be greater than or equal to 0", errs["currentAmount"])
	})

	t.Run("target amount precision", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Goal([]byte(`{"name":"Auto","targetAmount":10.005,"currentAmount":0}`))
		errs := fieldErrors(t, err)
		assert.Equal(t, "must have at most 2 decimal places", errs["targetAmount"])
	})

	t.Run("bad target date", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Goal([]byte(`{"name":"Auto","targetAmount":10,"currentAmount":0,"targetDate":"31/12/2025"}`))
		errs := fieldErrors(t, err)
		assert.Contains(t, errs, "targetDate")
	})
}

func TestGoalPatch(t *testing.T) {
	t.Parallel()

	t.Run("absent fields stay untouched", func(t *testing.T) {
		t.Parallel()
		up, err := validation.GoalPatch([]byte(`{"currentAmount":500}`))
		require.NoError(t, err)
		require.NotNil(t, up.CurrentAmount)
		assert.Equal(t, money.MustParse("500"), *up.CurrentAmount)
		assert.Nil(t, up.Name)
		assert.Nil(t, up.TargetDate)
		assert.False(t, up.ClearTargetDate)
		assert.False(t, up.ClearDescription)
	})

	t.Run("null clears nullable fields", func(t *testing.T) {
		t.Parallel()
		up, err := validation.GoalPatch([]byte(`{"description":null,"targetDate":null,"isCompleted":true}`))
		require.NoError(t, err)
		assert.True(t, up.ClearDescription)
		assert.True(t, up.ClearTargetDate)
		require.NotNil(t, up.IsCompleted)
		assert.True(t, *up.IsCompleted)
	})

	t.Run("blank description clears it", func(t *testing.T) {
		t.Parallel()
		up, err := validation.GoalPatch([]byte(`{"description":"   "}`))
		require.NoError(t, err)
		assert.True(t, up.ClearDescription)
		assert.False(t, up.Empty())
	})

	t.Run("empty body is an empty update", func(t *testing.T) {
		t.Parallel()
		up, err := validation.GoalPatch([]byte(`{}`))
		require.NoError(t, err)
		assert.True(t, up.Empty())
	})

	t.Run("same rules as create", func(t *testing.T) {
		t.Parallel()
		_, err := validation.GoalPatch([]byte(`{"name":"","targetAmount":0}`))
		errs := fieldErrors(t, err)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "targetAmount")
	})
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	creds, err := validation.SignUp([]byte(`{"name":"Ana","email":" Ana@Example.com ","password":"supersecret"}`))
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", creds.Email)

	_, err = validation.SignUp([]byte(`{"name":"Ana","email":"nope","password":"short"}`))
	errs := fieldErrors(t, err)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	_, err := validation.SignIn([]byte(`{"email":"","password":""}`))
	errs := fieldErrors(t, err)
	assert.Equal(t, "must not be empty", errs["email"])
	assert.Equal(t, "must not be empty", errs["password"])
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{in: "2024-01-15T00:00:00Z", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{in: "2023-02-29", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := validation.ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntryTypeFilter(t *testing.T) {
	t.Parallel()
	kind, err := validation.EntryTypeFilter("")
	require.NoError(t, err)
	assert.Empty(t, kind)

	kind, err = validation.EntryTypeFilter("income")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryTypeIncome, kind)

	_, err = validation.EntryTypeFilter("transfer")
	assert.Equal(t, map[string]string{"type": "must be one of: income, expense"}, fieldErrors(t, err))
}
