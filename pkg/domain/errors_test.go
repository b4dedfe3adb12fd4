package domain_test

import (
	"errors"
	"testing"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithField(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, domain.WithField(nil, "categoryId"))
	})

	t.Run("keeps the sentinel reachable", func(t *testing.T) {
		t.Parallel()
		err := domain.WithField(domain.ErrNotFound, "categoryId")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		var fe *domain.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "categoryId", fe.Field)
		assert.Equal(t, "categoryId: resource not found", err.Error())
	})
}

func TestEntryTypeValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   domain.EntryType
		want bool
	}{
		{domain.EntryTypeIncome, true},
		{domain.EntryTypeExpense, true},
		{"", false},
		{"transfer", false},
		{"INCOME", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Valid())
		})
	}
}
