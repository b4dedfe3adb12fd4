package user_test

import (
	"testing"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/user"
	"github.com/Enryuk3/kash-app/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	u, err := user.NewUser("  Ana ", " Ana@Example.COM ", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", u.PasswordHash))
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestNewUserRejectsEmptyFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, email string
		want        error
	}{
		{"", "a@b.co", user.ErrInvalidName},
		{"Ana", "  ", user.ErrInvalidEmail},
		{"Ana", "ana.example.com", user.ErrInvalidEmail},
	}
	for _, tc := range tests {
		_, err := user.NewUser(tc.name, tc.email, "secret123")
		require.ErrorIs(t, err, tc.want)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}
