package category_test

import (
	"testing"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/category"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	defs := category.Defaults()
	assert.Len(t, defs, 15)

	counts := map[domain.EntryType]int{}
	names := map[string]bool{}
	for _, d := range defs {
		counts[d.Type]++
		assert.False(t, names[d.Name], "duplicate default %q", d.Name)
		names[d.Name] = true
		assert.NotEmpty(t, d.Icon)
		assert.True(t, d.Type.Valid())
	}
	assert.Equal(t, 5, counts[domain.EntryTypeIncome])
	assert.Equal(t, 10, counts[domain.EntryTypeExpense])
}

func TestDefaultsReturnsCopy(t *testing.T) {
	t.Parallel()

	defs := category.Defaults()
	defs[0].Name = "changed"
	assert.Equal(t, "Salario", category.Defaults()[0].Name)
}

func TestErrorsWrapSentinels(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, category.ErrCategoryExists, domain.ErrAlreadyExists)
	assert.ErrorIs(t, category.ErrCategoryNotFound, domain.ErrNotFound)
}
