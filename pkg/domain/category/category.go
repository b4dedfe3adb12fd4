package category

import (
	"fmt"

	"github.com/Enryuk3/kash-app/pkg/domain"
)

var (
	// ErrCategoryExists is returned when the user already has a category
	// with the same name.
	ErrCategoryExists = fmt.Errorf("a category with this name already exists: %w", domain.ErrAlreadyExists)
	// ErrCategoryNotFound is returned when a category is missing or owned by
	// someone else.
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", domain.ErrNotFound)
)

// Default is a category every new account starts with.
type Default struct {
	Name string
	Type domain.EntryType
	Icon string
}

var defaults = []Default{
	{Name: "Salario", Type: domain.EntryTypeIncome, Icon: "i-tabler-cash-banknote"},
	{Name: "Freelance", Type: domain.EntryTypeIncome, Icon: "i-tabler-device-laptop"},
	{Name: "Inversiones", Type: domain.EntryTypeIncome, Icon: "i-tabler-chart-line"},
	{Name: "Regalos", Type: domain.EntryTypeIncome, Icon: "i-tabler-gift"},
	{Name: "Otros ingresos", Type: domain.EntryTypeIncome, Icon: "i-tabler-wallet"},
	{Name: "Comida", Type: domain.EntryTypeExpense, Icon: "i-tabler-shopping-cart"},
	{Name: "Transporte", Type: domain.EntryTypeExpense, Icon: "i-tabler-bus"},
	{Name: "Vivienda", Type: domain.EntryTypeExpense, Icon: "i-tabler-home"},
	{Name: "Servicios", Type: domain.EntryTypeExpense, Icon: "i-tabler-receipt"},
	{Name: "Entretenimiento", Type: domain.EntryTypeExpense, Icon: "i-tabler-movie"},
	{Name: "Salud", Type: domain.EntryTypeExpense, Icon: "i-tabler-heartbeat"},
	{Name: "Educación", Type: domain.EntryTypeExpense, Icon: "i-tabler-school"},
	{Name: "Ropa", Type: domain.EntryTypeExpense, Icon: "i-tabler-shirt"},
	{Name: "Viajes", Type: domain.EntryTypeExpense, Icon: "i-tabler-plane"},
	{Name: "Otros gastos", Type: domain.EntryTypeExpense, Icon: "i-tabler-tags"},
}

// Defaults returns a copy of the starter category set: five income and ten
// expense categories.
func Defaults() []Default {
	out := make([]Default, len(defaults))
	copy(out, defaults)
	return out
}
