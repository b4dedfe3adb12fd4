package domain

// EntryType tells whether money flows in or out. Categories and
// transactions share the same two values.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

func (t EntryType) String() string {
	return string(t)
}
