package domain

// CategoryType classifies a category as income or expense.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category groups transactions for reporting.
type Category struct {
	CategoryID string       `json:"id"`
	CompanyID  string       `json:"companyId"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	ParentID   *string      `json:"parentId,omitempty"`
	AuditFields
}
