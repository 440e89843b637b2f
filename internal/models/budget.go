package models

// Budget item types
const (
	ItemIncome  = "income"
	ItemExpense = "expense"
)

// BudgetItem represents a single income or expense line in a user's monthly budget
type BudgetItem struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	CreatedAt string  `json:"createdAt"`
}

// BudgetSummary represents monthly income and expense totals
type BudgetSummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"` // Income - Expenses, rounded to cents
}
