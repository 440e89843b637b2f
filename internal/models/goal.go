package models

// SavingsGoal represents a savings target and how much has been put toward it
type SavingsGoal struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// Complete reports whether the target has been reached.
func (g SavingsGoal) Complete() bool {
	return g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount
}

// Remaining returns how much is left to save.
func (g SavingsGoal) Remaining() float64 {
	if g.CurrentAmount >= g.TargetAmount {
		return 0
	}
	return g.TargetAmount - g.CurrentAmount
}

// GoalReminder pairs a user's contact details with their unfinished goals
type GoalReminder struct {
	Email    string
	Username string
	Goals    []SavingsGoal
}
