package amortization

import (
	"time"

	"github.com/gradgoals/gradgoals/internal/money"
)

// Installment is one row of an amortization schedule. Amounts are rounded to cents.
type Installment struct {
	Number    int       `json:"number"`
	DueDate   time.Time `json:"due_date"`
	Payment   float64   `json:"payment"`
	Principal float64   `json:"principal"`
	Interest  float64   `json:"interest"`
	Balance   float64   `json:"balance"`
}

// Schedule builds the month-by-month repayment table for an installment loan.
// The first payment falls one month after start. The final installment absorbs the
// accumulated rounding so the closing balance is exactly zero.
func Schedule(principal, aprPercent float64, termYears int, start time.Time) ([]Installment, error) {
	res, err := LoanMonthlyPayment(principal, aprPercent, termYears)
	if err != nil {
		return nil, err
	}

	r := MonthlyRate(aprPercent)
	payment := money.RoundCents(res.MonthlyPayment)
	balance := money.RoundCents(principal)

	rows := make([]Installment, 0, res.Months)
	for i := 1; i <= res.Months; i++ {
		interest := money.RoundCents(balance * r)
		principalPart := money.RoundCents(payment - interest)
		pay := payment
		if i == res.Months || principalPart > balance {
			principalPart = balance
			pay = money.RoundCents(balance + interest)
		}
		balance = money.RoundCents(balance - principalPart)

		rows = append(rows, Installment{
			Number:    i,
			DueDate:   start.AddDate(0, i, 0),
			Payment:   pay,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows, nil
}
