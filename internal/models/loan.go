package models

import "github.com/gradgoals/gradgoals/internal/amortization"

// User-facing calculator messages
const (
	MsgPaymentTooSmall = "Payment too small: balance will never be paid off."
	MsgInvalidNumbers  = "Enter valid, non-negative numbers for every field."
)

// PayoffRequest is the body of a credit-card payoff calculation
type PayoffRequest struct {
	Balance float64 `json:"balance"`
	APR     float64 `json:"apr"`
	Payment float64 `json:"payment"`
}

// PayoffResponse mirrors amortization.PayoffResult on the wire
type PayoffResponse struct {
	PayoffPossible bool     `json:"payoffPossible"`
	Months         *int     `json:"months,omitempty"`
	TotalInterest  *float64 `json:"totalInterest,omitempty"`
	FinalBalance   *float64 `json:"finalBalance,omitempty"`
}

// LoanRequest is the body of a student-loan payment calculation
type LoanRequest struct {
	Principal float64 `json:"principal"`
	APR       float64 `json:"apr"`
	Years     int     `json:"years"`
	Schedule  bool    `json:"schedule,omitempty"`
}

// LoanResponse mirrors amortization.LoanResult on the wire
type LoanResponse struct {
	MonthlyPayment float64                    `json:"monthlyPayment"`
	TotalPaid      float64                    `json:"totalPaid"`
	TotalInterest  float64                    `json:"totalInterest"`
	Schedule       []amortization.Installment `json:"schedule,omitempty"`
}

// ReferenceRate is a suggested student-loan APR derived from a published benchmark
type ReferenceRate struct {
	Benchmark    float64 `json:"benchmark"`
	AddOn        float64 `json:"addOn"`
	SuggestedAPR float64 `json:"suggestedApr"`
	AsOf         string  `json:"asOf"`
}
