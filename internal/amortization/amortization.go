// Package amortization computes credit-card payoff timelines and installment-loan payments.
//
// All functions are pure: they take sanitized numbers and return a result record.
// Rounding to cents is left to the presentation layer (see package money).
package amortization

import (
	"errors"
	"math"
)

// MaxPayoffMonths caps the payoff simulation at 100 years.
const MaxPayoffMonths = 1200

// ErrInvalidInput is returned for NaN, infinite, negative or out-of-domain inputs.
var ErrInvalidInput = errors.New("amortization: invalid input")

// Outcome tags a PayoffResult.
type Outcome int

const (
	// OutcomePayoff means the balance reaches zero under the fixed payment.
	OutcomePayoff Outcome = iota
	// OutcomeImpossible means the payment never exceeds the accruing interest.
	OutcomeImpossible
)

func (o Outcome) String() string {
	switch o {
	case OutcomePayoff:
		return "payoff"
	case OutcomeImpossible:
		return "impossible"
	default:
		return "unknown"
	}
}

// PayoffResult is the outcome of CreditCardPayoff.
// Months and TotalInterest are only meaningful when Outcome is OutcomePayoff.
type PayoffResult struct {
	Outcome       Outcome
	Months        int
	TotalInterest float64
	// FinalBalance is the balance after the last simulated month; zero on payoff.
	FinalBalance float64
}

// Possible reports whether the balance is paid off.
func (r PayoffResult) Possible() bool {
	return r.Outcome == OutcomePayoff
}

// LoanResult is the outcome of LoanMonthlyPayment.
type LoanResult struct {
	MonthlyPayment float64
	Months         int
	TotalPaid      float64
	TotalInterest  float64
}

// MonthlyRate converts an APR given in whole percent (20 means 20%) to a periodic monthly rate.
func MonthlyRate(aprPercent float64) float64 {
	return aprPercent / 100 / 12
}

// CreditCardPayoff simulates fixed monthly payments against a revolving balance.
//
// Interest is charged on the running balance every month before the payment is applied.
// If the payment does not exceed the first month's interest the balance can never shrink
// and the result is OutcomeImpossible.
func CreditCardPayoff(balance, aprPercent, payment float64) (PayoffResult, error) {
	if !validMoney(balance) || !validMoney(aprPercent) || !validMoney(payment) {
		return PayoffResult{}, ErrInvalidInput
	}
	if balance == 0 {
		return PayoffResult{Outcome: OutcomePayoff}, nil
	}

	r := MonthlyRate(aprPercent)
	firstInterest := balance * r
	if payment <= firstInterest {
		return PayoffResult{
			Outcome:      OutcomeImpossible,
			FinalBalance: balance + firstInterest - payment,
		}, nil
	}

	b := balance
	totalInterest := 0.0
	for months := 1; months <= MaxPayoffMonths; months++ {
		interest := b * r
		totalInterest += interest
		b = b + interest - payment
		if b <= 0 {
			return PayoffResult{
				Outcome:       OutcomePayoff,
				Months:        months,
				TotalInterest: totalInterest,
			}, nil
		}
	}

	return PayoffResult{Outcome: OutcomeImpossible, FinalBalance: b}, nil
}

// LoanMonthlyPayment returns the fixed monthly payment that amortizes principal over
// termYears at aprPercent, compounding monthly. A zero rate divides the principal evenly.
func LoanMonthlyPayment(principal, aprPercent float64, termYears int) (LoanResult, error) {
	if termYears <= 0 || !validMoney(principal) || !validMoney(aprPercent) {
		return LoanResult{}, ErrInvalidInput
	}

	n := termYears * 12
	payment := annuityPayment(principal, MonthlyRate(aprPercent), n)
	total := payment * float64(n)

	return LoanResult{
		MonthlyPayment: payment,
		Months:         n,
		TotalPaid:      total,
		TotalInterest:  total - principal,
	}, nil
}

func annuityPayment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	growth := math.Pow(1+r, float64(n))
	return principal * r * growth / (growth - 1)
}

func validMoney(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
