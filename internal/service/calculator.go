package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gradgoals/gradgoals/internal/amortization"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/money"
)

const referenceRateKey = "rate:reference"

// CreditCardPayoff simulates paying down a card balance with a fixed payment
func (s *Service) CreditCardPayoff(ctx context.Context, req models.PayoffRequest) (models.PayoffResponse, error) {
	key := fmt.Sprintf("payoff:%g:%g:%g", req.Balance, req.APR, req.Payment)
	var resp models.PayoffResponse
	if s.cached(ctx, key, &resp) {
		return resp, nil
	}

	res, err := amortization.CreditCardPayoff(req.Balance, req.APR, req.Payment)
	if err != nil {
		return models.PayoffResponse{}, mapEngineError(err)
	}
	resp = models.PayoffResponse{PayoffPossible: res.Possible()}
	if res.Possible() {
		months := res.Months
		interest := money.RoundCents(res.TotalInterest)
		resp.Months = &months
		resp.TotalInterest = &interest
	} else {
		final := money.RoundCents(res.FinalBalance)
		resp.FinalBalance = &final
	}

	s.store(ctx, key, resp)
	return resp, nil
}

// StudentLoan computes the fixed monthly payment of an installment loan, optionally with
// the full repayment schedule starting next month
func (s *Service) StudentLoan(ctx context.Context, req models.LoanRequest) (models.LoanResponse, error) {
	key := fmt.Sprintf("loan:%g:%g:%d", req.Principal, req.APR, req.Years)
	var resp models.LoanResponse
	if !req.Schedule && s.cached(ctx, key, &resp) {
		return resp, nil
	}

	res, err := amortization.LoanMonthlyPayment(req.Principal, req.APR, req.Years)
	if err != nil {
		return models.LoanResponse{}, mapEngineError(err)
	}
	resp = models.LoanResponse{
		MonthlyPayment: money.RoundCents(res.MonthlyPayment),
		TotalPaid:      money.RoundCents(res.TotalPaid),
		TotalInterest:  money.RoundCents(res.TotalInterest),
	}

	if req.Schedule {
		rows, err := amortization.Schedule(req.Principal, req.APR, req.Years, s.now())
		if err != nil {
			return resp, mapEngineError(err)
		}
		resp.Schedule = rows
		return resp, nil
	}

	s.store(ctx, key, resp)
	return resp, nil
}

// ReferenceRate returns the benchmark-based suggested loan APR, cached for the configured TTL
func (s *Service) ReferenceRate(ctx context.Context) (models.ReferenceRate, error) {
	var rate models.ReferenceRate
	if s.rates == nil {
		return rate, ErrRateUnavailable
	}
	if s.cached(ctx, referenceRateKey, &rate) {
		return rate, nil
	}
	rate, err := s.rates.ReferenceRate(ctx)
	if err != nil {
		s.log.Warnf("Reference rate lookup failed: %v", err)
		return rate, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	s.store(ctx, referenceRateKey, rate)
	return rate, nil
}

func mapEngineError(err error) error {
	if errors.Is(err, amortization.ErrInvalidInput) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, models.MsgInvalidNumbers)
	}
	return err
}

func (s *Service) cached(ctx context.Context, key string, dst any) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Debugf("Discarding unreadable cache entry %s: %v", key, err)
		return false
	}
	return true
}

func (s *Service) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	ttl := s.config.CacheTTL
	if err := s.cache.Set(ctx, key, string(raw), ttl); err != nil {
		s.log.Debugf("Cache write for %s failed: %v", key, err)
	}
}
