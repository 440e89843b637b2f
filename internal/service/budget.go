package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/export"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/money"
)

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// AddBudgetItem records an income or expense line
func (s *Service) AddBudgetItem(ctx context.Context, userID, category string, amount float64, kind string) (*models.BudgetItem, error) {
	category = strings.TrimSpace(category)
	kind = strings.ToLower(strings.TrimSpace(kind))
	if category == "" || !validAmount(amount) {
		return nil, fmt.Errorf("%w: category and a non-negative amount are required", ErrInvalidInput)
	}
	if kind != models.ItemIncome && kind != models.ItemExpense {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}

	item := &models.BudgetItem{UserID: userID, Category: category, Amount: amount, Type: kind}
	if err := s.repo.AddBudgetItem(ctx, item); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user": userID, "type": kind}).Debug("Budget item added")
	return item, nil
}

// ListBudgetItems returns the user's budget lines
func (s *Service) ListBudgetItems(ctx context.Context, userID string) ([]models.BudgetItem, error) {
	return s.repo.ListBudgetItems(ctx, userID)
}

// DeleteBudgetItem removes one budget line
func (s *Service) DeleteBudgetItem(ctx context.Context, userID, id string) error {
	return s.repo.DeleteBudgetItem(ctx, userID, id)
}

// BudgetSummary totals income and expenses
func (s *Service) BudgetSummary(ctx context.Context, userID string) (models.BudgetSummary, error) {
	income, expenses, err := s.repo.BudgetTotals(ctx, userID)
	if err != nil {
		return models.BudgetSummary{}, err
	}
	return models.BudgetSummary{
		Income:   money.RoundCents(income),
		Expenses: money.RoundCents(expenses),
		Net:      money.RoundCents(income - expenses),
	}, nil
}

// ExportBudget writes the user's budget in the requested format
func (s *Service) ExportBudget(ctx context.Context, userID, format string, w io.Writer) error {
	if _, _, err := export.ContentType(format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	items, err := s.repo.ListBudgetItems(ctx, userID)
	if err != nil {
		return err
	}
	sum, err := s.BudgetSummary(ctx, userID)
	if err != nil {
		return err
	}
	return export.Write(w, format, items, sum)
}
