package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gradgoals/gradgoals/internal/models"
)

// AddBudgetItem stores a new income or expense line
func (r *Repository) AddBudgetItem(ctx context.Context, item *models.BudgetItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = timestamp(time.Now())
	_, err := r.exec(ctx, `
		INSERT INTO budget_items (id, user_id, category, amount, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.Category, item.Amount, item.Type, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add budget item: %w", err)
	}
	return nil
}

// ListBudgetItems returns a user's items, oldest first
func (r *Repository) ListBudgetItems(ctx context.Context, userID string) ([]models.BudgetItem, error) {
	rows, err := r.query(ctx, `
		SELECT id, user_id, category, amount, type, created_at
		FROM budget_items
		WHERE user_id = ?
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []models.BudgetItem{}
	for rows.Next() {
		var it models.BudgetItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.Category, &it.Amount, &it.Type, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteBudgetItem removes one of the user's items
func (r *Repository) DeleteBudgetItem(ctx context.Context, userID, id string) error {
	res, err := r.exec(ctx, `DELETE FROM budget_items WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget item: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("budget item %s: %w", id, err)
	}
	return nil
}

// BudgetTotals sums a user's income and expense lines
func (r *Repository) BudgetTotals(ctx context.Context, userID string) (income, expenses float64, err error) {
	err = r.queryRow(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0)
		FROM budget_items
		WHERE user_id = ?`, models.ItemIncome, models.ItemExpense, userID).
		Scan(&income, &expenses)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum budget items: %w", err)
	}
	return income, expenses, nil
}
