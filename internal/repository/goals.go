package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gradgoals/gradgoals/internal/models"
)

const goalColumns = `id, user_id, name, target_amount, current_amount, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(s scanner) (models.SavingsGoal, error) {
	var g models.SavingsGoal
	err := s.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// CreateGoal stores a new savings goal
func (r *Repository) CreateGoal(ctx context.Context, goal *models.SavingsGoal) error {
	goal.ID = uuid.NewString()
	goal.CreatedAt = timestamp(time.Now())
	goal.UpdatedAt = goal.CreatedAt
	_, err := r.exec(ctx, `
		INSERT INTO savings_goals (`+goalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.CreatedAt, goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// ListGoals returns a user's goals, oldest first
func (r *Repository) ListGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	rows, err := r.query(ctx, `
		SELECT `+goalColumns+`
		FROM savings_goals
		WHERE user_id = ?
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals := []models.SavingsGoal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoal retrieves one of the user's goals
func (r *Repository) GetGoal(ctx context.Context, userID, id string) (*models.SavingsGoal, error) {
	g, err := scanGoal(r.queryRow(ctx, `
		SELECT `+goalColumns+`
		FROM savings_goals
		WHERE id = ? AND user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &g, nil
}

// AddGoalAmount contributes amount to a goal in one conditional update, capping at the
// target. completed is true only for the contribution that moved the goal from unfinished to
// reached; a goal that was already complete is returned unchanged.
func (r *Repository) AddGoalAmount(ctx context.Context, userID, id string, amount float64) (goal *models.SavingsGoal, completed bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, r.rebind(`
		UPDATE savings_goals
		SET current_amount = CASE
				WHEN current_amount + ? >= target_amount THEN target_amount
				ELSE current_amount + ?
			END,
			updated_at = ?
		WHERE id = ? AND user_id = ? AND current_amount < target_amount`),
		amount, amount, timestamp(time.Now()), id, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update goal: %w", err)
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to update goal: %w", err)
	}

	g, err := scanGoal(tx.QueryRowContext(ctx, r.rebind(`
		SELECT `+goalColumns+`
		FROM savings_goals
		WHERE id = ? AND user_id = ?`), id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get goal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit goal update: %w", err)
	}
	return &g, changed > 0 && g.Complete(), nil
}

// DeleteGoal removes one of the user's goals
func (r *Repository) DeleteGoal(ctx context.Context, userID, id string) error {
	res, err := r.exec(ctx, `DELETE FROM savings_goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("goal %s: %w", id, err)
	}
	return nil
}

// ListGoalReminders groups unfinished goals of registered users by user
func (r *Repository) ListGoalReminders(ctx context.Context) ([]models.GoalReminder, error) {
	rows, err := r.query(ctx, `
		SELECT u.email, u.username, g.id, g.user_id, g.name, g.target_amount, g.current_amount, g.created_at, g.updated_at
		FROM savings_goals g
		JOIN users u ON u.id = g.user_id
		WHERE g.current_amount < g.target_amount
		ORDER BY u.email, g.created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal reminders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reminders []models.GoalReminder
	for rows.Next() {
		var email, username string
		var g models.SavingsGoal
		if err := rows.Scan(&email, &username, &g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal reminder: %w", err)
		}
		if n := len(reminders); n > 0 && reminders[n-1].Email == email {
			reminders[n-1].Goals = append(reminders[n-1].Goals, g)
			continue
		}
		reminders = append(reminders, models.GoalReminder{Email: email, Username: username, Goals: []models.SavingsGoal{g}})
	}
	return reminders, rows.Err()
}
