package repository

import (
	"context"
	"fmt"

	"github.com/gradgoals/gradgoals/internal/models"
)

// RecordAttempt counts an answered question. A correct answer raises the category's correct
// count only the first time that question is answered correctly, so correct never exceeds the
// number of distinct questions in the category.
func (r *Repository) RecordAttempt(ctx context.Context, userID, categoryID string, questionID int, correct bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inc := 0
	if correct {
		res, err := tx.ExecContext(ctx, r.rebind(`
			INSERT INTO challenge_mastered (user_id, category_id, question_id)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id, question_id) DO NOTHING`),
			userID, categoryID, questionID)
		if err != nil {
			return fmt.Errorf("failed to record mastered question: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			inc = 1
		}
	}

	_, err = tx.ExecContext(ctx, r.rebind(`
		INSERT INTO challenge_progress (user_id, category_id, attempts, correct)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (user_id, category_id) DO UPDATE SET
			attempts = challenge_progress.attempts + 1,
			correct = challenge_progress.correct + excluded.correct`),
		userID, categoryID, inc)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit attempt: %w", err)
	}
	return nil
}

// Progress returns the per-category ledger for a user
func (r *Repository) Progress(ctx context.Context, userID string) (map[string]models.ProgressStats, error) {
	rows, err := r.query(ctx, `
		SELECT category_id, attempts, correct
		FROM challenge_progress
		WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]models.ProgressStats)
	for rows.Next() {
		var id string
		var st models.ProgressStats
		if err := rows.Scan(&id, &st.Attempts, &st.Correct); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		out[id] = st
	}
	return out, rows.Err()
}

// ResetProgress deletes a user's challenge ledger and mastered questions
func (r *Repository) ResetProgress(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"challenge_progress", "challenge_mastered"} {
		if _, err := tx.ExecContext(ctx, r.rebind(`DELETE FROM `+table+` WHERE user_id = ?`), userID); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}
