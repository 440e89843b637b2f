package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gradgoals/gradgoals/internal/models"
)

// UpsertRating stores a user's rating, replacing any earlier one for the same resource
func (r *Repository) UpsertRating(ctx context.Context, rating models.Rating) error {
	_, err := r.exec(ctx, `
		INSERT INTO ratings (resource_id, user_id, stars, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (resource_id, user_id) DO UPDATE SET stars = excluded.stars, updated_at = excluded.updated_at`,
		rating.ResourceID, rating.UserID, rating.Stars, timestamp(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	return nil
}

// RatingSummary returns the average and count of a resource's ratings; zero when unrated
func (r *Repository) RatingSummary(ctx context.Context, resourceID string) (models.RatingSummary, error) {
	sum := models.RatingSummary{ResourceID: resourceID}
	err := r.queryRow(ctx, `
		SELECT COALESCE(AVG(stars), 0), COUNT(*)
		FROM ratings
		WHERE resource_id = ?`, resourceID).
		Scan(&sum.Average, &sum.Count)
	if err != nil {
		return sum, fmt.Errorf("failed to summarize ratings: %w", err)
	}
	return sum, nil
}

// UserRating returns a user's rating of a resource
func (r *Repository) UserRating(ctx context.Context, resourceID, userID string) (*models.Rating, error) {
	rating := &models.Rating{ResourceID: resourceID, UserID: userID}
	err := r.queryRow(ctx, `
		SELECT stars FROM ratings WHERE resource_id = ? AND user_id = ?`, resourceID, userID).
		Scan(&rating.Stars)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rating: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return rating, nil
}
