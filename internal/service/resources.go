package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/money"
)

// Resources lists library entries, optionally filtered by type
func (s *Service) Resources(kind string) ([]models.Resource, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != "" && kind != models.ResourceVideo && kind != models.ResourceArticle {
		return nil, fmt.Errorf("%w: type must be video or article", ErrInvalidInput)
	}
	return s.library.Filter(kind), nil
}

// RateResource stores a 1 to 5 star rating, replacing the user's previous one
func (s *Service) RateResource(ctx context.Context, rating models.Rating) error {
	if rating.UserID == "" || rating.ResourceID == "" {
		return fmt.Errorf("%w: resourceId and userId are required", ErrInvalidInput)
	}
	if rating.Stars < 1 || rating.Stars > 5 {
		return fmt.Errorf("%w: stars must be between 1 and 5", ErrInvalidInput)
	}
	if _, err := s.library.Find(rating.ResourceID); err != nil {
		return err
	}
	return s.repo.UpsertRating(ctx, rating)
}

// RatingSummary returns a resource's average rating
func (s *Service) RatingSummary(ctx context.Context, resourceID string) (models.RatingSummary, error) {
	if _, err := s.library.Find(resourceID); err != nil {
		return models.RatingSummary{}, err
	}
	sum, err := s.repo.RatingSummary(ctx, resourceID)
	if err != nil {
		return sum, err
	}
	sum.Average = money.RoundCents(sum.Average)
	return sum, nil
}

// UserRating returns a user's rating of a resource
func (s *Service) UserRating(ctx context.Context, resourceID, userID string) (*models.Rating, error) {
	if resourceID == "" || userID == "" {
		return nil, fmt.Errorf("%w: resourceId and userId are required", ErrInvalidInput)
	}
	return s.repo.UserRating(ctx, resourceID, userID)
}
