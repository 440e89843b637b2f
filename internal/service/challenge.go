package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/models"
)

// Categories lists the challenge categories with their question counts
func (s *Service) Categories() []models.Category {
	return s.bank.Categories()
}

// RandomQuestion picks a question from a category
func (s *Service) RandomQuestion(categoryID string) (models.Question, error) {
	return s.bank.Random(categoryID)
}

// CheckAnswer grades an answer and, for a known user, records the attempt
func (s *Service) CheckAnswer(ctx context.Context, userID string, req models.AnswerRequest) (models.AnswerResult, error) {
	res, err := s.bank.Check(req.QuestionID, req.Answer)
	if err != nil {
		return res, err
	}
	if userID != "" {
		if err := s.repo.RecordAttempt(ctx, userID, res.CategoryID, res.QuestionID, res.Correct); err != nil {
			return res, err
		}
	}
	s.log.WithFields(logrus.Fields{
		"user":     userID,
		"question": res.QuestionID,
		"correct":  res.Correct,
	}).Debug("Answer checked")
	return res, nil
}

// Progress returns the user's per-category attempt and correct counts
func (s *Service) Progress(ctx context.Context, userID string) (map[string]models.ProgressStats, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	return s.repo.Progress(ctx, userID)
}

// ResetProgress clears the user's challenge history
func (s *Service) ResetProgress(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if err := s.repo.ResetProgress(ctx, userID); err != nil {
		return err
	}
	s.log.Infof("Challenge progress reset for user %s", userID)
	return nil
}
