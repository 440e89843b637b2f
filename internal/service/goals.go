package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gradgoals/gradgoals/internal/models"
)

// CreateGoal starts a new savings goal at zero
func (s *Service) CreateGoal(ctx context.Context, userID, name string, target float64) (*models.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" || !validAmount(target) || target == 0 {
		return nil, fmt.Errorf("%w: name and a positive target are required", ErrInvalidInput)
	}
	goal := &models.SavingsGoal{UserID: userID, Name: name, TargetAmount: target}
	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// ListGoals returns the user's goals
func (s *Service) ListGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	return s.repo.ListGoals(ctx, userID)
}

// AddToGoal contributes to a goal, never past its target. The first time a goal is
// completed the owner is emailed when a notifier is configured.
func (s *Service) AddToGoal(ctx context.Context, userID, id string, amount float64) (*models.SavingsGoal, error) {
	if !validAmount(amount) || amount == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	goal, completed, err := s.repo.AddGoalAmount(ctx, userID, id, amount)
	if err != nil {
		return nil, err
	}
	if completed {
		s.log.Infof("Goal %s completed by user %s", goal.ID, userID)
		s.notifyGoalReached(ctx, userID, *goal)
	}
	return goal, nil
}

func (s *Service) notifyGoalReached(ctx context.Context, userID string, goal models.SavingsGoal) {
	if s.notifier == nil {
		return
	}
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		s.log.Debugf("No registered user %s for goal email: %v", userID, err)
		return
	}
	if err := s.notifier.SendGoalReached(user.Email, user.Username, goal); err != nil {
		s.log.Warnf("Goal reached email to %s failed: %v", user.Email, err)
	}
}

// DeleteGoal removes a goal
func (s *Service) DeleteGoal(ctx context.Context, userID, id string) error {
	return s.repo.DeleteGoal(ctx, userID, id)
}

// SendGoalReminders emails every registered user who has unfinished goals and returns how
// many emails were sent. Individual delivery failures are logged and skipped.
func (s *Service) SendGoalReminders(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, nil
	}
	reminders, err := s.repo.ListGoalReminders(ctx)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, r := range reminders {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := s.notifier.SendGoalReminder(r); err != nil {
			s.log.Warnf("Goal reminder to %s failed: %v", r.Email, err)
			continue
		}
		sent++
	}
	s.log.Infof("Sent %d goal reminders", sent)
	return sent, nil
}
