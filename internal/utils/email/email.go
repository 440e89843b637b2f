package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/config"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/money"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.sendSMTP
	return s
}

func (s *Sender) sendSMTP(e *email.Email) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	return e.Send(addr, auth)
}

func (s *Sender) deliver(to, subject, body string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Infof("Email sent to %s: %s", to, subject)
	return nil
}

// SendGoalReached congratulates a user on completing a savings goal
func (s *Sender) SendGoalReached(to, username string, goal models.SavingsGoal) error {
	return s.deliver(to, fmt.Sprintf("You reached your goal: %s", goal.Name), GoalReachedBody(username, goal))
}

// SendGoalReminder nudges a user about their unfinished goals
func (s *Sender) SendGoalReminder(r models.GoalReminder) error {
	return s.deliver(r.Email, "Your weekly savings check-in", GoalReminderBody(r))
}

// GoalReachedBody renders the plain-text body of the goal reached email
func GoalReachedBody(username string, goal models.SavingsGoal) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"You saved %s and reached your goal \"%s\". Nice work!\n\n"+
			"Set a new goal in GradGoals to keep the momentum going.\n"+
			"\nCheers,\nGradGoals",
		username, money.Format(goal.TargetAmount), goal.Name,
	)
}

// GoalReminderBody renders the plain-text body of the weekly reminder email
func GoalReminderBody(r models.GoalReminder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nHere is where your savings goals stand:\n\n", r.Username)
	for _, g := range r.Goals {
		fmt.Fprintf(&b, "- %s: %s of %s saved, %s to go\n",
			g.Name, money.Format(g.CurrentAmount), money.Format(g.TargetAmount), money.Format(g.Remaining()))
	}
	b.WriteString("\nEven a small deposit this week moves you closer.\n\nCheers,\nGradGoals")
	return b.String()
}
