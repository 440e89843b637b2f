package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/cache"
	"github.com/gradgoals/gradgoals/internal/challenge"
	"github.com/gradgoals/gradgoals/internal/config"
	"github.com/gradgoals/gradgoals/internal/library"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRateUnavailable    = errors.New("reference rate unavailable")
)

// Notifier delivers goal emails
type Notifier interface {
	SendGoalReached(to, username string, goal models.SavingsGoal) error
	SendGoalReminder(r models.GoalReminder) error
}

// RateSource supplies the benchmark rate used to suggest a loan APR
type RateSource interface {
	ReferenceRate(ctx context.Context) (models.ReferenceRate, error)
}

// Service handles business logic
type Service struct {
	repo     *repository.Repository
	log      *logrus.Logger
	config   *config.Config
	bank     *challenge.Bank
	library  *library.Library
	cache    cache.Cache
	rates    RateSource
	notifier Notifier
	now      func() time.Time
}

// Option configures optional collaborators of a Service
type Option func(*Service)

// WithCache sets the calculator result cache
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithRateSource enables the reference rate endpoint
func WithRateSource(r RateSource) Option {
	return func(s *Service) { s.rates = r }
}

// WithNotifier enables goal emails
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithBank replaces the challenge question bank
func WithBank(b *challenge.Bank) Option {
	return func(s *Service) { s.bank = b }
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		log:     log,
		config:  cfg,
		bank:    challenge.NewBank(),
		library: library.Default(),
		cache:   cache.NewMemoryCache(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks the database
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
