// Package quiz drives a challenge session against the GradGoals API: choosing a topic,
// serving questions the user has not mastered yet, grading answers and keeping the
// progress table in sync with the server.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/progress"
)

var (
	// ErrCheckInFlight is returned by Submit while a previous answer is still being graded.
	ErrCheckInFlight = errors.New("quiz: an answer is already being checked")
	// ErrNoQuestion is returned by Submit before any question was served.
	ErrNoQuestion = errors.New("quiz: no current question")
	// ErrNoCategory is returned by Next before a category was selected.
	ErrNoCategory = errors.New("quiz: no category selected")
)

// API is the subset of the GradGoals server the runner needs.
type API interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Progress(ctx context.Context) (progress.Table, error)
	ResetProgress(ctx context.Context) error
	RandomQuestion(ctx context.Context, categoryID string) (models.Question, error)
	CheckAnswer(ctx context.Context, req models.AnswerRequest) (models.AnswerResult, error)
}

// Runner owns one user's quiz session.
type Runner struct {
	api        API
	session    *progress.Session
	log        *logrus.Logger
	maxRetries int
	checking   atomic.Bool

	mu       sync.Mutex
	category string
	current  *models.Question
}

// NewRunner creates a runner. A non-positive maxRetries uses progress.DefaultMaxRetries.
func NewRunner(api API, log *logrus.Logger, maxRetries int) *Runner {
	return &Runner{
		api:        api,
		session:    progress.NewSession(),
		log:        log,
		maxRetries: maxRetries,
	}
}

// Session exposes the progress state for rendering.
func (r *Runner) Session() *progress.Session {
	return r.session
}

// Init loads categories and then the user's progress.
func (r *Runner) Init(ctx context.Context) error {
	cats, err := r.api.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	r.session.SetCategories(cats)
	return r.RefreshProgress(ctx)
}

// RefreshProgress refetches the progress table. A response that arrives after a Reset is
// dropped.
func (r *Runner) RefreshProgress(ctx context.Context) error {
	gen := r.session.Generation()
	table, err := r.api.Progress(ctx)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	if !r.session.ApplyProgress(gen, table) {
		r.log.Debug("Discarded progress fetched before reset")
	}
	return nil
}

// Select switches to a category and forgets the current question.
func (r *Runner) Select(categoryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.category = categoryID
	r.current = nil
}

// Category returns the selected category ID.
func (r *Runner) Category() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.category
}

// Next serves the next question for the selected category. A Done selection means the
// whole category is mastered.
func (r *Runner) Next(ctx context.Context) (progress.Selection, error) {
	cat := r.Category()
	if cat == "" {
		return progress.Selection{}, ErrNoCategory
	}
	sel, err := r.session.SelectNextQuestion(ctx, cat, r.api.RandomQuestion, r.maxRetries)
	if err != nil {
		return sel, fmt.Errorf("failed to load question: %w", err)
	}
	if sel.Retries > 0 {
		r.log.WithFields(logrus.Fields{"category": cat, "retries": sel.Retries}).Debug("Skipped mastered questions")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sel.Done {
		r.current = nil
	} else {
		q := sel.Question
		r.current = &q
	}
	return sel, nil
}

// Submit grades an answer to the current question. Only one Submit may run at a time.
// Progress is refetched after grading; a failed refetch is logged and leaves the previous
// table in place. When a Reset lands while the answer is being graded, the result is
// returned but neither recorded nor followed by a refetch.
func (r *Runner) Submit(ctx context.Context, answer string) (models.AnswerResult, error) {
	if !r.checking.CompareAndSwap(false, true) {
		return models.AnswerResult{}, ErrCheckInFlight
	}
	defer r.checking.Store(false)

	gen := r.session.Generation()
	r.mu.Lock()
	q, cat := r.current, r.category
	r.mu.Unlock()
	if q == nil {
		return models.AnswerResult{}, ErrNoQuestion
	}

	res, err := r.api.CheckAnswer(ctx, models.AnswerRequest{QuestionID: q.ID, Answer: answer})
	if err != nil {
		return res, fmt.Errorf("failed to check answer: %w", err)
	}

	if res.CategoryID != "" {
		cat = res.CategoryID
	}
	if gen != r.session.Generation() {
		r.log.Debug("Discarded answer graded before reset")
		return res, nil
	}
	r.session.RecordAnswerAt(gen, cat, q.ID, res.Correct)

	if err := r.RefreshProgress(ctx); err != nil {
		r.log.Warnf("Progress not refreshed: %v", err)
	}
	return res, nil
}

// Reset deletes the user's server-side progress and reloads categories and progress.
// Session summaries stay neutral until the reload completes.
func (r *Runner) Reset(ctx context.Context) error {
	if err := r.api.ResetProgress(ctx); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	r.session.Reset()

	r.mu.Lock()
	r.current = nil
	r.mu.Unlock()

	return r.Init(ctx)
}
