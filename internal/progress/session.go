package progress

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/gradgoals/gradgoals/internal/models"
)

const (
	// NoAttemptsSummary is shown for categories without server stats.
	NoAttemptsSummary = "No attempts yet"

	// DefaultMaxRetries bounds how often SelectNextQuestion re-asks for an unmastered question.
	DefaultMaxRetries = 5

	// fallbackQuestionCount is assumed when a category is unknown or declares no questions.
	fallbackQuestionCount = 3
)

// ErrNoSupplier is returned when SelectNextQuestion is called without a supplier.
var ErrNoSupplier = errors.New("progress: question supplier is required")

// Supplier returns a random question for a category. It is usually a network call.
type Supplier func(ctx context.Context, categoryID string) (models.Question, error)

// Selection is the result of SelectNextQuestion.
type Selection struct {
	Question models.Question
	// Done is set when every question in the category is already mastered.
	Done bool
	// Retries counts supplier calls that returned an already mastered question.
	Retries int
}

// Session holds one user's challenge state for the lifetime of a client session.
// It is safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	categories []models.Category
	table      Table
	mastered   map[string]map[int]struct{}
	generation uint64
	loaded     bool
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		table:    Table{},
		mastered: make(map[string]map[int]struct{}),
	}
}

// SetCategories replaces the category list fetched from the server.
func (s *Session) SetCategories(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), categories...)
}

// Categories returns a copy of the known categories.
func (s *Session) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category(nil), s.categories...)
}

// Category looks up a category by ID.
func (s *Session) Category(id string) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findCategory(s.categories, id)
}

// Generation identifies the current progress epoch. Capture it before fetching progress
// and pass it to ApplyProgress so that results fetched before a Reset are discarded.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// ApplyProgress replaces the whole progress table with a fresh server copy. It returns
// false, leaving the session untouched, when gen is older than the current generation.
func (s *Session) ApplyProgress(gen uint64, table Table) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	next := make(Table, len(table))
	for id, stats := range table {
		if stats != nil {
			next[id] = stats
		}
	}
	s.table = next
	s.loaded = true
	return true
}

// Loaded reports whether progress has been applied since the session started or was reset.
// Callers render a neutral state while it is false.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Stats returns the stats for a category, or nil.
func (s *Session) Stats(categoryID string) *CategoryStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table[categoryID]
}

// Percent is NormalizePercent applied to a category's current stats.
func (s *Session) Percent(categoryID string) int {
	return NormalizePercent(s.Stats(categoryID))
}

// Summary renders the one-line progress summary for a category.
func (s *Session) Summary(categoryID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(categoryID, s.table, s.categories)
}

// Summarize renders "{correct}/{total} correct ({percent}%)" for a category, measuring
// correct answers against the category's whole question bank. Categories without stats
// read NoAttemptsSummary.
func Summarize(categoryID string, table Table, categories []models.Category) string {
	stats := table[categoryID]
	if stats == nil {
		return NoAttemptsSummary
	}

	total := 1
	if cat, ok := findCategory(categories, categoryID); ok && cat.QuestionCount > 0 {
		total = cat.QuestionCount
	}
	correct := stats.CorrectCount()
	percent := int(roundHalfUp(correct / float64(total) * 100))

	return fmt.Sprintf("%s/%d correct (%d%%)", strconv.FormatFloat(correct, 'f', -1, 64), total, percent)
}

// RecordAnswer marks a question as mastered when it was answered correctly. Adding an
// already mastered question is a no-op, and a category never holds more mastered questions
// than its question total. It reports whether the mastered set changed.
func (s *Session) RecordAnswer(categoryID string, questionID int, correct bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(categoryID, questionID, correct)
}

// RecordAnswerAt is RecordAnswer for an answer graded under generation gen. It records
// nothing and returns false when a Reset happened since gen was captured.
func (s *Session) RecordAnswerAt(gen uint64, categoryID string, questionID int, correct bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	return s.record(categoryID, questionID, correct)
}

func (s *Session) record(categoryID string, questionID int, correct bool) bool {
	if !correct || categoryID == "" {
		return false
	}
	set, ok := s.mastered[categoryID]
	if !ok {
		set = make(map[int]struct{})
		s.mastered[categoryID] = set
	}
	if _, dup := set[questionID]; dup {
		return false
	}
	if len(set) >= questionTotal(s.categories, categoryID) {
		return false
	}
	set[questionID] = struct{}{}
	return true
}

// MasteredCount returns how many questions of a category were mastered this session.
func (s *Session) MasteredCount(categoryID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.mastered[categoryID])
}

// IsMastered reports whether a question was answered correctly this session.
func (s *Session) IsMastered(categoryID string, questionID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.mastered[categoryID][questionID]
	return ok
}

// SelectNextQuestion asks supply for a question the user has not yet mastered.
//
// When every question in the category is mastered it returns a Done selection without
// calling supply. Otherwise mastered candidates are re-drawn at most maxRetries times, after
// which the last candidate is returned even if it repeats. A non-positive maxRetries uses
// DefaultMaxRetries. Supplier errors are returned as-is.
func (s *Session) SelectNextQuestion(ctx context.Context, categoryID string, supply Supplier, maxRetries int) (Selection, error) {
	if supply == nil {
		return Selection{}, ErrNoSupplier
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	total := s.selectionTotal(categoryID)
	if s.MasteredCount(categoryID) >= total {
		return Selection{Done: true}, nil
	}

	for retries := 0; ; retries++ {
		q, err := supply(ctx, categoryID)
		if err != nil {
			return Selection{Retries: retries}, err
		}
		if s.IsMastered(categoryID, q.ID) && s.MasteredCount(categoryID) < total && retries < maxRetries {
			continue
		}
		return Selection{Question: q, Retries: retries}, nil
	}
}

func (s *Session) selectionTotal(categoryID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return questionTotal(s.categories, categoryID)
}

// questionTotal is the number of questions a category is assumed to hold. It bounds the
// mastered set and decides when a category is done.
func questionTotal(categories []models.Category, categoryID string) int {
	if cat, ok := findCategory(categories, categoryID); ok && cat.QuestionCount > 0 {
		return cat.QuestionCount
	}
	return fallbackQuestionCount
}

// Reset clears the progress table and mastered questions and starts a new generation, so
// progress fetched before the reset can no longer be applied. Summaries read
// NoAttemptsSummary until the next successful ApplyProgress.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = Table{}
	s.mastered = make(map[string]map[int]struct{})
	s.generation++
	s.loaded = false
}

func findCategory(categories []models.Category, id string) (models.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
