// Package challenge holds the question bank for the money challenges and grades answers.
package challenge

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gradgoals/gradgoals/internal/models"
)

// Grading messages returned with every answer.
const (
	CorrectMessage   = "Correct! Nice work, you're getting the hang of this."
	IncorrectMessage = "Not quite. Check the explanation and try another question."
)

var (
	ErrUnknownCategory = errors.New("unknown or empty category")
	ErrUnknownQuestion = errors.New("unknown question")
)

type category struct {
	id, name, blurb string
}

type question struct {
	id          int
	categoryID  string
	prompt      string
	answer      string
	explanation string
}

func (q question) public() models.Question {
	return models.Question{ID: q.id, CategoryID: q.categoryID, Prompt: q.prompt}
}

// Bank is an immutable set of categories and questions.
type Bank struct {
	categories []category
	questions  []question
	byID       map[int]question
	intn       func(n int) int
}

// Option configures a Bank.
type Option func(*Bank)

// WithRand replaces the random index source used by Random.
func WithRand(intn func(n int) int) Option {
	return func(b *Bank) { b.intn = intn }
}

// NewBank returns the built-in question bank.
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		categories: defaultCategories,
		questions:  defaultQuestions,
		byID:       make(map[int]question, len(defaultQuestions)),
		intn:       rand.IntN,
	}
	for _, q := range b.questions {
		b.byID[q.id] = q
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Categories lists every category with the number of questions it holds.
func (b *Bank) Categories() []models.Category {
	counts := make(map[string]int)
	for _, q := range b.questions {
		counts[q.categoryID]++
	}
	out := make([]models.Category, 0, len(b.categories))
	for _, c := range b.categories {
		out = append(out, models.Category{
			ID:            c.id,
			Name:          c.name,
			Blurb:         c.blurb,
			QuestionCount: counts[c.id],
		})
	}
	return out
}

// QuestionCount returns how many questions a category holds.
func (b *Bank) QuestionCount(categoryID string) int {
	n := 0
	for _, q := range b.questions {
		if strings.EqualFold(q.categoryID, categoryID) {
			n++
		}
	}
	return n
}

// Random picks a question from the category uniformly at random. Category IDs match
// case-insensitively.
func (b *Bank) Random(categoryID string) (models.Question, error) {
	var pool []question
	for _, q := range b.questions {
		if strings.EqualFold(q.categoryID, categoryID) {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return models.Question{}, ErrUnknownCategory
	}
	return pool[b.intn(len(pool))].public(), nil
}

// Question looks up a question by ID.
func (b *Bank) Question(id int) (models.Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return models.Question{}, ErrUnknownQuestion
	}
	return q.public(), nil
}

// Check grades an answer. Dollar signs, thousands separators and surrounding whitespace are
// ignored, and numeric answers compare by value so "1,200.00" matches "1200".
func (b *Bank) Check(questionID int, answer string) (models.AnswerResult, error) {
	q, ok := b.byID[questionID]
	if !ok {
		return models.AnswerResult{QuestionID: questionID}, ErrUnknownQuestion
	}

	correct := answersMatch(answer, q.answer)
	msg := IncorrectMessage
	if correct {
		msg = CorrectMessage
	}
	return models.AnswerResult{
		Correct:     correct,
		Message:     msg,
		Explanation: q.explanation,
		QuestionID:  q.id,
		CategoryID:  q.categoryID,
	}, nil
}

func answersMatch(given, want string) bool {
	g, w := normalize(given), normalize(want)
	if g == "" {
		return false
	}
	gf, gerr := strconv.ParseFloat(g, 64)
	wf, werr := strconv.ParseFloat(w, 64)
	if gerr == nil && werr == nil {
		return gf == wf
	}
	return strings.EqualFold(g, w)
}

func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
