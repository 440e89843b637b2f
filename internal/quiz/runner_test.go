package quiz

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/progress"
)

type fakeAPI struct {
	mu         sync.Mutex
	categories []models.Category
	questions  []models.Question
	answers    map[int]string
	table      progress.Table
	next       int
	checks     int

	progressErr error
	onProgress  func()
	checkGate   chan struct{}
	checkEnter  chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		categories: []models.Category{{ID: "budgeting", Name: "Budgeting", QuestionCount: 2}},
		questions: []models.Question{
			{ID: 1, CategoryID: "budgeting", Prompt: "one"},
			{ID: 2, CategoryID: "budgeting", Prompt: "two"},
		},
		answers: map[int]string{1: "10", 2: "20"},
		table:   progress.Table{},
	}
}

func (f *fakeAPI) Categories(context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeAPI) Progress(context.Context) (progress.Table, error) {
	if f.onProgress != nil {
		f.onProgress()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.progressErr != nil {
		return nil, f.progressErr
	}
	out := progress.Table{}
	for k, v := range f.table {
		c := *v
		out[k] = &c
	}
	return out, nil
}

func (f *fakeAPI) ResetProgress(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.table = progress.Table{}
	return nil
}

// RandomQuestion cycles through the bank so tests are deterministic.
func (f *fakeAPI) RandomQuestion(_ context.Context, categoryID string) (models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.questions[f.next%len(f.questions)]
	f.next++
	return q, nil
}

func (f *fakeAPI) CheckAnswer(_ context.Context, req models.AnswerRequest) (models.AnswerResult, error) {
	if f.checkEnter != nil {
		f.checkEnter <- struct{}{}
	}
	if f.checkGate != nil {
		<-f.checkGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	correct := f.answers[req.QuestionID] == req.Answer
	st, ok := f.table["budgeting"]
	if !ok {
		st = progress.Counts(0, 0)
		f.table["budgeting"] = st
	}
	*st.Attempts++
	if correct {
		*st.Correct++
	}
	return models.AnswerResult{Correct: correct, QuestionID: req.QuestionID, CategoryID: "budgeting"}, nil
}

func newRunner(api API) *Runner {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRunner(api, log, 0)
}

func TestRunner_MasterCategory(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	r := newRunner(api)
	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := r.Session().Summary("budgeting"); got != progress.NoAttemptsSummary {
		t.Errorf("initial summary = %q", got)
	}

	if _, err := r.Next(ctx); !errors.Is(err, ErrNoCategory) {
		t.Fatalf("Next without category err = %v", err)
	}
	r.Select("budgeting")

	for _, want := range []int{1, 2} {
		sel, err := r.Next(ctx)
		if err != nil || sel.Done {
			t.Fatalf("Next = %+v, %v", sel, err)
		}
		if sel.Question.ID != want {
			t.Fatalf("question = %d, want %d", sel.Question.ID, want)
		}
		if _, err := r.Submit(ctx, api.answers[want]); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	sel, err := r.Next(ctx)
	if err != nil || !sel.Done {
		t.Fatalf("after mastering all, Next = %+v, %v", sel, err)
	}
	if got := r.Session().Summary("budgeting"); got != "2/2 correct (100%)" {
		t.Errorf("summary = %q", got)
	}
	if _, err := r.Submit(ctx, "10"); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("Submit after Done err = %v", err)
	}
}

func TestRunner_WrongAnswerNotMastered(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	r := newRunner(api)
	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.Select("budgeting")
	if _, err := r.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	res, err := r.Submit(ctx, "wrong")
	if err != nil || res.Correct {
		t.Fatalf("Submit = %+v, %v", res, err)
	}
	if r.Session().MasteredCount("budgeting") != 0 {
		t.Error("wrong answer must not count as mastered")
	}
	if got := r.Session().Summary("budgeting"); got != "0/2 correct (0%)" {
		t.Errorf("summary = %q", got)
	}
}

func TestRunner_SubmitInFlight(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	r := newRunner(api)
	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.Select("budgeting")
	if _, err := r.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}

	api.checkGate = make(chan struct{})
	api.checkEnter = make(chan struct{})
	done := make(chan error)
	go func() {
		_, err := r.Submit(ctx, "10")
		done <- err
	}()
	<-api.checkEnter

	if _, err := r.Submit(ctx, "10"); !errors.Is(err, ErrCheckInFlight) {
		t.Errorf("overlapping Submit err = %v", err)
	}
	close(api.checkGate)
	if err := <-done; err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if api.checks != 1 {
		t.Errorf("checks = %d, want 1", api.checks)
	}
}

func TestRunner_ResetDiscardsStaleProgress(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.table["budgeting"] = progress.Counts(3, 2)
	r := newRunner(api)
	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// A reset lands while this fetch is in flight.
	api.onProgress = func() {
		api.onProgress = nil
		r.Session().Reset()
	}
	if err := r.RefreshProgress(ctx); err != nil {
		t.Fatalf("RefreshProgress: %v", err)
	}
	if r.Session().Loaded() {
		t.Error("stale progress was applied after reset")
	}

	if err := r.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !r.Session().Loaded() {
		t.Error("progress not reloaded after reset")
	}
	if got := r.Session().Summary("budgeting"); got != progress.NoAttemptsSummary {
		t.Errorf("summary after reset = %q", got)
	}
}

func TestRunner_ResetDuringSubmitDropsAnswer(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	r := newRunner(api)
	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.Select("budgeting")
	if _, err := r.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}

	api.checkGate = make(chan struct{})
	api.checkEnter = make(chan struct{})
	done := make(chan error)
	go func() {
		res, err := r.Submit(ctx, "10")
		if err == nil && !res.Correct {
			err = errors.New("answer graded as wrong")
		}
		done <- err
	}()
	<-api.checkEnter

	if err := r.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	close(api.checkGate)
	if err := <-done; err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if got := r.Session().MasteredCount("budgeting"); got != 0 {
		t.Errorf("MasteredCount after reset = %d, want 0", got)
	}
	if got := r.Session().Summary("budgeting"); got != progress.NoAttemptsSummary {
		t.Errorf("summary after reset = %q", got)
	}
}

func TestRunner_ProgressFailureKeepsResult(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	r := newRunner(api)
	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.Select("budgeting")
	if _, err := r.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}

	api.progressErr = errors.New("offline")
	res, err := r.Submit(ctx, "10")
	if err != nil || !res.Correct {
		t.Fatalf("Submit = %+v, %v", res, err)
	}
	if !r.Session().IsMastered("budgeting", 1) {
		t.Error("correct answer not recorded")
	}
	if err := r.RefreshProgress(ctx); err == nil {
		t.Error("expected progress error")
	}
}
