package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gradgoals/gradgoals/internal/models"
)

var testCategories = []models.Category{
	{ID: "budgeting", Name: "Budgeting", QuestionCount: 3},
	{ID: "saving", Name: "Saving", QuestionCount: 2},
}

func TestNormalizePercent(t *testing.T) {
	tests := []struct {
		name  string
		stats *CategoryStats
		want  int
	}{
		{"nil", nil, 0},
		{"percent shape", Percent(42), 42},
		{"percent rounds half up", Percent(42.5), 43},
		{"percent clamps high", Percent(180), 100},
		{"percent clamps low", Percent(-3), 0},
		{"counts", Counts(4, 3), 75},
		{"correct above attempts is a percent", Counts(4, 80), 80},
		{"zero attempts", Counts(0, 0), 0},
		{"empty", &CategoryStats{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePercent(tt.stats); got != tt.want {
				t.Errorf("NormalizePercent = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizePercent_Idempotent(t *testing.T) {
	for _, stats := range []*CategoryStats{Percent(42.4), Counts(7, 5), Counts(4, 80), nil} {
		p := NormalizePercent(stats)
		if again := NormalizePercent(Percent(float64(p))); again != p {
			t.Errorf("normalize(%d) = %d, want a fixed point", p, again)
		}
	}
}

func TestTable_UnmarshalTolerant(t *testing.T) {
	payload := `{
		"budgeting": {"attempts": 4, "correct": 80},
		"saving": {"percent": "lots"},
		"credit": "garbage",
		"loans": null
	}`
	var table Table
	if err := json.Unmarshal([]byte(payload), &table); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := NormalizePercent(table["budgeting"]); got != 80 {
		t.Errorf("budgeting = %d, want 80", got)
	}
	if got := NormalizePercent(table["saving"]); got != 0 {
		t.Errorf("saving = %d, want 0", got)
	}
	if got := NormalizePercent(table["credit"]); got != 0 {
		t.Errorf("credit = %d, want 0", got)
	}
	if _, ok := table["loans"]; ok {
		t.Error("null entry should be dropped")
	}
}

func TestTable_UnmarshalRejectsNonObject(t *testing.T) {
	var table Table
	if err := json.Unmarshal([]byte(`[1,2,3]`), &table); err == nil {
		t.Fatal("expected error for array payload")
	}
}

func TestSummarize(t *testing.T) {
	table := Table{
		"budgeting": Counts(5, 2),
		"unknown":   Counts(1, 1),
	}
	tests := []struct {
		category string
		want     string
	}{
		{"budgeting", "2/3 correct (67%)"},
		{"saving", NoAttemptsSummary},
		{"unknown", "1/1 correct (100%)"},
	}
	for _, tt := range tests {
		if got := Summarize(tt.category, table, testCategories); got != tt.want {
			t.Errorf("Summarize(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestSession_RecordAnswerIsBounded(t *testing.T) {
	s := NewSession()
	s.SetCategories(testCategories)

	if !s.RecordAnswer("saving", 10, true) {
		t.Fatal("first correct answer should be recorded")
	}
	if s.RecordAnswer("saving", 10, true) {
		t.Error("duplicate answer should not change the set")
	}
	if s.RecordAnswer("saving", 11, false) {
		t.Error("incorrect answer should not be recorded")
	}
	s.RecordAnswer("saving", 11, true)
	if s.RecordAnswer("saving", 12, true) {
		t.Error("set must not grow past the question count")
	}
	if got := s.MasteredCount("saving"); got != 2 {
		t.Errorf("MasteredCount = %d, want 2", got)
	}
}

func TestSession_UndeclaredCountUsesFallback(t *testing.T) {
	ctx := context.Background()
	s := NewSession()
	s.SetCategories([]models.Category{{ID: "credit", Name: "Credit", QuestionCount: 0}})

	for _, id := range []int{1, 2, 3} {
		if !s.RecordAnswer("credit", id, true) {
			t.Fatalf("answer %d not recorded for a category without a declared count", id)
		}
	}
	if s.RecordAnswer("credit", 4, true) {
		t.Error("set must not grow past the fallback count")
	}

	calls := 0
	supply := func(context.Context, string) (models.Question, error) {
		calls++
		return models.Question{ID: 1}, nil
	}
	sel, err := s.SelectNextQuestion(ctx, "credit", supply, 0)
	if err != nil || !sel.Done || calls != 0 {
		t.Errorf("SelectNextQuestion = %+v, %v after %d calls, want Done without calls", sel, err, calls)
	}
}

func TestSession_RecordAnswerAtStaleGeneration(t *testing.T) {
	s := NewSession()
	s.SetCategories(testCategories)

	gen := s.Generation()
	if !s.RecordAnswerAt(gen, "budgeting", 1, true) {
		t.Fatal("answer under the current generation should be recorded")
	}
	s.Reset()
	if s.RecordAnswerAt(gen, "budgeting", 2, true) {
		t.Error("answer graded before the reset was recorded")
	}
	if got := s.MasteredCount("budgeting"); got != 0 {
		t.Errorf("MasteredCount after reset = %d, want 0", got)
	}
	if !s.RecordAnswerAt(s.Generation(), "budgeting", 2, true) {
		t.Error("answer under the new generation should be recorded")
	}
}

func TestSession_SelectNextQuestionDoneWithoutSupplier(t *testing.T) {
	s := NewSession()
	s.SetCategories(testCategories)
	for _, id := range []int{1, 2, 3} {
		s.RecordAnswer("budgeting", id, true)
	}

	calls := 0
	supply := func(context.Context, string) (models.Question, error) {
		calls++
		return models.Question{ID: 1}, nil
	}
	sel, err := s.SelectNextQuestion(context.Background(), "budgeting", supply, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sel.Done {
		t.Error("expected Done selection")
	}
	if calls != 0 {
		t.Errorf("supplier called %d times, want 0", calls)
	}
}

func TestSession_SelectNextQuestionSkipsMastered(t *testing.T) {
	s := NewSession()
	s.SetCategories(testCategories)
	s.RecordAnswer("budgeting", 1, true)

	ids := []int{1, 1, 2}
	calls := 0
	supply := func(context.Context, string) (models.Question, error) {
		q := models.Question{ID: ids[calls], CategoryID: "budgeting"}
		calls++
		return q, nil
	}
	sel, err := s.SelectNextQuestion(context.Background(), "budgeting", supply, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Question.ID != 2 || sel.Retries != 2 {
		t.Errorf("got question %d after %d retries, want 2 after 2", sel.Question.ID, sel.Retries)
	}
}

func TestSession_SelectNextQuestionGivesUpAfterRetries(t *testing.T) {
	s := NewSession()
	s.SetCategories(testCategories)
	s.RecordAnswer("budgeting", 1, true)

	calls := 0
	supply := func(context.Context, string) (models.Question, error) {
		calls++
		return models.Question{ID: 1}, nil
	}
	sel, err := s.SelectNextQuestion(context.Background(), "budgeting", supply, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Done || sel.Question.ID != 1 {
		t.Errorf("expected repeated question 1, got %+v", sel)
	}
	if calls != 3 {
		t.Errorf("supplier called %d times, want 3", calls)
	}
}

func TestSession_SelectNextQuestionPropagatesError(t *testing.T) {
	s := NewSession()
	boom := errors.New("network down")
	supply := func(context.Context, string) (models.Question, error) {
		return models.Question{}, boom
	}
	if _, err := s.SelectNextQuestion(context.Background(), "budgeting", supply, 0); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if _, err := s.SelectNextQuestion(context.Background(), "budgeting", nil, 0); !errors.Is(err, ErrNoSupplier) {
		t.Fatalf("err = %v, want ErrNoSupplier", err)
	}
}

func TestSession_ResetClearsAndDropsStaleProgress(t *testing.T) {
	s := NewSession()
	s.SetCategories(testCategories)
	gen := s.Generation()
	if !s.ApplyProgress(gen, Table{"budgeting": Counts(3, 2)}) {
		t.Fatal("fresh progress should apply")
	}
	s.RecordAnswer("budgeting", 1, true)
	if !s.Loaded() {
		t.Error("Loaded() = false after ApplyProgress")
	}

	s.Reset()
	if got := s.Summary("budgeting"); got != NoAttemptsSummary {
		t.Errorf("Summary after reset = %q", got)
	}
	if s.MasteredCount("budgeting") != 0 {
		t.Error("mastered set not cleared")
	}
	if s.Loaded() {
		t.Error("Loaded() = true after reset")
	}
	if s.ApplyProgress(gen, Table{"budgeting": Counts(3, 2)}) {
		t.Error("progress from before the reset must be discarded")
	}
	if got := s.Summary("budgeting"); got != NoAttemptsSummary {
		t.Errorf("Summary after stale apply = %q", got)
	}
}

func TestSession_Overview(t *testing.T) {
	s := NewSession()
	s.SetCategories(testCategories)
	s.ApplyProgress(s.Generation(), Table{
		"budgeting": Counts(6, 5),
		"saving":    Counts(1, 1),
	})

	ov := s.Overview()
	if ov.Correct != 4 || ov.Total != 5 {
		t.Fatalf("overall = %d/%d, want 4/5", ov.Correct, ov.Total)
	}
	if ov.Percent != 80 {
		t.Errorf("Percent = %d, want 80", ov.Percent)
	}
	if ov.Topics[0].Correct != 3 || ov.Topics[0].Percent != 100 {
		t.Errorf("budgeting topic = %+v, want clamped to 3/3", ov.Topics[0])
	}
	earned := ov.EarnedBadges()
	want := []string{"Getting Started", "Budget Beginner", "Money Mover", "Savings Star"}
	if len(earned) != len(want) {
		t.Fatalf("earned = %v, want %v", earned, want)
	}
	for i := range want {
		if earned[i] != want[i] {
			t.Errorf("badge %d = %q, want %q", i, earned[i], want[i])
		}
	}
}
