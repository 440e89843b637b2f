package challenge

import (
	"errors"
	"testing"
)

func TestBank_Categories(t *testing.T) {
	cats := NewBank().Categories()
	if len(cats) != 15 {
		t.Fatalf("len(categories) = %d, want 15", len(cats))
	}
	counts := map[string]int{}
	for _, c := range cats {
		counts[c.ID] = c.QuestionCount
	}
	if counts["budgeting"] != 3 {
		t.Errorf("budgeting count = %d, want 3", counts["budgeting"])
	}
	if counts["travel"] != 2 {
		t.Errorf("travel count = %d, want 2", counts["travel"])
	}
}

func TestBank_Random(t *testing.T) {
	b := NewBank(WithRand(func(n int) int { return n - 1 }))

	q, err := b.Random("BUDGETING")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != 3 || q.CategoryID != "budgeting" {
		t.Errorf("got question %d in %q, want 3 in budgeting", q.ID, q.CategoryID)
	}

	if _, err := b.Random("crypto"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestBank_Check(t *testing.T) {
	b := NewBank()
	tests := []struct {
		name       string
		questionID int
		answer     string
		want       bool
	}{
		{"exact", 1, "1200", true},
		{"dollar and comma", 1, " $1,200 ", true},
		{"trailing decimals", 1, "1200.00", true},
		{"decimal answer", 110, "$29.97", true},
		{"wrong", 1, "1300", false},
		{"empty", 1, "   ", false},
		{"not a number", 1, "twelve hundred", false},
		{"travel total", 140, "670", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := b.Check(tt.questionID, tt.answer)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Correct != tt.want {
				t.Errorf("Correct = %v, want %v", res.Correct, tt.want)
			}
			wantMsg := IncorrectMessage
			if tt.want {
				wantMsg = CorrectMessage
			}
			if res.Message != wantMsg {
				t.Errorf("Message = %q, want %q", res.Message, wantMsg)
			}
			if res.Explanation == "" || res.CategoryID == "" {
				t.Errorf("missing explanation or category: %+v", res)
			}
		})
	}
}

func TestBank_CheckUnknownQuestion(t *testing.T) {
	if _, err := NewBank().Check(9999, "1"); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
}
