package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gradgoals/gradgoals/internal/amortization"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/progress"
)

func TestPayoff(t *testing.T) {
	final := 1016.67
	out := Payoff(models.PayoffResponse{PayoffPossible: false, FinalBalance: &final})
	if !strings.Contains(out, models.MsgPaymentTooSmall) || !strings.Contains(out, "$1,016.67") {
		t.Errorf("impossible payoff output:\n%s", out)
	}

	months, interest := 12, 103.04
	out = Payoff(models.PayoffResponse{PayoffPossible: true, Months: &months, TotalInterest: &interest})
	if !strings.Contains(out, "12") || !strings.Contains(out, "$103.04") {
		t.Errorf("payoff output:\n%s", out)
	}
	if strings.Contains(out, models.MsgPaymentTooSmall) {
		t.Error("possible payoff must not show the impossible message")
	}
}

func TestLoanSchedule(t *testing.T) {
	rows, err := amortization.Schedule(5000, 5, 10, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	out := Loan(models.LoanResponse{MonthlyPayment: 53.03, TotalPaid: 6363.93, TotalInterest: 1363.93, Schedule: rows}, 3)
	for _, want := range []string{"$53.03", "$6,363.93", "2026-02-15", "117 more payments"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestOverview(t *testing.T) {
	s := progress.NewSession()
	s.SetCategories([]models.Category{
		{ID: "budgeting", Name: "Budgeting", QuestionCount: 3},
		{ID: "saving", Name: "Saving", QuestionCount: 2},
	})
	s.ApplyProgress(s.Generation(), progress.Table{
		"budgeting": progress.Counts(4, 2),
		"saving":    progress.Counts(2, 2),
	})

	out := Overview(s.Overview())
	for _, want := range []string{"Overall (4/5)", "80%", "* Savings Star", "- GradGoals Master (100%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	list := Categories(s)
	if !strings.Contains(list, "2/3 correct (50%)") {
		t.Errorf("categories:\n%s", list)
	}
	s.Reset()
	if strings.Contains(Categories(s), "correct") {
		t.Error("summaries should be blank until progress reloads")
	}
}

func TestAnswer(t *testing.T) {
	out := Answer(models.AnswerResult{Correct: false, Message: "Not quite.", Explanation: "250 - 180 = 70."})
	if !strings.Contains(out, "Not quite.") || !strings.Contains(out, "250 - 180 = 70.") {
		t.Errorf("answer output:\n%s", out)
	}
}
