package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gradgoals/gradgoals/internal/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRebind(t *testing.T) {
	pg := &Repository{driver: DriverPostgres}
	if got := pg.rebind("SELECT a FROM t WHERE b = ? AND c = ?"); got != "SELECT a FROM t WHERE b = $1 AND c = $2" {
		t.Errorf("postgres rebind = %q", got)
	}
	lite := &Repository{driver: DriverSQLite}
	if got := lite.rebind("b = ?"); got != "b = ?" {
		t.Errorf("sqlite rebind = %q", got)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "x"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	u := &models.User{Email: "sam@example.com", Username: "sam", PasswordHash: "hash"}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" {
		t.Fatal("CreateUser did not assign an ID")
	}

	dup := &models.User{Email: "sam@example.com", Username: "other", PasswordHash: "hash"}
	if err := repo.CreateUser(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate email err = %v, want ErrDuplicate", err)
	}

	got, err := repo.FindUserByEmail(ctx, "sam@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail: %v", err)
	}
	if got.ID != u.ID || got.PasswordHash != "hash" {
		t.Errorf("got %+v", got)
	}
	if _, err := repo.FindUserByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBudgetItems(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, it := range []models.BudgetItem{
		{UserID: "u1", Category: "Job", Amount: 2000, Type: models.ItemIncome},
		{UserID: "u1", Category: "Rent", Amount: 900.5, Type: models.ItemExpense},
		{UserID: "u2", Category: "Rent", Amount: 100, Type: models.ItemExpense},
	} {
		item := it
		if err := repo.AddBudgetItem(ctx, &item); err != nil {
			t.Fatalf("AddBudgetItem: %v", err)
		}
	}

	items, err := repo.ListBudgetItems(ctx, "u1")
	if err != nil {
		t.Fatalf("ListBudgetItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	income, expenses, err := repo.BudgetTotals(ctx, "u1")
	if err != nil {
		t.Fatalf("BudgetTotals: %v", err)
	}
	if income != 2000 || expenses != 900.5 {
		t.Errorf("totals = %v, %v", income, expenses)
	}

	if err := repo.DeleteBudgetItem(ctx, "u2", items[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting another user's item: err = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteBudgetItem(ctx, "u1", items[0].ID); err != nil {
		t.Errorf("DeleteBudgetItem: %v", err)
	}

	income, expenses, err = repo.BudgetTotals(ctx, "nobody")
	if err != nil || income != 0 || expenses != 0 {
		t.Errorf("empty totals = %v, %v, %v", income, expenses, err)
	}
}

func TestGoals(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	u := &models.User{Email: "a@example.com", Username: "a", PasswordHash: "x"}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	open := &models.SavingsGoal{UserID: u.ID, Name: "Laptop", TargetAmount: 1000, CurrentAmount: 100}
	done := &models.SavingsGoal{UserID: u.ID, Name: "Books", TargetAmount: 50, CurrentAmount: 50}
	for _, g := range []*models.SavingsGoal{open, done} {
		if err := repo.CreateGoal(ctx, g); err != nil {
			t.Fatalf("CreateGoal: %v", err)
		}
	}

	got, completed, err := repo.AddGoalAmount(ctx, u.ID, open.ID, 300)
	if err != nil {
		t.Fatalf("AddGoalAmount: %v", err)
	}
	if got.CurrentAmount != 400 || completed {
		t.Errorf("after 300: CurrentAmount = %v, completed = %v", got.CurrentAmount, completed)
	}
	if got, err = repo.GetGoal(ctx, u.ID, open.ID); err != nil || got.CurrentAmount != 400 {
		t.Errorf("GetGoal = %+v, %v", got, err)
	}
	if _, completed, err = repo.AddGoalAmount(ctx, u.ID, done.ID, 10); err != nil || completed {
		t.Errorf("adding to a finished goal: completed = %v, err = %v", completed, err)
	}
	if _, _, err = repo.AddGoalAmount(ctx, "someone-else", open.ID, 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user's goal err = %v, want ErrNotFound", err)
	}

	reminders, err := repo.ListGoalReminders(ctx)
	if err != nil {
		t.Fatalf("ListGoalReminders: %v", err)
	}
	if len(reminders) != 1 || len(reminders[0].Goals) != 1 || reminders[0].Goals[0].Name != "Laptop" {
		t.Errorf("reminders = %+v, want only the open goal", reminders)
	}

	if err := repo.DeleteGoal(ctx, u.ID, done.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if _, err := repo.GetGoal(ctx, u.ID, done.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	goals, err := repo.ListGoals(ctx, u.ID)
	if err != nil || len(goals) != 1 {
		t.Errorf("ListGoals = %v, %v", goals, err)
	}
}

func TestRatings(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	sum, err := repo.RatingSummary(ctx, "r1")
	if err != nil || sum.Count != 0 || sum.Average != 0 {
		t.Fatalf("empty summary = %+v, %v", sum, err)
	}

	for _, r := range []models.Rating{
		{ResourceID: "r1", UserID: "a", Stars: 2},
		{ResourceID: "r1", UserID: "b", Stars: 5},
		{ResourceID: "r1", UserID: "a", Stars: 4},
	} {
		if err := repo.UpsertRating(ctx, r); err != nil {
			t.Fatalf("UpsertRating: %v", err)
		}
	}

	sum, err = repo.RatingSummary(ctx, "r1")
	if err != nil {
		t.Fatalf("RatingSummary: %v", err)
	}
	if sum.Count != 2 || sum.Average != 4.5 {
		t.Errorf("summary = %+v, want 2 ratings averaging 4.5", sum)
	}

	mine, err := repo.UserRating(ctx, "r1", "a")
	if err != nil || mine.Stars != 4 {
		t.Errorf("UserRating = %+v, %v", mine, err)
	}
	if _, err := repo.UserRating(ctx, "r1", "z"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestChallengeProgress(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	attempts := []struct {
		question int
		correct  bool
	}{
		{1, false},
		{1, true},
		{1, true},
		{2, true},
	}
	for _, a := range attempts {
		if err := repo.RecordAttempt(ctx, "u1", "budgeting", a.question, a.correct); err != nil {
			t.Fatalf("RecordAttempt: %v", err)
		}
	}

	progress, err := repo.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	got := progress["budgeting"]
	if got.Attempts != 4 || got.Correct != 2 {
		t.Errorf("progress = %+v, want 4 attempts 2 correct", got)
	}

	if err := repo.ResetProgress(ctx, "u1"); err != nil {
		t.Fatalf("ResetProgress: %v", err)
	}
	progress, err = repo.Progress(ctx, "u1")
	if err != nil || len(progress) != 0 {
		t.Errorf("after reset = %v, %v", progress, err)
	}

	if err := repo.RecordAttempt(ctx, "u1", "budgeting", 1, true); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	progress, _ = repo.Progress(ctx, "u1")
	if progress["budgeting"].Correct != 1 {
		t.Errorf("question should count again after reset, got %+v", progress["budgeting"])
	}
}
