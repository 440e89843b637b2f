package library

import (
	"errors"
	"testing"

	"github.com/gradgoals/gradgoals/internal/models"
)

func TestDefault_Filter(t *testing.T) {
	l := Default()
	if got := len(l.Filter(models.ResourceVideo)); got != 6 {
		t.Errorf("videos = %d, want 6", got)
	}
	if got := len(l.Filter("ARTICLE")); got != 2 {
		t.Errorf("articles = %d, want 2", got)
	}
	if got := len(l.Filter("")); got != 8 {
		t.Errorf("all = %d, want 8", got)
	}
	if got := l.Filter("podcast"); got == nil || len(got) != 0 {
		t.Errorf("unknown type = %v, want empty non-nil slice", got)
	}
}

func TestAdd_RejectsUnknownType(t *testing.T) {
	if err := New().Add("Pod", "podcast", "https://example.com"); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("err = %v, want ErrInvalidType", err)
	}
}

func TestFind(t *testing.T) {
	l := Default()
	r, err := l.Find("how-to-manage-money-like-the-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Type != models.ResourceVideo {
		t.Errorf("Type = %q, want video", r.Type)
	}
	if _, err := l.Find("nope"); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("err = %v, want ErrUnknownResource", err)
	}
}

func TestSlug(t *testing.T) {
	if got := Slug("  What is budgeting: "); got != "what-is-budgeting" {
		t.Errorf("Slug = %q", got)
	}
}
