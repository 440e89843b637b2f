// Package library is the curated list of learning resources shown next to the tools.
package library

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gradgoals/gradgoals/internal/models"
)

var (
	ErrInvalidType     = errors.New("type must be 'video' or 'article'")
	ErrUnknownResource = errors.New("unknown resource")
)

var slugSep = regexp.MustCompile(`[^a-z0-9]+`)

// Library holds resources in insertion order.
type Library struct {
	resources []models.Resource
}

// New returns an empty library.
func New() *Library {
	return &Library{}
}

// Default returns the library preloaded with the built-in resources.
func Default() *Library {
	l := New()
	for _, r := range defaults {
		// defaults are known-good
		_ = l.Add(r.title, r.kind, r.url)
	}
	return l
}

var defaults = []struct{ title, kind, url string }{
	{"What is budgeting", models.ResourceVideo, "https://www.youtube.com/watch?v=CbhjhWleKGE"},
	{"Budgeting Basics", models.ResourceVideo, "https://www.youtube.com/watch?v=sVKQn2I4HDM"},
	{"Budgeting for Beginners", models.ResourceVideo, "https://www.youtube.com/watch?v=xfPbT7HPkKA"},
	{"How to make a budget and stick to it", models.ResourceVideo, "https://www.youtube.com/watch?v=4Eh8QLcB1UQ"},
	{"How to manage money like the 1%", models.ResourceVideo, "https://www.youtube.com/watch?v=NEzqHbtGa9U"},
	{"You need a written budget", models.ResourceVideo, "https://www.youtube.com/watch?v=8F0mH84w6e4"},
	{"Budgeting tools", models.ResourceArticle, "https://www.consumerfinance.gov/consumer-tools/budgeting/"},
	{"Student loan repayment", models.ResourceArticle, "https://studentaid.gov/manage-loans/repayment"},
}

// Add appends a resource. The type is matched case-insensitively and stored lower case.
// The ID is a slug of the title.
func (l *Library) Add(title, kind, url string) error {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != models.ResourceVideo && kind != models.ResourceArticle {
		return ErrInvalidType
	}
	l.resources = append(l.resources, models.Resource{
		ID:    Slug(title),
		Title: title,
		Type:  kind,
		URL:   url,
	})
	return nil
}

// All returns every resource.
func (l *Library) All() []models.Resource {
	return append([]models.Resource(nil), l.resources...)
}

// Filter returns resources of the given type; an empty type returns everything.
func (l *Library) Filter(kind string) []models.Resource {
	if kind == "" {
		return l.All()
	}
	out := []models.Resource{}
	for _, r := range l.resources {
		if strings.EqualFold(r.Type, kind) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the resource with the given ID.
func (l *Library) Find(id string) (models.Resource, error) {
	for _, r := range l.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Resource{}, ErrUnknownResource
}

// Slug lowercases s and joins its alphanumeric runs with dashes.
func Slug(s string) string {
	return strings.Trim(slugSep.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
