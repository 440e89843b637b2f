package models

// Resource types
const (
	ResourceVideo   = "video"
	ResourceArticle = "article"
)

// Resource represents an entry in the learning library
type Resource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// Rating represents one user's star rating of a resource
type Rating struct {
	ResourceID string `json:"resourceId"`
	UserID     string `json:"userId"`
	Stars      int    `json:"stars"`
}

// RatingSummary represents the aggregate rating of a resource
type RatingSummary struct {
	ResourceID string  `json:"resourceId"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
}
