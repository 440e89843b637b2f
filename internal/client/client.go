// Package client talks to the GradGoals HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/progress"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 4 << 20 // 4 MB, loan schedules included
	userAgent      = "gradgoals-cli/1.0"
)

var (
	// ErrUnauthorized indicates a missing, expired or invalid token.
	ErrUnauthorized = errors.New("gradgoals: unauthorized")
	// ErrRateLimited indicates the server rate limit was hit.
	ErrRateLimited = errors.New("gradgoals: rate limited")
	// ErrNotFound indicates an unknown question, category, resource or record.
	ErrNotFound = errors.New("gradgoals: not found")
)

// APIError is any other non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gradgoals: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("gradgoals: %s (status %d)", e.Message, e.Status)
}

// Client is a GradGoals API client for one user.
type Client struct {
	baseURL string
	userID  string
	token   string
	http    *http.Client
}

// New creates a client. userID identifies the caller when no token is set; both may be
// empty for anonymous use.
func New(baseURL, userID, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  strings.TrimSpace(userID),
		token:   strings.TrimSpace(token),
		http:    &http.Client{},
	}
}

// Categories lists the challenge topics.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Progress fetches the user's progress table.
func (c *Client) Progress(ctx context.Context) (progress.Table, error) {
	var table progress.Table
	if err := c.do(ctx, http.MethodGet, "/api/progress", c.userQuery(), nil, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// ResetProgress deletes the user's challenge history.
func (c *Client) ResetProgress(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/progress", c.userQuery(), nil, nil)
}

// RandomQuestion fetches a question from a category.
func (c *Client) RandomQuestion(ctx context.Context, categoryID string) (models.Question, error) {
	var q models.Question
	err := c.do(ctx, http.MethodGet, "/api/challenge", url.Values{"category": {categoryID}}, nil, &q)
	return q, err
}

// CheckAnswer grades an answer and records the attempt for the user.
func (c *Client) CheckAnswer(ctx context.Context, req models.AnswerRequest) (models.AnswerResult, error) {
	var res models.AnswerResult
	err := c.do(ctx, http.MethodPost, "/api/challenge/check", c.userQuery(), req, &res)
	return res, err
}

// CreditCard runs the payoff calculator.
func (c *Client) CreditCard(ctx context.Context, req models.PayoffRequest) (models.PayoffResponse, error) {
	var res models.PayoffResponse
	err := c.do(ctx, http.MethodPost, "/budget/credit-card", nil, req, &res)
	return res, err
}

// StudentLoan runs the loan calculator.
func (c *Client) StudentLoan(ctx context.Context, req models.LoanRequest) (models.LoanResponse, error) {
	var res models.LoanResponse
	err := c.do(ctx, http.MethodPost, "/budget/student-loan", nil, req, &res)
	return res, err
}

// ReferenceRate fetches the suggested student loan APR.
func (c *Client) ReferenceRate(ctx context.Context) (models.ReferenceRate, error) {
	var rate models.ReferenceRate
	err := c.do(ctx, http.MethodGet, "/budget/reference-rate", nil, nil, &rate)
	return rate, err
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

func (c *Client) userQuery() url.Values {
	if c.token != "" || c.userID == "" {
		return nil
	}
	return url.Values{"userId": {c.userID}}
}

// do sends one request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("gradgoals: encoding request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("gradgoals: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gradgoals: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("gradgoals: reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusNotFound:
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gradgoals: parsing %s: %w", path, err)
	}
	return nil
}
