package models

// Category represents a topic grouping of challenge questions
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Blurb         string `json:"blurb"`
	QuestionCount int    `json:"questionCount"`
}

// Question is a challenge prompt. The answer key never leaves the server.
type Question struct {
	ID         int    `json:"id"`
	CategoryID string `json:"categoryId"`
	Prompt     string `json:"prompt"`
}

// AnswerRequest is the body of a challenge answer check
type AnswerRequest struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// AnswerResult is the grading result for a submitted answer
type AnswerResult struct {
	Correct     bool   `json:"correct"`
	Message     string `json:"message"`
	Explanation string `json:"explanation"`
	QuestionID  int    `json:"questionId"`
	CategoryID  string `json:"categoryId,omitempty"`
}

// ProgressStats is the server-side ledger entry for one category
type ProgressStats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}
