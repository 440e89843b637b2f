package handler

import (
	"net/http"

	"github.com/gradgoals/gradgoals/internal/models"
)

// Categories lists challenge topics
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories())
}

// Progress returns the caller's per-category progress table
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	table, err := h.svc.Progress(r.Context(), userID(r, ""))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// ResetProgress clears the caller's challenge history
func (h *Handler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetProgress(r.Context(), userID(r, "")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// RandomQuestion serves one question from the requested category
func (h *Handler) RandomQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.RandomQuestion(r.URL.Query().Get("category"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// CheckAnswer grades an answer; attempts are recorded only for identified callers
func (h *Handler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.svc.CheckAnswer(r.Context(), userID(r, ""), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
