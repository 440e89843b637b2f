package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gradgoals/gradgoals/internal/export"
	"github.com/gradgoals/gradgoals/internal/models"
)

type budgetItemRequest struct {
	UserID   string  `json:"userId"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
}

// CreditCardPayoff runs the payoff simulation
func (h *Handler) CreditCardPayoff(w http.ResponseWriter, r *http.Request) {
	var req models.PayoffRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.svc.CreditCardPayoff(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// StudentLoan computes a fixed loan payment
func (h *Handler) StudentLoan(w http.ResponseWriter, r *http.Request) {
	var req models.LoanRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.svc.StudentLoan(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ReferenceRate returns the suggested student loan APR
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.ReferenceRate(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// ListBudgetItems returns the caller's income and expense lines
func (h *Handler) ListBudgetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListBudgetItems(r.Context(), ownerID(r, ""))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if items == nil {
		items = []models.BudgetItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// AddBudgetItem records a budget line
func (h *Handler) AddBudgetItem(w http.ResponseWriter, r *http.Request) {
	var req budgetItemRequest
	if !decode(w, r, &req) {
		return
	}
	item, err := h.svc.AddBudgetItem(r.Context(), ownerID(r, req.UserID), req.Category, req.Amount, req.Type)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// DeleteBudgetItem removes one of the caller's budget lines
func (h *Handler) DeleteBudgetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.DeleteBudgetItem(r.Context(), ownerID(r, ""), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// BudgetSummary returns income, expense and net totals
func (h *Handler) BudgetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.BudgetSummary(r.Context(), ownerID(r, ""))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ExportBudget downloads the caller's budget as CSV or a spreadsheet
func (h *Handler) ExportBudget(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatCSV
	}
	var buf bytes.Buffer
	if err := h.svc.ExportBudget(r.Context(), ownerID(r, ""), format, &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	mime, ext, _ := export.ContentType(format)
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"budget.%s\"", ext))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
