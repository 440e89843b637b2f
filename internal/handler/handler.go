package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/challenge"
	"github.com/gradgoals/gradgoals/internal/library"
	"github.com/gradgoals/gradgoals/internal/middleware"
	"github.com/gradgoals/gradgoals/internal/repository"
	"github.com/gradgoals/gradgoals/internal/service"
)

// GuestUser owns budget and goal data posted without an identity
const GuestUser = "guest"

const maxBodyBytes = 1 << 20

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes registers every endpoint on a new router
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.Health).Methods("GET")

	// Accounts
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	// Challenge
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", h.Categories).Methods("GET")
	api.HandleFunc("/progress", h.Progress).Methods("GET")
	api.HandleFunc("/progress", h.ResetProgress).Methods("DELETE")
	api.HandleFunc("/challenge", h.RandomQuestion).Methods("GET")
	api.HandleFunc("/challenge/check", h.CheckAnswer).Methods("POST")

	// Budget and calculators
	budget := r.PathPrefix("/budget").Subrouter()
	budget.HandleFunc("/credit-card", h.CreditCardPayoff).Methods("POST")
	budget.HandleFunc("/student-loan", h.StudentLoan).Methods("POST")
	budget.HandleFunc("/reference-rate", h.ReferenceRate).Methods("GET")
	budget.HandleFunc("/items", h.ListBudgetItems).Methods("GET")
	budget.HandleFunc("/add-item", h.AddBudgetItem).Methods("POST")
	budget.HandleFunc("/delete/{id}", h.DeleteBudgetItem).Methods("DELETE")
	budget.HandleFunc("/summary", h.BudgetSummary).Methods("GET")
	budget.HandleFunc("/export", h.ExportBudget).Methods("GET")

	// Goals
	goals := r.PathPrefix("/goals").Subrouter()
	goals.HandleFunc("/all", h.ListGoals).Methods("GET")
	goals.HandleFunc("/create", h.CreateGoal).Methods("POST")
	goals.HandleFunc("/add", h.AddToGoal).Methods("POST")
	goals.HandleFunc("/delete/{id}", h.DeleteGoal).Methods("DELETE")

	// Learning library
	r.HandleFunc("/resources", h.Resources).Methods("GET")
	r.HandleFunc("/ratings", h.RateResource).Methods("POST")
	r.HandleFunc("/ratings/average", h.RatingSummary).Methods("GET")
	r.HandleFunc("/ratings/user", h.UserRating).Methods("GET")

	return r
}

// Health reports whether the database is reachable
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// userID resolves the caller: a verified token first, then the userId query parameter,
// then the id supplied in the body
func userID(r *http.Request, bodyID string) string {
	if id, ok := middleware.UserID(r.Context()); ok {
		return id
	}
	if id := strings.TrimSpace(r.URL.Query().Get("userId")); id != "" {
		return id
	}
	return strings.TrimSpace(bodyID)
}

// ownerID is userID with the guest fallback used by budget and goal routes
func ownerID(r *http.Request, bodyID string) string {
	if id := userID(r, bodyID); id != "" {
		return id
	}
	return GuestUser
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps a service error onto an HTTP status
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, challenge.ErrUnknownQuestion),
		errors.Is(err, challenge.ErrUnknownCategory),
		errors.Is(err, library.ErrUnknownResource):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRateUnavailable):
		writeError(w, http.StatusServiceUnavailable, service.ErrRateUnavailable.Error())
	default:
		h.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Errorf("Request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
