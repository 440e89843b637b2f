package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gradgoals/gradgoals/internal/models"
)

type createGoalRequest struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
}

type addToGoalRequest struct {
	UserID string  `json:"userId"`
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListGoals(r.Context(), ownerID(r, ""))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if goals == nil {
		goals = []models.SavingsGoal{}
	}
	writeJSON(w, http.StatusOK, goals)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if !decode(w, r, &req) {
		return
	}
	goal, err := h.svc.CreateGoal(r.Context(), ownerID(r, req.UserID), req.Name, req.TargetAmount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// AddToGoal contributes an amount toward a goal
func (h *Handler) AddToGoal(w http.ResponseWriter, r *http.Request) {
	var req addToGoalRequest
	if !decode(w, r, &req) {
		return
	}
	goal, err := h.svc.AddToGoal(r.Context(), ownerID(r, req.UserID), req.ID, req.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGoal(r.Context(), ownerID(r, ""), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
