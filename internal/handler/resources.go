package handler

import (
	"net/http"

	"github.com/gradgoals/gradgoals/internal/models"
)

// Resources lists the learning library, optionally filtered with ?type=
func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Resources(r.URL.Query().Get("type"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// RateResource stores the caller's star rating
func (h *Handler) RateResource(w http.ResponseWriter, r *http.Request) {
	var req models.Rating
	if !decode(w, r, &req) {
		return
	}
	req.UserID = userID(r, req.UserID)
	if err := h.svc.RateResource(r.Context(), req); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) RatingSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.RatingSummary(r.Context(), r.URL.Query().Get("resourceId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *Handler) UserRating(w http.ResponseWriter, r *http.Request) {
	rating, err := h.svc.UserRating(r.Context(), r.URL.Query().Get("resourceId"), userID(r, ""))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}
