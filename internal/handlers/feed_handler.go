package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Dias221467/Giftwish/internal/services"
	"github.com/gorilla/mux"
)

// FeedHandler serves the activity feed. Now is read once per request so all
// entries of a response share one clock reading.
type FeedHandler struct {
	Service *services.ActivityService
	Now     func() time.Time
}

func NewFeedHandler(service *services.ActivityService, now func() time.Time) *FeedHandler {
	if now == nil {
		now = time.Now
	}
	return &FeedHandler{Service: service, Now: now}
}

// GetFeedHandler returns the newest activities across all users
func (h *FeedHandler) GetFeedHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.Service.GetFeed(r.Context(), limit, h.Now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetUserFeedHandler returns the activities of one user
func (h *FeedHandler) GetUserFeedHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.Service.GetUserFeed(r.Context(), mux.Vars(r)["id"], limit, h.Now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// parseLimit reads ?limit=N; absent means the service default.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	return limit, nil
}
