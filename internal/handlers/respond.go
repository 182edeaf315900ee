package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/internal/services"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/Dias221467/Giftwish/pkg/middleware"
	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response")
	}
}

// writeError maps service errors to status codes. Internal errors are logged
// and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	entry := logger.Log.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFromContext(r.Context()),
		"path":       r.URL.Path,
	})

	switch {
	case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrInvalidAmount):
		entry.Warn("Rejected request")
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		entry.Info("Resource not found")
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		entry.Error("Request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
