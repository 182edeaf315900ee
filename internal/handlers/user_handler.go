package handlers

import (
	"net/http"

	"github.com/Dias221467/Giftwish/internal/services"
	"github.com/gorilla/mux"
)

// UserHandler handles HTTP requests related to user profiles.
type UserHandler struct {
	Service *services.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// GetUserHandler returns a profile with wishlist progress cards.
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// GetUserWishlistsHandler returns every wishlist of a user.
func (h *UserHandler) GetUserWishlistsHandler(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Service.GetWishlists(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}
