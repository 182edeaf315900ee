package handlers

import (
	"net/http"

	"github.com/Dias221467/Giftwish/internal/services"
	"github.com/gorilla/mux"
)

// WishlistHandler serves wishlists and their funding progress.
type WishlistHandler struct {
	Service *services.WishlistService
}

func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{Service: service}
}

// GetWishlistsHandler returns all public wishlists
func (h *WishlistHandler) GetWishlistsHandler(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Service.ListWishlists(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// GetWishlistHandler returns one wishlist with per-item progress
func (h *WishlistHandler) GetWishlistHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.GetWishlist(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *WishlistHandler) GetWishlistProgressHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.GetProgress(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *WishlistHandler) GetItemProgressHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	item, err := h.Service.GetItemProgress(r.Context(), vars["id"], vars["itemID"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
