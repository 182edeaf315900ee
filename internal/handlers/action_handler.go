package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Giftwish/internal/services"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type actionResponse struct {
	Status string `json:"status"`
	Action string `json:"action"`
}

// ActionHandler accepts likes, follows and contributions. Nothing is stored.
type ActionHandler struct {
	Service *services.ActionService
}

func NewActionHandler(service *services.ActionService) *ActionHandler {
	return &ActionHandler{Service: service}
}

func (h *ActionHandler) LikeHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Like(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, actionResponse{Status: "accepted", Action: services.ActionLike})
}

func (h *ActionHandler) FollowHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Follow(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, actionResponse{Status: "accepted", Action: services.ActionFollow})
}

func (h *ActionHandler) ContributeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	vars := mux.Vars(r)
	if err := h.Service.Contribute(r.Context(), vars["id"], vars["itemID"], req.Amount); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, actionResponse{Status: "accepted", Action: services.ActionContribute})
}
