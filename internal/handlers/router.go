package handlers

import (
	"net/http"

	"github.com/Dias221467/Giftwish/pkg/middleware"
	"github.com/gorilla/mux"
)

// Router bundles the handlers registered by NewRouter. Metrics may be nil
// to leave /metrics unregistered.
type Router struct {
	Wishlists *WishlistHandler
	Feed      *FeedHandler
	Users     *UserHandler
	Actions   *ActionHandler
	Metrics   http.Handler
}

// NewRouter registers all routes behind the logging middleware.
func NewRouter(h Router) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", HealthHandler).Methods("GET")
	if h.Metrics != nil {
		router.Handle("/metrics", h.Metrics).Methods("GET")
	}

	// Wishlist routes
	router.HandleFunc("/wishlists", h.Wishlists.GetWishlistsHandler).Methods("GET")
	router.HandleFunc("/wishlists/{id}", h.Wishlists.GetWishlistHandler).Methods("GET")
	router.HandleFunc("/wishlists/{id}/progress", h.Wishlists.GetWishlistProgressHandler).Methods("GET")
	router.HandleFunc("/wishlists/{id}/items/{itemID}/progress", h.Wishlists.GetItemProgressHandler).Methods("GET")
	router.HandleFunc("/wishlists/{id}/like", h.Actions.LikeHandler).Methods("POST")
	router.HandleFunc("/wishlists/{id}/items/{itemID}/contribute", h.Actions.ContributeHandler).Methods("POST")

	// Feed routes
	router.HandleFunc("/feed", h.Feed.GetFeedHandler).Methods("GET")

	// User routes
	router.HandleFunc("/users/{id}", h.Users.GetUserHandler).Methods("GET")
	router.HandleFunc("/users/{id}/wishlists", h.Users.GetUserWishlistsHandler).Methods("GET")
	router.HandleFunc("/users/{id}/feed", h.Feed.GetUserFeedHandler).Methods("GET")
	router.HandleFunc("/users/{id}/follow", h.Actions.FollowHandler).Methods("POST")

	router.Use(middleware.LoggingMiddleware)
	return router
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
