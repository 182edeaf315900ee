package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dias221467/Giftwish/internal/feed"
	"github.com/Dias221467/Giftwish/internal/metrics"
	"github.com/Dias221467/Giftwish/internal/mockdata"
	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/Dias221467/Giftwish/internal/repository/memory"
	"github.com/Dias221467/Giftwish/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, data mockdata.Dataset) http.Handler {
	t.Helper()
	store := memory.NewStore(data)
	presenter, err := feed.NewPresenter("en-US", "USD")
	require.NoError(t, err)
	m := metrics.New()

	wishlists := services.NewWishlistService(store.Wishlists(), "USD", "en-US")
	return NewRouter(Router{
		Wishlists: NewWishlistHandler(wishlists),
		Feed:      NewFeedHandler(services.NewActivityService(store.Activities(), store.Users(), presenter), func() time.Time { return fixedNow }),
		Users:     NewUserHandler(services.NewUserService(store.Users(), wishlists)),
		Actions:   NewActionHandler(services.NewActionService(store.Wishlists(), store.Users(), m)),
		Metrics:   m.Handler(),
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRoutes_StatusCodes(t *testing.T) {
	h := newTestRouter(t, mockdata.Default())
	missing := primitive.NewObjectID().Hex()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"list wishlists", http.MethodGet, "/wishlists", "", http.StatusOK},
		{"get wishlist", http.MethodGet, "/wishlists/" + mockdata.WishlistBirthday.Hex(), "", http.StatusOK},
		{"wishlist not found", http.MethodGet, "/wishlists/" + missing, "", http.StatusNotFound},
		{"wishlist bad id", http.MethodGet, "/wishlists/xyz", "", http.StatusBadRequest},
		{"wishlist progress", http.MethodGet, "/wishlists/" + mockdata.WishlistTravel.Hex() + "/progress", "", http.StatusOK},
		{"item progress", http.MethodGet, "/wishlists/" + mockdata.WishlistBirthday.Hex() + "/items/" + mockdata.ItemMacBook.Hex() + "/progress", "", http.StatusOK},
		{"item not in wishlist", http.MethodGet, "/wishlists/" + mockdata.WishlistBirthday.Hex() + "/items/" + mockdata.ItemCamera.Hex() + "/progress", "", http.StatusNotFound},
		{"feed", http.MethodGet, "/feed", "", http.StatusOK},
		{"feed bad limit", http.MethodGet, "/feed?limit=abc", "", http.StatusBadRequest},
		{"feed zero limit", http.MethodGet, "/feed?limit=0", "", http.StatusBadRequest},
		{"user", http.MethodGet, "/users/" + mockdata.UserAnna.Hex(), "", http.StatusOK},
		{"user not found", http.MethodGet, "/users/" + missing, "", http.StatusNotFound},
		{"user wishlists", http.MethodGet, "/users/" + mockdata.UserKate.Hex() + "/wishlists", "", http.StatusOK},
		{"user feed", http.MethodGet, "/users/" + mockdata.UserMax.Hex() + "/feed", "", http.StatusOK},
		{"like", http.MethodPost, "/wishlists/" + mockdata.WishlistBirthday.Hex() + "/like", "", http.StatusAccepted},
		{"like missing", http.MethodPost, "/wishlists/" + missing + "/like", "", http.StatusNotFound},
		{"follow", http.MethodPost, "/users/" + mockdata.UserKate.Hex() + "/follow", "", http.StatusAccepted},
		{"contribute", http.MethodPost, "/wishlists/" + mockdata.WishlistBirthday.Hex() + "/items/" + mockdata.ItemKindle.Hex() + "/contribute", `{"amount":"1500"}`, http.StatusAccepted},
		{"contribute numeric amount", http.MethodPost, "/wishlists/" + mockdata.WishlistBirthday.Hex() + "/items/" + mockdata.ItemKindle.Hex() + "/contribute", `{"amount":250.5}`, http.StatusAccepted},
		{"contribute negative", http.MethodPost, "/wishlists/" + mockdata.WishlistBirthday.Hex() + "/items/" + mockdata.ItemKindle.Hex() + "/contribute", `{"amount":"-1"}`, http.StatusBadRequest},
		{"contribute bad body", http.MethodPost, "/wishlists/" + mockdata.WishlistBirthday.Hex() + "/items/" + mockdata.ItemKindle.Hex() + "/contribute", `{`, http.StatusBadRequest},
		{"wrong method", http.MethodDelete, "/wishlists", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
		})
	}
}

func TestFeedHandler_UsesInjectedClock(t *testing.T) {
	h := newTestRouter(t, mockdata.Default())

	rr := do(t, h, http.MethodGet, "/feed?limit=3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var entries []feed.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "17h ago", entries[0].TimeLabel)
	assert.Equal(t, "heart", string(entries[0].Icon))
	assert.Equal(t, "2d ago", entries[2].TimeLabel)
}

func TestItemProgress_ZeroGoalIsUndefined(t *testing.T) {
	wishlistID, itemID := primitive.NewObjectID(), primitive.NewObjectID()
	h := newTestRouter(t, mockdata.Dataset{
		Wishlists: []models.Wishlist{{
			ID:       wishlistID,
			IsPublic: true,
			Items: []models.GiftItem{{
				ID:            itemID,
				CurrentAmount: decimal.NewFromInt(100),
				GoalAmount:    decimal.Zero,
			}},
		}},
	})

	rr := do(t, h, http.MethodGet, "/wishlists/"+wishlistID.Hex()+"/items/"+itemID.Hex()+"/progress", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Progress map[string]interface{} `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Nil(t, body.Progress["percentage"])
	assert.Equal(t, false, body.Progress["progress_defined"])
	assert.NotContains(t, rr.Body.String(), "Inf")
	assert.NotContains(t, rr.Body.String(), "NaN")
}

func TestActions_CountedNotStored(t *testing.T) {
	h := newTestRouter(t, mockdata.Default())

	before := do(t, h, http.MethodGet, "/wishlists/"+mockdata.WishlistBirthday.Hex(), "").Body.String()
	do(t, h, http.MethodPost, "/wishlists/"+mockdata.WishlistBirthday.Hex()+"/like", "")
	do(t, h, http.MethodPost, "/wishlists/"+mockdata.WishlistBirthday.Hex()+"/items/"+mockdata.ItemMacBook.Hex()+"/contribute", `{"amount":"5000"}`)
	after := do(t, h, http.MethodGet, "/wishlists/"+mockdata.WishlistBirthday.Hex(), "").Body.String()

	assert.JSONEq(t, before, after)

	rr := do(t, h, http.MethodGet, "/metrics", "")
	assert.Contains(t, rr.Body.String(), `giftwish_actions_total{action="like"} 1`)
	assert.Contains(t, rr.Body.String(), `giftwish_actions_total{action="contribute"} 1`)
}
