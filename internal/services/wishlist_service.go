package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/Giftwish/internal/funding"
	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemProgressView is funding.ItemProgress made safe for JSON. Percentage is
// nil when the ratio is undefined (money raised towards a zero goal).
type ItemProgressView struct {
	Percentage        *float64        `json:"percentage"`
	DisplayPercentage *float64        `json:"display_percentage"`
	Remaining         decimal.Decimal `json:"remaining"`
	IsOverfunded      bool            `json:"is_overfunded"`
	ProgressDefined   bool            `json:"progress_defined"`
	RaisedLabel       string          `json:"raised_label"`
	GoalLabel         string          `json:"goal_label"`
}

type ItemView struct {
	models.GiftItem
	Completed    bool             `json:"completed"`
	FlagMismatch bool             `json:"flag_mismatch"`
	Progress     ItemProgressView `json:"progress"`
}

type WishlistProgressView struct {
	funding.WishlistProgress
	DisplayPercentage float64 `json:"display_percentage"`
	RaisedLabel       string  `json:"raised_label"`
	GoalLabel         string  `json:"goal_label"`
}

type WishlistView struct {
	ID          primitive.ObjectID   `json:"id"`
	UserID      primitive.ObjectID   `json:"user_id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	CoverURL    string               `json:"cover_url,omitempty"`
	IsPublic    bool                 `json:"is_public"`
	Likes       int                  `json:"likes"`
	CreatedAt   time.Time            `json:"created_at"`
	Items       []ItemView           `json:"items"`
	Progress    WishlistProgressView `json:"progress"`
	Summary     funding.ListSummary  `json:"summary"`
}

// ProgressReport is the roll-up served without the item list.
type ProgressReport struct {
	WishlistID primitive.ObjectID   `json:"wishlist_id"`
	Title      string               `json:"title"`
	Progress   WishlistProgressView `json:"progress"`
	Summary    funding.ListSummary  `json:"summary"`
}

// WishlistService builds funding views over stored wishlists.
type WishlistService struct {
	repo     repository.WishlistRepository
	currency string
	locale   string
}

// NewWishlistService creates a service rendering amounts in currencyCode for locale.
func NewWishlistService(repo repository.WishlistRepository, currencyCode, locale string) *WishlistService {
	return &WishlistService{
		repo:     repo,
		currency: currencyCode,
		locale:   locale,
	}
}

func (s *WishlistService) GetWishlist(ctx context.Context, id string) (*WishlistView, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.wishlistView(*w)
	return &view, nil
}

// ListWishlists returns every public wishlist.
func (s *WishlistService) ListWishlists(ctx context.Context) ([]WishlistView, error) {
	lists, err := s.repo.GetAllWishlists(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]WishlistView, 0, len(lists))
	for _, w := range lists {
		if !w.IsPublic {
			continue
		}
		views = append(views, s.wishlistView(w))
	}
	return views, nil
}

// ListByUser returns all wishlists of a user, private ones included.
func (s *WishlistService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]WishlistView, error) {
	lists, err := s.repo.GetWishlistsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]WishlistView, 0, len(lists))
	for _, w := range lists {
		views = append(views, s.wishlistView(w))
	}
	return views, nil
}

func (s *WishlistService) GetProgress(ctx context.Context, id string) (*ProgressReport, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProgressReport{
		WishlistID: w.ID,
		Title:      w.Title,
		Progress:   s.progressView(*w),
		Summary:    funding.Summary(*w),
	}, nil
}

func (s *WishlistService) GetItemProgress(ctx context.Context, wishlistID, itemID string) (*ItemView, error) {
	itemObjID, err := parseID("item", itemID)
	if err != nil {
		return nil, err
	}
	w, err := s.load(ctx, wishlistID)
	if err != nil {
		return nil, err
	}

	item, ok := w.Item(itemObjID)
	if !ok {
		return nil, fmt.Errorf("item %s in wishlist %s: %w", itemID, wishlistID, repository.ErrNotFound)
	}
	view := s.itemView(item)
	return &view, nil
}

func (s *WishlistService) load(ctx context.Context, id string) (*models.Wishlist, error) {
	objID, err := parseID("wishlist", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetWishlistByID(ctx, objID)
}

func (s *WishlistService) wishlistView(w models.Wishlist) WishlistView {
	items := make([]ItemView, 0, len(w.Items))
	for _, item := range w.Items {
		items = append(items, s.itemView(item))
	}

	return WishlistView{
		ID:          w.ID,
		UserID:      w.UserID,
		Title:       w.Title,
		Description: w.Description,
		CoverURL:    w.CoverURL,
		IsPublic:    w.IsPublic,
		Likes:       w.Likes,
		CreatedAt:   w.CreatedAt,
		Items:       items,
		Progress:    s.progressView(w),
		Summary:     funding.Summary(w),
	}
}

func (s *WishlistService) progressView(w models.Wishlist) WishlistProgressView {
	p := funding.Wishlist(w)
	return WishlistProgressView{
		WishlistProgress:  p,
		DisplayPercentage: funding.DisplayPercentage(p.Percentage),
		RaisedLabel:       s.money(p.TotalRaised),
		GoalLabel:         s.money(p.TotalGoal),
	}
}

func (s *WishlistService) itemView(item models.GiftItem) ItemView {
	view := ItemView{
		GiftItem:     item,
		Completed:    item.Completed(),
		FlagMismatch: item.FlagMismatch(),
		Progress: ItemProgressView{
			RaisedLabel: s.money(item.CurrentAmount),
			GoalLabel:   s.money(item.GoalAmount),
		},
	}

	p, err := funding.Item(item)
	if err != nil {
		if !errors.Is(err, funding.ErrDivisionByZero) {
			logger.Log.WithError(err).WithField("item_id", item.ID.Hex()).Error("Failed to compute item progress")
		}
		view.Progress.Remaining = item.GoalAmount.Sub(item.CurrentAmount)
		view.Progress.IsOverfunded = item.CurrentAmount.GreaterThan(item.GoalAmount)
		return view
	}

	display := funding.DisplayPercentage(p.Percentage)
	view.Progress.Percentage = &p.Percentage
	view.Progress.DisplayPercentage = &display
	view.Progress.Remaining = p.Remaining
	view.Progress.IsOverfunded = p.IsOverfunded
	view.Progress.ProgressDefined = true
	return view
}

func (s *WishlistService) money(amount decimal.Decimal) string {
	label, err := funding.FormatMonetary(amount, s.currency, s.locale)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to format amount")
		return amount.String()
	}
	return label
}
