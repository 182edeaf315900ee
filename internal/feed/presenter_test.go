package feed

import (
	"testing"
	"time"

	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresenter(t *testing.T) *Presenter {
	t.Helper()
	p, err := NewPresenter("en-US", "USD")
	require.NoError(t, err)
	return p
}

func TestClassify_Contribution(t *testing.T) {
	p := newTestPresenter(t)
	amount := decimal.NewFromInt(5000)

	c := p.Classify(models.Activity{
		Actor:   "Anna",
		Target:  `MacBook Pro 14"`,
		Payload: models.NewPayload(models.ActivityContributionMade, &amount, ""),
	})

	assert.Equal(t, IconHeart, c.Icon)
	assert.Equal(t, SeverityInfo, c.Severity)
	assert.Contains(t, c.Sentence, "5,000")
	assert.Contains(t, c.Sentence, `"MacBook Pro 14""`)
	assert.Equal(t, `Anna supported "MacBook Pro 14"" with 5,000 $`, c.Sentence)
}

func TestClassify_ContributionCurrencyOverride(t *testing.T) {
	p := newTestPresenter(t)

	c := p.Classify(models.Activity{
		Actor:   "Anna",
		Target:  "Camera",
		Payload: models.ContributionPayload{Amount: decimal.NewFromInt(1250), Currency: "EUR"},
	})
	assert.Equal(t, `Anna supported "Camera" with 1,250 €`, c.Sentence)

	c = p.Classify(models.Activity{
		Actor:   "Anna",
		Target:  "Camera",
		Payload: models.ContributionPayload{Amount: decimal.NewFromInt(1250), Currency: "???"},
	})
	assert.Equal(t, `Anna supported "Camera" with 1,250 $`, c.Sentence)
}

func TestClassify_Rows(t *testing.T) {
	p := newTestPresenter(t)

	tests := []struct {
		typ      models.ActivityType
		icon     Icon
		severity Severity
		sentence string
	}{
		{models.ActivityGoalReached, IconTarget, SeverityHighlight, `Max reached the goal for "Bike"!`},
		{models.ActivityWishlistCreated, IconPlus, SeverityInfo, `Max created a new wishlist "Bike"`},
		{models.ActivityItemAdded, IconGift, SeverityInfo, `Max added a new wish "Bike"`},
		{"unknown_event", IconCalendar, SeverityMuted, "Max performed an action"},
		{"", IconCalendar, SeverityMuted, "Max performed an action"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			c := p.Classify(models.Activity{
				Actor:   "Max",
				Target:  "Bike",
				Payload: models.NewPayload(tt.typ, nil, ""),
			})
			assert.Equal(t, tt.icon, c.Icon)
			assert.Equal(t, tt.severity, c.Severity)
			assert.Equal(t, tt.sentence, c.Sentence)
		})
	}
}

func TestClassify_NilPayloadFallsBack(t *testing.T) {
	p := newTestPresenter(t)

	assert.NotPanics(t, func() {
		c := p.Classify(models.Activity{Actor: "Max"})
		assert.Equal(t, IconCalendar, c.Icon)
	})
}

func TestPresentAll(t *testing.T) {
	p := newTestPresenter(t)
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	activities := []models.Activity{
		{Actor: "Anna", Target: "Bike", Timestamp: now.Add(-30 * time.Minute), Payload: models.GoalReachedPayload{}},
		{Actor: "Max", Target: "Books", Timestamp: now.Add(-5 * time.Hour), Payload: models.ItemAddedPayload{}},
		{Actor: "Kate", Timestamp: now.Add(-3 * 24 * time.Hour), Payload: models.UnknownPayload{Type: "wishlist_archived"}},
	}

	entries := p.PresentAll(activities, now)
	require.Len(t, entries, 3)

	assert.Equal(t, models.ActivityGoalReached, entries[0].Type)
	assert.Equal(t, "just now", entries[0].TimeLabel)
	assert.Equal(t, "5h ago", entries[1].TimeLabel)
	assert.Equal(t, models.ActivityType("wishlist_archived"), entries[2].Type)
	assert.Equal(t, IconCalendar, entries[2].Icon)
	assert.Equal(t, "3d ago", entries[2].TimeLabel)
}

func TestNewPresenter_InvalidInput(t *testing.T) {
	_, err := NewPresenter("??", "USD")
	assert.Error(t, err)

	_, err = NewPresenter("en-US", "dollars")
	assert.Error(t, err)
}
