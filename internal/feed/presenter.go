// Package feed turns activity records into display-ready feed entries.
package feed

import (
	"fmt"
	"time"

	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Icon string

const (
	IconHeart    Icon = "heart"
	IconTarget   Icon = "target"
	IconPlus     Icon = "plus"
	IconGift     Icon = "gift"
	IconCalendar Icon = "calendar"
)

type Severity string

const (
	SeverityHighlight Severity = "highlight"
	SeverityInfo      Severity = "info"
	SeverityMuted     Severity = "muted"
)

// Classification is the display row for one activity.
type Classification struct {
	Icon     Icon     `json:"icon"`
	Sentence string   `json:"sentence"`
	Severity Severity `json:"severity"`
}

// Entry is a fully rendered feed line.
type Entry struct {
	ID        string              `json:"id"`
	Type      models.ActivityType `json:"type"`
	Icon      Icon                `json:"icon"`
	Sentence  string              `json:"sentence"`
	Severity  Severity            `json:"severity"`
	TimeLabel string              `json:"time_label"`
	Timestamp time.Time           `json:"timestamp"`
}

// Presenter renders activities for one locale. It holds no mutable state.
type Presenter struct {
	locale   language.Tag
	printer  *message.Printer
	currency currency.Unit
}

// NewPresenter builds a presenter for a BCP 47 locale and a default
// ISO 4217 currency used when a contribution does not name its own.
func NewPresenter(locale, currencyCode string) (*Presenter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}
	return &Presenter{
		locale:   tag,
		printer:  message.NewPrinter(tag),
		currency: unit,
	}, nil
}

// Locale returns the presenter's language tag.
func (p *Presenter) Locale() language.Tag {
	return p.locale
}

// Classify maps an activity to its icon, sentence and severity. Payloads
// this build does not know fall back to the calendar row.
func (p *Presenter) Classify(a models.Activity) Classification {
	switch payload := a.Payload.(type) {
	case models.ContributionPayload:
		return Classification{
			Icon:     IconHeart,
			Sentence: fmt.Sprintf("%s supported %s with %s %s", a.Actor, quote(a.Target), p.amount(payload.Amount), p.symbol(payload.Currency)),
			Severity: SeverityInfo,
		}
	case models.GoalReachedPayload:
		return Classification{
			Icon:     IconTarget,
			Sentence: fmt.Sprintf("%s reached the goal for %s!", a.Actor, quote(a.Target)),
			Severity: SeverityHighlight,
		}
	case models.WishlistCreatedPayload:
		return Classification{
			Icon:     IconPlus,
			Sentence: fmt.Sprintf("%s created a new wishlist %s", a.Actor, quote(a.Target)),
			Severity: SeverityInfo,
		}
	case models.ItemAddedPayload:
		return Classification{
			Icon:     IconGift,
			Sentence: fmt.Sprintf("%s added a new wish %s", a.Actor, quote(a.Target)),
			Severity: SeverityInfo,
		}
	default:
		return Classification{
			Icon:     IconCalendar,
			Sentence: fmt.Sprintf("%s performed an action", a.Actor),
			Severity: SeverityMuted,
		}
	}
}

// RelativeTime labels timestamp relative to now in the presenter's locale.
func (p *Presenter) RelativeTime(timestamp, now time.Time) string {
	return RelativeTime(timestamp, now, p.locale)
}

// Present renders a single activity.
func (p *Presenter) Present(a models.Activity, now time.Time) Entry {
	c := p.Classify(a)
	return Entry{
		ID:        a.ID.Hex(),
		Type:      a.Type(),
		Icon:      c.Icon,
		Sentence:  c.Sentence,
		Severity:  c.Severity,
		TimeLabel: p.RelativeTime(a.Timestamp, now),
		Timestamp: a.Timestamp,
	}
}

// PresentAll renders activities in the given order against one clock reading.
func (p *Presenter) PresentAll(activities []models.Activity, now time.Time) []Entry {
	entries := make([]Entry, 0, len(activities))
	for _, a := range activities {
		entries = append(entries, p.Present(a, now))
	}
	return entries
}

func (p *Presenter) amount(d decimal.Decimal) string {
	return p.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}

// symbol resolves a contribution's currency, falling back to the default
// for empty or unknown codes.
func (p *Presenter) symbol(code string) string {
	unit := p.currency
	if code != "" {
		if u, err := currency.ParseISO(code); err == nil {
			unit = u
		}
	}
	return p.printer.Sprint(currency.NarrowSymbol(unit))
}

// quote wraps free text in double quotes without escaping it.
func quote(s string) string {
	return `"` + s + `"`
}
