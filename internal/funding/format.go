package funding

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatMonetary renders amount with locale digit grouping, no fraction
// digits and the narrow currency symbol in front, e.g. "$ 5,000".
func FormatMonetary(amount decimal.Decimal, currencyCode, locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v %v", currency.NarrowSymbol(unit), number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(0))), nil
}
