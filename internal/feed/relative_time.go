package feed

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

const msPerHour = int64(time.Hour / time.Millisecond)

// isoLayouts are tried in order by ParseTimestamp. Zone-less values are
// read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp reads an ISO-8601 instant.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// RelativeTime labels how long ago timestamp happened as seen from now.
// Hours and days are floored; anything a week or older is shown as a
// calendar date in now's location. Timestamps after now read "just now".
func RelativeTime(timestamp, now time.Time, locale language.Tag) string {
	diffMs := now.Sub(timestamp).Milliseconds()
	diffHours := floorDiv(diffMs, msPerHour)
	diffDays := floorDiv(diffHours, 24)

	switch {
	case diffHours < 1:
		return "just now"
	case diffHours < 24:
		return fmt.Sprintf("%dh ago", diffHours)
	case diffDays < 7:
		return fmt.Sprintf("%dd ago", diffDays)
	}
	return timestamp.In(now.Location()).Format(dateLayout(locale))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// dateLayout picks the short numeric date form a browser would use for the locale.
func dateLayout(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		if region, _ := tag.Region(); region.String() == "US" {
			return "1/2/2006"
		}
		return "02/01/2006"
	case "ru", "uk", "be", "de", "pl", "cs", "fi", "nb", "tr":
		return "02.01.2006"
	case "fr", "es", "it", "pt":
		return "02/01/2006"
	case "ja", "zh":
		return "2006/1/2"
	}
	return "2006-01-02"
}
