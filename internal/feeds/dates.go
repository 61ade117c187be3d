package feeds

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
)

// date shapes that show up in feed descriptions when the Published field
// is empty or unparseable
var descriptionDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4}`),
	regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{2,4}`),
}

// RecordDate resolves the best-effort date of a feed row: the Published
// field when it parses, otherwise the first date-looking fragment of the
// description. ok is false when neither yields a date.
func RecordDate(row feedModel.FeedRow) (date time.Time, ok bool) {
	if published := strings.TrimSpace(row.Published); published != "" {
		if t, err := dateparse.ParseAny(published); err == nil {
			return t, true
		}
	}

	if row.Description == "" {
		return time.Time{}, false
	}
	for _, pattern := range descriptionDatePatterns {
		fragment := pattern.FindString(row.Description)
		if fragment == "" {
			continue
		}
		if t, err := dateparse.ParseAny(fragment); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
