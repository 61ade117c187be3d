package feeds

import (
	"time"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
)

// RetentionCutoff is the start of the oldest day still kept: today plus
// the previous FeedRetentionDays-1 days.
func RetentionCutoff(now time.Time) time.Time {
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return startOfDay.AddDate(0, 0, -(config.FeedRetentionDays - 1))
}

// WithinRetention reports whether a row survives the prune. Rows without
// any parseable date are kept, there is no safe way to age them out.
func WithinRetention(row feedModel.FeedRow, cutoff time.Time) bool {
	date, ok := RecordDate(row)
	if !ok {
		return true
	}
	y, m, d := date.Date()
	recordDay := time.Date(y, m, d, 0, 0, 0, 0, cutoff.Location())
	return !recordDay.Before(cutoff)
}
