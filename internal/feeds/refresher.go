package feeds

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

// Refresher runs one refresh round: fetch every configured feed, append
// new rows to the store (dedup by link) and prune rows that fell out of
// the retention window.
type Refresher struct {
	fetcher *Fetcher
	store   feedModel.FeedStore
	logger  *logger_i.Logger
	now     func() time.Time
}

func NewRefresher(fetcher *Fetcher, store feedModel.FeedStore) *Refresher {
	return &Refresher{
		fetcher: fetcher,
		store:   store,
		logger:  logger_i.NewLogger("FeedRefresher"),
		now:     time.Now,
	}
}

func (r *Refresher) RefreshAll(ctx context.Context) (added, pruned int, err error) {
	cfg := config.GetRuntimeConfig()

	nseRows, nseStats := r.fetcher.FetchNSE(ctx, cfg.RSSUrls)
	extRows, extStats := r.fetcher.FetchExternal(ctx, cfg.ExternalFeeds)

	for _, stat := range append(nseStats, extStats...) {
		if stat.Err != nil {
			r.logger.Warn("source returned no entries", "source", stat.Source, "error", stat.Err)
		} else {
			r.logger.Info("source fetched", "source", stat.Source, "entries", stat.Entries)
		}
	}

	for _, row := range append(nseRows, extRows...) {
		saved, saveErr := r.store.SaveRow(ctx, row)
		if saveErr != nil {
			return added, pruned, saveErr
		}
		if saved {
			added++
		}
	}

	pruned, err = r.Prune(ctx)
	r.logger.Info("feed refresh complete", "added", added, "pruned", pruned)
	return added, pruned, err
}

// Prune deletes rows older than the retention cutoff. Undated rows stay.
func (r *Refresher) Prune(ctx context.Context) (int, error) {
	cutoff := RetentionCutoff(r.now())

	rows, err := r.store.GetAllRows(ctx)
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, row := range rows {
		if WithinRetention(row, cutoff) {
			continue
		}
		if err := r.store.DeleteRow(ctx, row.Link); err != nil {
			return pruned, err
		}
		pruned++
	}
	return pruned, nil
}

// Scheduler triggers a task on the configured cron spec, used to keep the
// feed store current in the background.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(spec string, task func()) (*Scheduler, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, task); err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() { s.cron.Start() }
func (s *Scheduler) Stop()  { s.cron.Stop() }
