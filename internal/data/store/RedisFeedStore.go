package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/data/redisStore"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

const (
	feedSourcesKey  = "feed:sources"
	feedSourcePrefx = "feed:source:"
)

// RedisFeedStore keeps one JSON value per row keyed by its link, plus a set
// of links per source so a source can be listed without scanning. The link
// doubles as the dedup key.
type RedisFeedStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisFeedStore(ctx context.Context) *RedisFeedStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisFeedStore)
	if inner == nil {
		return nil
	}
	return &RedisFeedStore{
		store:  inner,
		logger: logger_i.NewLogger("FeedStore"),
	}
}

func sourceKey(source string) string {
	return feedSourcePrefx + source
}

func (s *RedisFeedStore) SaveRow(ctx context.Context, row feedModel.FeedRow) (bool, error) {
	log := s.logger.With("source", row.Source, "link", row.Link)

	found, err := s.store.Exists(ctx, row.Link)
	if err != nil {
		log.Error("Failed to check if row exists", "err", err)
		return false, err
	}
	if found {
		return false, nil
	}

	data, err := json.Marshal(row)
	if err != nil {
		return false, err
	}
	if err = s.store.Set(ctx, row.Link, data, config.RedisFeedStoreTTL); err != nil {
		log.Error("error saving row", "error:", err)
		return false, err
	}
	if err = s.store.SetAdd(ctx, sourceKey(row.Source), row.Link); err != nil {
		return false, err
	}
	if err = s.store.SetAdd(ctx, feedSourcesKey, row.Source); err != nil {
		return false, err
	}
	log.Debug("Saved row to Redis")
	return true, nil
}

func (s *RedisFeedStore) GetAllRows(ctx context.Context) ([]feedModel.FeedRow, error) {
	sources, err := s.Sources(ctx)
	if err != nil {
		return nil, err
	}
	var rows []feedModel.FeedRow
	for _, source := range sources {
		sourceRows, err := s.GetRowsBySource(ctx, source)
		if err != nil {
			return nil, err
		}
		rows = append(rows, sourceRows...)
	}
	return rows, nil
}

func (s *RedisFeedStore) GetRowsBySource(ctx context.Context, source string) ([]feedModel.FeedRow, error) {
	links, err := s.store.SetMembers(ctx, sourceKey(source))
	if err != nil {
		return nil, err
	}
	sort.Strings(links)

	rows := make([]feedModel.FeedRow, 0, len(links))
	for _, link := range links {
		val, err := s.store.Get(ctx, link)
		if s.store.IsNil(err) {
			// row expired out from under its index, heal the set
			_ = s.store.SetRemove(ctx, sourceKey(source), link)
			continue
		} else if err != nil {
			return nil, err
		}
		var row feedModel.FeedRow
		if err = json.Unmarshal([]byte(val), &row); err != nil {
			s.logger.Error("corrupt row in store", "link", link, "err", err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *RedisFeedStore) DeleteRow(ctx context.Context, link string) error {
	val, err := s.store.Get(ctx, link)
	if s.store.IsNil(err) {
		return nil
	} else if err != nil {
		return err
	}

	var row feedModel.FeedRow
	if err = json.Unmarshal([]byte(val), &row); err == nil && row.Source != "" {
		_ = s.store.SetRemove(ctx, sourceKey(row.Source), link)
	}
	if err = s.store.Del(ctx, link); err != nil {
		s.logger.Error("Error deleting row from Redis", "link", link, "err", err)
		return err
	}
	return nil
}

func (s *RedisFeedStore) Sources(ctx context.Context) ([]string, error) {
	sources, err := s.store.SetMembers(ctx, feedSourcesKey)
	if err != nil {
		return nil, err
	}
	sort.Strings(sources)
	return sources, nil
}

func TestFeedStore(store *redisStore.Store) *RedisFeedStore {
	return &RedisFeedStore{
		store:  store,
		logger: logger_i.NewLogger("test feed redis"),
	}
}
