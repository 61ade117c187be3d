package store

import (
	"context"
	"sort"
	"sync"

	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
)

// InMemoryFeedStore is the fallback when Redis is offline. Rows are keyed by
// link, same dedup contract as the Redis store.
type InMemoryFeedStore struct {
	rowMutex *sync.RWMutex
	rowMap   map[string]feedModel.FeedRow
}

func InitInMemoryFeedStore() *InMemoryFeedStore {
	return &InMemoryFeedStore{
		rowMutex: new(sync.RWMutex),
		rowMap:   make(map[string]feedModel.FeedRow),
	}
}

func (store *InMemoryFeedStore) SaveRow(ctx context.Context, row feedModel.FeedRow) (bool, error) {
	store.rowMutex.Lock()
	defer store.rowMutex.Unlock()
	if _, found := store.rowMap[row.Link]; found {
		return false, nil
	}
	store.rowMap[row.Link] = row
	return true, nil
}

func (store *InMemoryFeedStore) GetAllRows(ctx context.Context) ([]feedModel.FeedRow, error) {
	store.rowMutex.RLock()
	defer store.rowMutex.RUnlock()
	links := make([]string, 0, len(store.rowMap))
	for link := range store.rowMap {
		links = append(links, link)
	}
	sort.Strings(links)

	rows := make([]feedModel.FeedRow, 0, len(links))
	for _, link := range links {
		rows = append(rows, store.rowMap[link])
	}
	return rows, nil
}

func (store *InMemoryFeedStore) GetRowsBySource(ctx context.Context, source string) ([]feedModel.FeedRow, error) {
	all, _ := store.GetAllRows(ctx)
	rows := make([]feedModel.FeedRow, 0)
	for _, row := range all {
		if row.Source == source {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (store *InMemoryFeedStore) DeleteRow(ctx context.Context, link string) error {
	store.rowMutex.Lock()
	defer store.rowMutex.Unlock()
	delete(store.rowMap, link)
	return nil
}

func (store *InMemoryFeedStore) Sources(ctx context.Context) ([]string, error) {
	store.rowMutex.RLock()
	defer store.rowMutex.RUnlock()
	seen := make(map[string]bool)
	for _, row := range store.rowMap {
		seen[row.Source] = true
	}
	sources := make([]string, 0, len(seen))
	for source := range seen {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources, nil
}
