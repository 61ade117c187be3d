package store_test

import (
	"context"
	"testing"

	"github.com/akolanti/CatalystAPI/internal/data/redisStore"
	"github.com/akolanti/CatalystAPI/internal/data/store"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newFeedStore(t *testing.T) (*store.RedisFeedStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return store.TestFeedStore(redisStore.NewTestStore(client)), mr
}

func sampleRow(source, link, title string) feedModel.FeedRow {
	return feedModel.FeedRow{
		Source:      source,
		Published:   "Fri, 28 Aug 2026 10:00:00 +0530",
		Title:       title,
		Link:        link,
		Description: "quarterly results announcement",
	}
}

func TestRedisFeedStore_SaveDedup(t *testing.T) {
	feedStore, _ := newFeedStore(t)
	ctx := context.Background()
	row := sampleRow("Announcements", "https://nse.example/a1", "Board Meeting")

	added, err := feedStore.SaveRow(ctx, row)
	if err != nil {
		t.Fatalf("SaveRow failed: %v", err)
	}
	if !added {
		t.Error("first save should report added=true")
	}

	// same link again must be a no-op
	added, err = feedStore.SaveRow(ctx, row)
	if err != nil {
		t.Fatalf("second SaveRow failed: %v", err)
	}
	if added {
		t.Error("duplicate link should report added=false")
	}

	rows, err := feedStore.GetAllRows(ctx)
	if err != nil {
		t.Fatalf("GetAllRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Title != "Board Meeting" {
		t.Errorf("Title = %q", rows[0].Title)
	}
}

func TestRedisFeedStore_SourceIndex(t *testing.T) {
	feedStore, _ := newFeedStore(t)
	ctx := context.Background()

	rows := []feedModel.FeedRow{
		sampleRow("Announcements", "https://nse.example/a1", "Order win"),
		sampleRow("Announcements", "https://nse.example/a2", "Capex update"),
		sampleRow("Board_Meetings", "https://nse.example/b1", "Meeting notice"),
	}
	for _, row := range rows {
		if _, err := feedStore.SaveRow(ctx, row); err != nil {
			t.Fatalf("SaveRow(%s) failed: %v", row.Link, err)
		}
	}

	sources, err := feedStore.Sources(ctx)
	if err != nil {
		t.Fatalf("Sources failed: %v", err)
	}
	if len(sources) != 2 || sources[0] != "Announcements" || sources[1] != "Board_Meetings" {
		t.Errorf("sources = %v", sources)
	}

	announcements, err := feedStore.GetRowsBySource(ctx, "Announcements")
	if err != nil {
		t.Fatalf("GetRowsBySource failed: %v", err)
	}
	if len(announcements) != 2 {
		t.Errorf("Announcements rows = %d, want 2", len(announcements))
	}

	all, err := feedStore.GetAllRows(ctx)
	if err != nil {
		t.Fatalf("GetAllRows failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all rows = %d, want 3", len(all))
	}
}

func TestRedisFeedStore_DeleteRow(t *testing.T) {
	feedStore, mr := newFeedStore(t)
	ctx := context.Background()
	row := sampleRow("Announcements", "https://nse.example/a1", "Old news")

	if _, err := feedStore.SaveRow(ctx, row); err != nil {
		t.Fatalf("SaveRow failed: %v", err)
	}
	if err := feedStore.DeleteRow(ctx, row.Link); err != nil {
		t.Fatalf("DeleteRow failed: %v", err)
	}

	if mr.Exists(row.Link) {
		t.Error("row still exists in Redis after delete")
	}
	rows, err := feedStore.GetRowsBySource(ctx, "Announcements")
	if err != nil {
		t.Fatalf("GetRowsBySource failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d after delete, want 0", len(rows))
	}

	// deleting a link that was never stored is not an error
	if err := feedStore.DeleteRow(ctx, "https://nse.example/ghost"); err != nil {
		t.Errorf("DeleteRow on missing link: %v", err)
	}
}

func TestInMemoryFeedStore_SameContract(t *testing.T) {
	var feedStore feedModel.FeedStore = store.InitInMemoryFeedStore()
	ctx := context.Background()

	added, err := feedStore.SaveRow(ctx, sampleRow("Insider_Trading", "https://nse.example/i1", "Disclosure"))
	if err != nil || !added {
		t.Fatalf("SaveRow = (%v, %v), want (true, nil)", added, err)
	}
	added, _ = feedStore.SaveRow(ctx, sampleRow("Insider_Trading", "https://nse.example/i1", "Disclosure"))
	if added {
		t.Error("duplicate link should report added=false")
	}

	sources, _ := feedStore.Sources(ctx)
	if len(sources) != 1 || sources[0] != "Insider_Trading" {
		t.Errorf("sources = %v", sources)
	}

	if err := feedStore.DeleteRow(ctx, "https://nse.example/i1"); err != nil {
		t.Fatalf("DeleteRow failed: %v", err)
	}
	rows, _ := feedStore.GetAllRows(ctx)
	if len(rows) != 0 {
		t.Errorf("rows = %d after delete, want 0", len(rows))
	}
}
