package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Channel</title>
    <item>
      <title>  Craftsman wins large order  </title>
      <link>https://example.com/filings/1</link>
      <description> Order win disclosure </description>
      <pubDate>Mon, 13 May 2024 10:00:00 +0530</pubDate>
    </item>
    <item>
      <title>Second announcement</title>
      <link>https://example.com/filings/2</link>
      <description>Another disclosure</description>
    </item>
  </channel>
</rss>`

func TestSourceName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://nsearchives.nseindia.com/content/RSS/Online_announcements.xml", "Online_announcements"},
		{"https://example.com/feeds/board_meetings.xml", "board_meetings"},
		{"https://example.com/rss", "rss"},
	}
	for _, tt := range tests {
		if got := SourceName(tt.url); got != tt.want {
			t.Errorf("SourceName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestFetchExternal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	fetcher := NewFetcher()
	rows, stats := fetcher.FetchExternal(context.Background(), map[string]string{"TestFeed": server.URL})

	if len(stats) != 1 || stats[0].Err != nil {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats[0].Entries != 2 {
		t.Errorf("stats entries = %d, want 2", stats[0].Entries)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Source != "TestFeed" {
		t.Errorf("Source = %q", first.Source)
	}
	// external feed fields are trimmed
	if first.Title != "Craftsman wins large order" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Link != "https://example.com/filings/1" {
		t.Errorf("Link = %q", first.Link)
	}
	if first.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

const filingRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Corporate Filings</title>
    <item>
      <title>Infosys Limited - Outcome of Board Meeting</title>
      <link>https://nse.example/filings/10</link>
      <description>Board meeting outcome</description>
      <attchmntFile>https://nsearchives.example/annc/infy_outcome.pdf</attchmntFile>
      <xbrl>https://nsearchives.example/annc/infy_outcome.xml</xbrl>
      <isin>INE009A01021</isin>
      <industry>IT - Software</industry>
    </item>
    <item>
      <title>Plain announcement with enclosure</title>
      <link>https://nse.example/filings/11</link>
      <description>No custom elements</description>
      <enclosure url="https://nse.example/docs/11.pdf" length="1024" type="application/pdf"/>
    </item>
  </channel>
</rss>`

func TestFetchExternal_FilingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(filingRSS))
	}))
	defer server.Close()

	fetcher := NewFetcher()
	rows, _ := fetcher.FetchExternal(context.Background(), map[string]string{"Filings": server.URL})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Attachment != "https://nsearchives.example/annc/infy_outcome.pdf" {
		t.Errorf("Attachment = %q", first.Attachment)
	}
	if first.XBRLLink != "https://nsearchives.example/annc/infy_outcome.xml" {
		t.Errorf("XBRLLink = %q", first.XBRLLink)
	}
	if first.ISIN != "INE009A01021" {
		t.Errorf("ISIN = %q", first.ISIN)
	}
	if first.Industry != "IT - Software" {
		t.Errorf("Industry = %q", first.Industry)
	}

	// without custom elements the enclosure supplies the attachment
	second := rows[1]
	if second.Attachment != "https://nse.example/docs/11.pdf" {
		t.Errorf("Attachment = %q", second.Attachment)
	}
	if second.ISIN != "" || second.XBRLLink != "" {
		t.Errorf("unexpected filing fields on plain entry: %+v", second)
	}
}

func TestFilingFieldKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"attchmntFile", "attchmntfile"},
		{"nse:XBRL_Link", "xbrllink"},
		{"Attachment-File", "attachmentfile"},
		{"isin", "isin"},
	}
	for _, tt := range tests {
		if got := filingFieldKey(tt.name); got != tt.want {
			t.Errorf("filingFieldKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFetchExternal_SourceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	fetcher := NewFetcher()
	rows, stats := fetcher.FetchExternal(context.Background(), map[string]string{"Broken": server.URL})

	if len(rows) != 0 {
		t.Errorf("expected no rows from a failing source, got %d", len(rows))
	}
	if len(stats) != 1 || stats[0].Err == nil {
		t.Fatalf("expected an error stat, got %+v", stats)
	}
}

type fakeFeedStore struct {
	rows map[string]feedModel.FeedRow
}

func newFakeFeedStore(rows ...feedModel.FeedRow) *fakeFeedStore {
	s := &fakeFeedStore{rows: make(map[string]feedModel.FeedRow)}
	for _, r := range rows {
		s.rows[r.Link] = r
	}
	return s
}

func (s *fakeFeedStore) SaveRow(_ context.Context, row feedModel.FeedRow) (bool, error) {
	if _, exists := s.rows[row.Link]; exists {
		return false, nil
	}
	s.rows[row.Link] = row
	return true, nil
}

func (s *fakeFeedStore) GetAllRows(_ context.Context) ([]feedModel.FeedRow, error) {
	out := make([]feedModel.FeedRow, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeFeedStore) GetRowsBySource(_ context.Context, source string) ([]feedModel.FeedRow, error) {
	var out []feedModel.FeedRow
	for _, r := range s.rows {
		if r.Source == source {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeFeedStore) DeleteRow(_ context.Context, link string) error {
	delete(s.rows, link)
	return nil
}

func (s *fakeFeedStore) Sources(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, r := range s.rows {
		if !seen[r.Source] {
			seen[r.Source] = true
			out = append(out, r.Source)
		}
	}
	return out, nil
}

func TestRefresher_Prune(t *testing.T) {
	store := newFakeFeedStore(
		feedModel.FeedRow{Source: "A", Link: "l1", Published: "Fri, 28 Aug 2026 09:00:00 +0530"},
		feedModel.FeedRow{Source: "A", Link: "l2", Published: "Sat, 01 Aug 2026 09:00:00 +0530"},
		feedModel.FeedRow{Source: "B", Link: "l3", Published: "no date here"},
	)

	r := NewRefresher(NewFetcher(), store)
	r.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }

	pruned, err := r.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}
	if _, exists := store.rows["l2"]; exists {
		t.Error("stale row survived the prune")
	}
	if _, exists := store.rows["l1"]; !exists {
		t.Error("fresh row was pruned")
	}
	if _, exists := store.rows["l3"]; !exists {
		t.Error("undated row was pruned")
	}
}
