package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/customHttpClient"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

// headers the NSE endpoints expect; without the referer the CDN returns 403
var nseHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":          "application/rss+xml,application/xml,text/xml,*/*",
	"Accept-Language": "en-US,en;q=0.9",
	"Referer":         "https://www.nseindia.com/",
}

var externalHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept-Language": "en-US,en;q=0.9",
}

// SourceStat is the per-source outcome of one refresh round.
type SourceStat struct {
	Source  string
	Entries int
	Err     error
}

// Fetcher pulls RSS/Atom feeds and converts their entries to feed rows.
// NSE feeds go through a cookie session primed against the NSE homepage;
// external feeds (BSE, Moneycontrol, ...) are plain GETs.
type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
	logger *logger_i.Logger
	now    func() time.Time
}

func NewFetcher() *Fetcher {
	client := customHttpClient.New(config.FeedFetchTimeout)
	if jar, err := cookiejar.New(nil); err == nil {
		client.Jar = jar
	}
	return &Fetcher{
		client: client,
		parser: gofeed.NewParser(),
		logger: logger_i.NewLogger("FeedFetcher"),
		now:    time.Now,
	}
}

// SourceName derives the feed's source label from its URL, the path
// basename without the .xml suffix.
func SourceName(feedURL string) string {
	parsed, err := url.Parse(feedURL)
	if err != nil {
		return feedURL
	}
	return strings.TrimSuffix(path.Base(parsed.Path), ".xml")
}

// FetchNSE fetches the configured NSE feeds after priming the session.
func (f *Fetcher) FetchNSE(ctx context.Context, urls []string) ([]feedModel.FeedRow, []SourceStat) {
	if len(urls) == 0 {
		return nil, nil
	}
	f.primeSession(ctx)

	var rows []feedModel.FeedRow
	var stats []SourceStat
	for _, feedURL := range urls {
		source := SourceName(feedURL)
		items, err := f.fetchOne(ctx, feedURL, nseHeaders)
		if err != nil {
			f.logger.Warn("feed fetch failed", "source", source, "error", err)
			stats = append(stats, SourceStat{Source: source, Err: err})
			continue
		}
		rows = append(rows, f.toRows(source, items, false)...)
		stats = append(stats, SourceStat{Source: source, Entries: len(items)})
	}
	return rows, stats
}

// FetchExternal fetches the named external feeds. Entry fields are trimmed,
// some of these feeds pad titles with whitespace.
func (f *Fetcher) FetchExternal(ctx context.Context, sources map[string]string) ([]feedModel.FeedRow, []SourceStat) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []feedModel.FeedRow
	var stats []SourceStat
	for _, source := range names {
		items, err := f.fetchOne(ctx, sources[source], externalHeaders)
		if err != nil {
			f.logger.Warn("feed fetch failed", "source", source, "error", err)
			stats = append(stats, SourceStat{Source: source, Err: err})
			continue
		}
		rows = append(rows, f.toRows(source, items, true)...)
		stats = append(stats, SourceStat{Source: source, Entries: len(items)})
	}
	return rows, stats
}

func (f *Fetcher) primeSession(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.NSEBaseURL, nil)
	if err != nil {
		return
	}
	for k, v := range nseHeaders {
		req.Header.Set(k, v)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("nse session priming failed", "error", err)
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func (f *Fetcher) fetchOne(ctx context.Context, feedURL string, headers map[string]string) ([]*gofeed.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return feed.Items, nil
}

func (f *Fetcher) toRows(source string, items []*gofeed.Item, trim bool) []feedModel.FeedRow {
	fetchedAt := f.now().UTC()
	rows := make([]feedModel.FeedRow, 0, len(items))
	for _, item := range items {
		title, link, description := item.Title, item.Link, item.Description
		if trim {
			title = strings.TrimSpace(title)
			link = strings.TrimSpace(link)
			description = strings.TrimSpace(description)
		}
		row := feedModel.FeedRow{
			Source:      source,
			Published:   item.Published,
			Title:       title,
			Link:        link,
			Description: description,
			FetchedAt:   fetchedAt,
		}
		applyFilingFields(item, &row)
		rows = append(rows, row)
	}
	return rows
}

// applyFilingFields pulls the non-standard entry elements some sources
// carry. The NSE corporate filing feeds attach the filing document, its
// XBRL rendition, the company ISIN and the industry as custom elements.
func applyFilingFields(item *gofeed.Item, row *feedModel.FeedRow) {
	assign := func(name, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		set := func(dst *string) {
			if *dst == "" {
				*dst = value
			}
		}
		switch filingFieldKey(name) {
		case "attachment", "attachmentfile", "attchmntfile":
			set(&row.Attachment)
		case "xbrl", "xbrllink", "xbrlfile":
			set(&row.XBRLLink)
		case "isin":
			set(&row.ISIN)
		case "industry":
			set(&row.Industry)
		}
	}

	for name, value := range item.Custom {
		assign(name, value)
	}
	// namespaced variants land in the extension map instead
	for _, ns := range item.Extensions {
		for name, exts := range ns {
			for _, e := range exts {
				assign(name, e.Value)
			}
		}
	}
	if row.Attachment == "" && len(item.Enclosures) > 0 && item.Enclosures[0] != nil {
		row.Attachment = item.Enclosures[0].URL
	}
}

// filingFieldKey folds an element name down for matching: namespace prefix
// dropped, lower-cased, separators removed.
func filingFieldKey(name string) string {
	if idx := strings.LastIndex(name, ":"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return -1
		}
		return r
	}, name)
}
