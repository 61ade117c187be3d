package feedModel

import (
	"context"
	"strings"
	"time"
)

// FeedRow is one entry from an RSS/Atom source. Some sources carry extra
// fields (NSE corporate filings have attachments and XBRL links); those stay
// empty for the rest.
type FeedRow struct {
	Source      string    `json:"source"`
	Published   string    `json:"published"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	FetchedAt   time.Time `json:"fetched_at"`

	Attachment string `json:"attachment,omitempty"`
	XBRLLink   string `json:"xbrl_link,omitempty"`
	Industry   string `json:"industry,omitempty"`
	ISIN       string `json:"isin,omitempty"`
}

// Blob concatenates every textual field of the row. This is the unit the
// matchers and the tagger search. exclude drops named fields, used by the
// per-symbol exception table.
func (r FeedRow) Blob(exclude ...string) string {
	skip := map[string]bool{}
	for _, f := range exclude {
		skip[f] = true
	}
	parts := make([]string, 0, 8)
	add := func(field, value string) {
		if value != "" && !skip[field] {
			parts = append(parts, value)
		}
	}
	add("Source", r.Source)
	add("Title", r.Title)
	add("Description", r.Description)
	add("Link", r.Link)
	add("Attachment", r.Attachment)
	add("XBRL_Link", r.XBRLLink)
	add("Industry", r.Industry)
	add("ISIN", r.ISIN)
	return strings.Join(parts, " ")
}

// StockRecord pairs a ticker symbol with the company name from the
// reference table, when the table knows the symbol.
type StockRecord struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name,omitempty"`
}

// StockMatches groups one stock's matched rows, one entry per list symbol
// in a batch search.
type StockMatches struct {
	Stock   StockRecord  `json:"stock"`
	Matches []MatchedRow `json:"matches"`
}

// MatchedRow is a feed row annotated by the matchers and the tagger.
type MatchedRow struct {
	FeedRow
	MatchedStock string `json:"matched_stock"`
	KWUniversal  string `json:"kw_universal"`
	KWSector     string `json:"kw_sector"`
	KWFilters    string `json:"kw_filters"`
	HasNegative  bool   `json:"has_negative"`
	RowBlob      string `json:"row_blob"`
}

// FeedStore is the cumulative row table: append-dedup by Link, prune by a
// rolling per-source retention window.
type FeedStore interface {
	SaveRow(ctx context.Context, row FeedRow) (added bool, err error)
	GetAllRows(ctx context.Context) ([]FeedRow, error)
	GetRowsBySource(ctx context.Context, source string) ([]FeedRow, error)
	DeleteRow(ctx context.Context, link string) error
	Sources(ctx context.Context) ([]string, error)
}
