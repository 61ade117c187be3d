package search

import (
	"context"
	"errors"
	"time"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
	"github.com/akolanti/CatalystAPI/internal/matching"
	"github.com/akolanti/CatalystAPI/internal/metrics"
	"github.com/akolanti/CatalystAPI/internal/stocks"
	"github.com/akolanti/CatalystAPI/internal/tagging"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

// Service answers stock queries against the stored feed rows: resolve the
// symbol to a company name through the reference table, match every row by
// symbol or fuzzy company name, then annotate the hits with keyword tags.
type Service struct {
	feedStore feedModel.FeedStore
	lookup    *stocks.LookupCache
	taxonomy  *tagging.Taxonomy
	logger    *logger_i.Logger
}

func NewService(feedStore feedModel.FeedStore, lookup *stocks.LookupCache) *Service {
	return &Service{
		feedStore: feedStore,
		lookup:    lookup,
		taxonomy:  tagging.Build(config.GetRuntimeConfig().Keywords),
		logger:    logger_i.NewLogger("Search Service"),
	}
}

func (s *Service) Search(ctx context.Context, stockQuery string) ([]feedModel.MatchedRow, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("feed_search", time.Since(start)) }()

	symbol := stocks.ParseStockFormat(stockQuery)
	if symbol == "" {
		return nil, errors.New("empty stock symbol")
	}

	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "symbol", symbol)

	// symbol-only matching still works when the reference table is absent
	companyName := ""
	if symbolMap, err := s.lookup.SymbolMap(); err != nil {
		log.Warn("reference table unavailable, matching on symbol only", "error", err)
	} else {
		companyName = symbolMap[symbol]
	}

	rows, err := s.feedStore.GetAllRows(ctx)
	if err != nil {
		log.Error("failed to read feed rows", "error", err)
		return nil, err
	}

	matches := s.matchRows(rows, symbol, companyName)
	log.Info("search complete", "rows", len(rows), "matches", len(matches))
	return matches, nil
}

// SearchList answers a whole user-supplied stock list in one pass over the
// stored rows: every symbol in the list file gets its own result entry,
// empty when nothing matched.
func (s *Service) SearchList(ctx context.Context, path string) ([]feedModel.StockMatches, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("feed_search_list", time.Since(start)) }()

	symbols, err := stocks.ReadStockList(path)
	if err != nil {
		return nil, err
	}
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "list", path)

	companyNames := map[string]string{}
	if symbolMap, err := s.lookup.SymbolMap(); err != nil {
		log.Warn("reference table unavailable, matching on symbols only", "error", err)
	} else {
		companyNames = symbolMap
	}

	rows, err := s.feedStore.GetAllRows(ctx)
	if err != nil {
		log.Error("failed to read feed rows", "error", err)
		return nil, err
	}

	results := make([]feedModel.StockMatches, 0, len(symbols))
	total := 0
	for _, symbol := range symbols {
		matches := s.matchRows(rows, symbol, companyNames[symbol])
		total += len(matches)
		results = append(results, feedModel.StockMatches{
			Stock:   feedModel.StockRecord{Symbol: symbol, CompanyName: companyNames[symbol]},
			Matches: matches,
		})
	}
	log.Info("list search complete", "stocks", len(symbols), "rows", len(rows), "matches", total)
	return results, nil
}

func (s *Service) matchRows(rows []feedModel.FeedRow, symbol, companyName string) []feedModel.MatchedRow {
	var exc *config.SymbolException
	if e, ok := config.GetRuntimeConfig().Exceptions[symbol]; ok {
		exc = &e
	}

	matches := make([]feedModel.MatchedRow, 0)
	for _, row := range rows {
		if !matching.MatchRow(row, symbol, companyName, exc) {
			continue
		}
		blob := row.Blob()
		tags := s.taxonomy.Tag(blob, row.Industry)
		matches = append(matches, feedModel.MatchedRow{
			FeedRow:      row,
			MatchedStock: symbol,
			KWUniversal:  tags.Universal,
			KWSector:     tags.Sector,
			KWFilters:    tags.Filters,
			HasNegative:  tags.HasNegative,
			RowBlob:      blob,
		})
	}
	return matches
}
