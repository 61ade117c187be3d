package matching

import (
	"regexp"
	"strings"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// MatchSymbol reports whether a ticker symbol appears in a text blob.
// Symbols of three characters or fewer only match as whole words, so "LT"
// never matches inside "KELLTON" or "LIMITED". Longer symbols match as
// plain substrings.
func MatchSymbol(symbol, blob string) bool {
	if symbol == "" || blob == "" {
		return false
	}
	symbol = strings.ToUpper(symbol)
	upper := strings.ToUpper(blob)

	if len(symbol) <= 3 {
		return wholeWordIn(symbol, upper)
	}
	return strings.Contains(upper, symbol)
}

// MatchRow decides whether a feed row refers to the given stock: a symbol
// hit in the row blob, or a fuzzy company-name hit when the reference table
// maps the symbol to a name. exc applies the per-symbol exception table:
// skip rows from a named source, drop fields from the blob, and strip URL
// substrings before matching.
func MatchRow(row feedModel.FeedRow, symbol, companyName string, exc *config.SymbolException) bool {
	if exc != nil && exc.SkipSource != "" && strings.EqualFold(row.Source, exc.SkipSource) {
		return false
	}

	var blob string
	if exc != nil {
		blob = row.Blob(exc.ExcludeFields...)
	} else {
		blob = row.Blob()
	}
	if exc != nil && exc.StripURLs {
		blob = urlPattern.ReplaceAllString(blob, " ")
	}

	if MatchSymbol(symbol, blob) {
		return true
	}
	return companyName != "" && MatchCompanyName(companyName, blob)
}
