package stocks

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// column names tried in order when a list file has a header row
var stockColumnNames = []string{"Stock", "Stocks", "Symbol", "Symbols", "Name", "Company"}

// ParseStockFormat extracts the bare ticker from exchange-prefixed entries
// like "NSE:CRAFTSMAN" or "NYSE:HCC". Entries without a prefix pass
// through upper-cased.
func ParseStockFormat(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, ":"); idx >= 0 {
		s = s[idx+1:]
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

// ReadStockList reads a user-supplied stock list from a .txt, .csv or
// .xlsx file. Text files accept comma-separated or line-per-symbol
// layouts; tabular files use the first recognized stock column, falling
// back to the first column. The result is deduplicated with empty entries
// dropped.
func ReadStockList(path string) ([]string, error) {
	var entries []string

	switch {
	case strings.HasSuffix(path, ".txt"):
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading stock list: %w", err)
		}
		text := strings.TrimSpace(string(content))
		if strings.Contains(text, ",") {
			entries = strings.Split(text, ",")
		} else {
			entries = strings.Split(text, "\n")
		}

	case strings.HasSuffix(path, ".csv"):
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading stock list: %w", err)
		}
		defer f.Close()
		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parsing stock list csv: %w", err)
		}
		entries = columnFromTable(records)

	case strings.HasSuffix(path, ".xlsx"), strings.HasSuffix(path, ".xls"):
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("opening stock list workbook: %w", err)
		}
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, fmt.Errorf("reading stock list workbook: %w", err)
		}
		entries = columnFromTable(rows)

	default:
		return nil, fmt.Errorf("unsupported stock list format %q, use .txt, .csv or .xlsx", path)
	}

	seen := make(map[string]bool, len(entries))
	stocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		symbol := ParseStockFormat(entry)
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		stocks = append(stocks, symbol)
	}
	return stocks, nil
}

// columnFromTable picks the stock column out of a header-plus-rows table.
func columnFromTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	col := 0
	hasHeader := false
	for _, name := range stockColumnNames {
		for i, header := range rows[0] {
			if strings.EqualFold(strings.TrimSpace(header), name) {
				col = i
				hasHeader = true
				break
			}
		}
		if hasHeader {
			break
		}
	}

	body := rows
	if hasHeader {
		body = rows[1:]
	}

	var values []string
	for _, row := range body {
		if col < len(row) {
			values = append(values, row[col])
		}
	}
	return values
}
