package stocks

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadSymbolMap reads the stock reference workbook and returns the ticker
// symbol to company name mapping. Symbols come from the first column and
// company names from the fourth; the first row is the header. Rows missing
// either value are skipped.
func LoadSymbolMap(path string) (map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading reference workbook: %w", err)
	}

	symbolToCompany := make(map[string]string)
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(row[0]))
		company := strings.TrimSpace(row[3])
		if symbol != "" && company != "" {
			symbolToCompany[symbol] = company
		}
	}
	return symbolToCompany, nil
}
