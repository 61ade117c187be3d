package stocks

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

// LookupCache serves the symbol-to-company reference table, re-reading the
// workbook only when its modification time changes. Reload happens under
// the lock, so readers never see a half-built table.
type LookupCache struct {
	mu      sync.Mutex
	path    string
	modTime time.Time
	table   map[string]string
	logger  *logger_i.Logger
}

func NewLookupCache(path string) *LookupCache {
	return &LookupCache{
		path:   path,
		logger: logger_i.NewLogger("StockLookup"),
	}
}

// SymbolMap returns the current reference table. A missing workbook is not
// an error: matching degrades to symbol-only and the miss is logged.
func (c *LookupCache) SymbolMap() (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger.Warn("stock reference workbook not found", "path", c.path)
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("checking reference workbook: %w", err)
	}

	if c.table == nil || !info.ModTime().Equal(c.modTime) {
		table, err := LoadSymbolMap(c.path)
		if err != nil {
			return nil, err
		}
		c.table = table
		c.modTime = info.ModTime()
		c.logger.Info("loaded stock reference table", "symbols", len(table), "path", c.path)
	}
	return c.table, nil
}
