package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
)

// RuntimeConfig holds the parts of the configuration that operators edit
// without a rebuild: feed URLs, the keyword taxonomy and per-symbol match
// exceptions. Loaded once, read-only afterwards.
type RuntimeConfig struct {
	RSSUrls       []string                   `json:"rss_urls"`
	ExternalFeeds map[string]string          `json:"external_feeds"`
	GeminiAPIKey  string                     `json:"gemini_api_key,omitempty"`
	GeminiPrompts map[string]string          `json:"gemini_prompts,omitempty"`
	Keywords      KeywordConfig              `json:"keywords"`
	Exceptions    map[string]SymbolException `json:"symbol_exceptions,omitempty"`
}

// KeywordConfig is the three level taxonomy: universal categories,
// per-sector category groups and filter categories. The filter group holds
// the reserved "negative" category.
type KeywordConfig struct {
	Universal map[string][]string            `json:"universal"`
	Sectors   map[string]map[string][]string `json:"sectors"`
	Filters   map[string][]string            `json:"filters"`
}

// SymbolException tweaks matching for symbols that collide with feed
// plumbing (e.g. a symbol that equals a source name).
type SymbolException struct {
	ExcludeFields []string `json:"exclude_fields,omitempty"`
	StripURLs     bool     `json:"strip_urls,omitempty"`
	SkipSource    string   `json:"skip_source,omitempty"`
}

var (
	runtimeCfg  *RuntimeConfig
	runtimeOnce sync.Once
)

// GetRuntimeConfig loads config.json on first use. A missing, unreadable
// or malformed file yields an empty config rather than an error - every
// consumer has a sensible zero-value behaviour. Malformed files are logged
// so an operator's taxonomy does not vanish silently.
func GetRuntimeConfig() *RuntimeConfig {
	runtimeOnce.Do(func() {
		runtimeCfg = loadRuntimeConfig(RuntimeConfigFile)
	})
	return runtimeCfg
}

func loadRuntimeConfig(path string) *RuntimeConfig {
	cfg := &RuntimeConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err = json.Unmarshal(data, cfg); err != nil {
		slog.Warn("malformed runtime config, ignoring file", "file", path, "error", err)
		return &RuntimeConfig{}
	}
	return cfg
}
