package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadRuntimeConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"rss_urls": ["https://nse.example/announcements.xml"],
		"keywords": {"universal": {"Orders": ["order win"]}}
	}`)

	cfg := loadRuntimeConfig(path)
	if len(cfg.RSSUrls) != 1 {
		t.Errorf("RSSUrls = %v", cfg.RSSUrls)
	}
	if len(cfg.Keywords.Universal["Orders"]) != 1 {
		t.Errorf("Keywords = %+v", cfg.Keywords)
	}
}

func TestLoadRuntimeConfig_MissingFile(t *testing.T) {
	cfg := loadRuntimeConfig(filepath.Join(t.TempDir(), "nowhere.json"))
	if cfg == nil || len(cfg.RSSUrls) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadRuntimeConfig_Malformed(t *testing.T) {
	// the type error surfaces after rss_urls decodes; the partial result
	// must not leak through
	path := writeConfigFile(t, `{"rss_urls": ["https://nse.example/a.xml"], "external_feeds": 42}`)

	cfg := loadRuntimeConfig(path)
	if len(cfg.RSSUrls) != 0 {
		t.Errorf("partially decoded config leaked through: %+v", cfg)
	}
}
