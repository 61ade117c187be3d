package tagging

import (
	"regexp"
	"sort"
	"strings"

	"github.com/akolanti/CatalystAPI/internal/config"
)

var phrasePunctuation = regexp.MustCompile(`[.,;:()\[\]{}]`)

// NormalizePhrase lower-cases, strips punctuation and collapses whitespace.
// Both taxonomy phrases and the scanned text go through this, so matches
// are insensitive to case and punctuation.
func NormalizePhrase(s string) string {
	s = strings.ToLower(s)
	s = phrasePunctuation.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// Taxonomy holds the three keyword groups with every phrase pre-normalized:
// universal categories applied to every row, per-sector category groups
// applied only when the sector is detected, and filter categories whose
// hits raise the negative-signal flag.
type Taxonomy struct {
	universal map[string][]string
	sectors   map[string]map[string][]string
	filters   map[string][]string
}

// Build constructs the taxonomy from configuration, once per run.
func Build(cfg config.KeywordConfig) *Taxonomy {
	sectors := make(map[string]map[string][]string, len(cfg.Sectors))
	for sector, group := range cfg.Sectors {
		sectors[sector] = normalizeGroup(group)
	}
	return &Taxonomy{
		universal: normalizeGroup(cfg.Universal),
		sectors:   sectors,
		filters:   normalizeGroup(cfg.Filters),
	}
}

func normalizeGroup(group map[string][]string) map[string][]string {
	out := make(map[string][]string, len(group))
	for category, phrases := range group {
		normalized := make([]string, 0, len(phrases))
		for _, p := range phrases {
			if np := NormalizePhrase(p); np != "" {
				normalized = append(normalized, np)
			}
		}
		out[category] = normalized
	}
	return out
}

// Tags is the human-readable annotation set for one matched row. The
// strings are category-joined summaries, not meant to be parsed further.
type Tags struct {
	Universal   string `json:"kw_universal"`
	Sector      string `json:"kw_sector"`
	Filters     string `json:"kw_filters"`
	HasNegative bool   `json:"has_negative"`
}

// Tag scans a row's text blob against the taxonomy. Phrases match as whole
// phrases only (space-padded substring search). Sector groups apply when
// the sector key appears in the blob or the row's industry field; keys of
// three characters or fewer must appear as whole words.
func (t *Taxonomy) Tag(blob, industry string) Tags {
	text := NormalizePhrase(blob)
	padded := " " + text + " "
	industryText := NormalizePhrase(industry)

	var out Tags
	out.Universal = scanGroup(t.universal, padded)

	var sectorParts []string
	for _, sector := range sortedKeys(t.sectors) {
		if !sectorApplies(sector, text, industryText) {
			continue
		}
		if hits := scanGroup(t.sectors[sector], padded); hits != "" {
			sectorParts = append(sectorParts, sector+": "+hits)
		}
	}
	out.Sector = strings.Join(sectorParts, "; ")

	out.Filters = scanGroup(t.filters, padded)
	out.HasNegative = out.Filters != ""
	return out
}

func scanGroup(group map[string][]string, padded string) string {
	var parts []string
	for _, category := range sortedKeys(group) {
		var hits []string
		for _, phrase := range group[category] {
			if strings.Contains(padded, " "+phrase+" ") {
				hits = append(hits, phrase)
			}
		}
		if len(hits) > 0 {
			parts = append(parts, category+": "+strings.Join(hits, ", "))
		}
	}
	return strings.Join(parts, "; ")
}

func sectorApplies(sector, text, industry string) bool {
	key := NormalizePhrase(sector)
	if key == "" {
		return false
	}
	if len(key) <= 3 {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
		return pattern.MatchString(text) || pattern.MatchString(industry)
	}
	return strings.Contains(text, key) || strings.Contains(industry, key)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
