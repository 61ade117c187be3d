package matching

import (
	"regexp"
	"strings"
	"unicode"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Generic corporate and sector terms that carry no identity on their own.
// "RELIANCE INDUSTRIES LTD" identifies a company through RELIANCE alone.
var stopWords = map[string]struct{}{
	"LTD": {}, "INC": {}, "CORP": {}, "PVT": {}, "AND": {}, "THE": {},
	"OF": {}, "IN": {}, "FOR": {}, "TO": {},
	"INDUSTRIES": {}, "INDUSTRY": {}, "ENGINEERING": {}, "AUTOMATION": {},
	"SYSTEMS": {}, "TECHNOLOGIES": {}, "TECHNOLOGY": {}, "SOLUTIONS": {},
	"SERVICES": {}, "GROUP": {}, "GLOBAL": {}, "INTERNATIONAL": {},
	"COMPANY": {}, "COMPANIES": {}, "INDIA": {}, "OVERSEAS": {},
	"FINANCE": {}, "FINANCIAL": {}, "BANK": {}, "BANKING": {},
}

// SignificantWords filters a normalized name down to the words that
// identify the company: stop-listed words are dropped, and a word survives
// only if it is longer than two characters or contains a digit (so a name
// like "3M" is kept).
func SignificantWords(normalized string) []string {
	var words []string
	for _, word := range strings.Fields(normalized) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		if len(word) > 2 || containsDigit(word) {
			words = append(words, word)
		}
	}
	return words
}

// MatchCompanyName reports whether searchName plausibly refers to a company
// mentioned in text. Both sides are normalized and reduced to significant
// words; the decision tightens as the name carries fewer distinctive words:
//
//   - no significant words: full normalized name must appear verbatim
//   - one significant word: verbatim appearance, or a whole-word hit plus a
//     near-identical similarity ratio
//   - two or more: all words present, or 90% present with the leading word
//     among them, or token-sort / partial similarity above fixed thresholds
func MatchCompanyName(searchName, text string) bool {
	if searchName == "" || text == "" {
		return false
	}

	normalizedSearch := NormalizeCompanyName(searchName)
	normalizedText := NormalizeCompanyName(text)
	if normalizedSearch == "" || normalizedText == "" {
		return false
	}

	searchWords := SignificantWords(normalizedSearch)
	textWords := SignificantWords(normalizedText)

	if len(searchWords) == 0 {
		return strings.Contains(normalizedText, normalizedSearch)
	}

	if len(searchWords) == 1 {
		if strings.Contains(normalizedText, normalizedSearch) {
			return true
		}
		if wholeWordIn(searchWords[0], normalizedText) {
			return fuzzy.Ratio(normalizedSearch, normalizedText) >= 98
		}
		return false
	}

	textSet := make(map[string]struct{}, len(textWords))
	for _, w := range textWords {
		textSet[w] = struct{}{}
	}

	matched := 0
	for _, w := range searchWords {
		if _, ok := textSet[w]; ok {
			matched++
		}
	}
	if matched == len(searchWords) {
		return true
	}

	_, firstWordMatch := textSet[searchWords[0]]
	if firstWordMatch && float64(matched) >= float64(len(searchWords))*0.9 {
		return true
	}

	if fuzzy.TokenSortRatio(normalizedSearch, normalizedText) >= 90 {
		return true
	}
	return fuzzy.PartialRatio(normalizedSearch, normalizedText) >= 95
}

func wholeWordIn(word, text string) bool {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return pattern.MatchString(text)
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
