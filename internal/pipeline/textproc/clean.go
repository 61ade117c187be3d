package textproc

import (
	"regexp"
	"strings"
)

var (
	pageOfPattern     = regexp.MustCompile(`(?i)\bpage\s+\d+\s+(?:of\s+\d+)?\b`)
	dashedPagePattern = regexp.MustCompile(`-\s*\d+\s*-`)
	bareNumberPattern = regexp.MustCompile(`(?m)^\d+$`)
	multiSpacePattern = regexp.MustCompile(` +`)
	tripleNewline     = regexp.MustCompile(`\n{3,}`)
	trailingWS        = regexp.MustCompile(`(?m)[ \t]+$`)
	brokenWordPattern = regexp.MustCompile(`(\w+)-\s*\n\s*(\w+)`)
	quadNewline       = regexp.MustCompile(`\n{4,}`)
)

// CleanText normalizes raw extracted text: strips page-number artifacts,
// collapses whitespace, rejoins words hyphenated across line breaks and
// normalizes line endings. Always returns a string; empty input stays empty.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	// page footers: "Page 3 of 10", "- 3 -", standalone numbers on their own line
	text = pageOfPattern.ReplaceAllString(text, "")
	text = dashedPagePattern.ReplaceAllString(text, "")
	text = bareNumberPattern.ReplaceAllString(text, "")

	text = multiSpacePattern.ReplaceAllString(text, " ")
	text = tripleNewline.ReplaceAllString(text, "\n\n")
	text = trailingWS.ReplaceAllString(text, "")

	// word-\nword -> wordword
	text = brokenWordPattern.ReplaceAllString(text, "$1$2")

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// a second pass after line-ending normalization so runaway blank regions
	// collapse to at most one blank paragraph
	text = quadNewline.ReplaceAllString(text, "\n\n\n")

	return strings.TrimSpace(text)
}
