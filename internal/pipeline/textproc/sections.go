package textproc

import (
	"regexp"
	"strings"

	"github.com/akolanti/CatalystAPI/internal/domain/docModel"
)

// section keywords that show up in results/concall PDFs
var sectionKeywords = []string{
	"revenue", "profit", "guidance", "outlook", "results", "financial",
	"operations", "management", "discussion", "analysis", "highlights",
	"summary", "overview", "conclusion", "appendix", "annexure",
}

var numberedHeaderPattern = regexp.MustCompile(`^\d+[.)]\s+[A-Z]`)

// DetectSections segments cleaned text into labeled sections by heuristic
// header detection. The first section is seeded as "Introduction" at line 0
// and survives unless another header claims line 0. Returns nil when no
// header is found at all, which tells the chunker to fall back to
// page-based splitting.
func DetectSections(text string) []docModel.Section {
	lines := strings.Split(text, "\n")

	var sections []docModel.Section
	current := docModel.Section{Title: "Introduction", Start: 0}
	headerFound := false

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if len(stripped) < 3 {
			continue
		}

		if !isSectionHeader(stripped, i, lines) {
			continue
		}
		headerFound = true

		// close the running section; a header at the section's own start
		// line replaces it instead
		if current.Start < i {
			current.End = i
			sections = append(sections, current)
		}
		current = docModel.Section{Title: stripped, Start: i, End: len(lines)}
	}

	if !headerFound {
		return nil
	}

	if current.Start < len(lines) {
		current.End = len(lines)
		sections = append(sections, current)
	}

	// cumulative line offsets, +1 per newline
	linePositions := make([]int, 0, len(lines)+1)
	pos := 0
	linePositions = append(linePositions, 0)
	for _, line := range lines {
		pos += len(line) + 1
		linePositions = append(linePositions, pos)
	}

	for idx := range sections {
		sections[idx].CharStart = linePositions[sections[idx].Start]
		end := sections[idx].End
		if end > len(linePositions)-1 {
			end = len(linePositions) - 1
		}
		// the cumulative offsets count a newline after the final line, so
		// the last section would otherwise end one past the document
		sections[idx].CharEnd = linePositions[end]
		if sections[idx].CharEnd > len(text) {
			sections[idx].CharEnd = len(text)
		}
	}

	return sections
}

func isSectionHeader(stripped string, i int, lines []string) bool {
	words := strings.Fields(stripped)

	// all caps and short
	if stripped == strings.ToUpper(stripped) && stripped != strings.ToLower(stripped) &&
		len(stripped) < 100 && len(words) < 10 {
		return true
	}

	// numbered section: "1. Revenue", "2) Outlook"
	if numberedHeaderPattern.MatchString(stripped) {
		return true
	}

	// contains a financial section keyword and is not too long
	if len(stripped) < 150 {
		lower := strings.ToLower(stripped)
		for _, kw := range sectionKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	// short standalone line: 3-8 words, blank line above, content below
	if len(words) >= 3 && len(words) <= 8 && i > 0 && strings.TrimSpace(lines[i-1]) == "" {
		if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			return true
		}
	}

	return false
}
