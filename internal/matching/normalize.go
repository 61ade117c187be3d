package matching

import (
	"regexp"
	"strings"
)

// Ordered replacement table. Order matters: LIMITED collapses to LTD first,
// so the PVT LTD variants below all converge on the same form.
var nameReplacements = []struct{ old, new string }{
	{"LIMITED", "LTD"},
	{"INCORPORATED", "INC"},
	{"CORPORATION", "CORP"},
	{"PRIVATE LIMITED", "PVT LTD"},
	{"PVT. LTD.", "PVT LTD"},
	{"PRIVATE LTD.", "PVT LTD"},
	{"PRIVATE LTD", "PVT LTD"},
	{"LTD.", "LTD"},
	{"INC.", "INC"},
	{"CORP.", "CORP"},
	{"&", "AND"},
	{" + ", " AND "},
	{"  ", " "},
}

var namePunctuation = regexp.MustCompile(`[.,;:()\[\]{}]`)

// NormalizeCompanyName canonicalizes a company name for matching:
// upper-case, legal-suffix collapsing, punctuation removal, whitespace
// collapse. Idempotent, returns empty for empty input.
func NormalizeCompanyName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	for _, r := range nameReplacements {
		name = strings.ReplaceAll(name, r.old, r.new)
	}

	name = namePunctuation.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}
