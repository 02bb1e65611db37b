package pipeline

import (
	"strings"
	"unicode"
)

// competitorCandidate is a search hit that looks like a company before LLM
// enrichment.
type competitorCandidate struct {
	Name    string
	Website string
	Content string
}

// candidateName derives a company name from a search result title. Titles
// usually carry a suffix after a dash or pipe ("Acme - Pricing | Reviews");
// everything after the first separator is dropped.
func candidateName(title string) string {
	name := title
	if i := strings.IndexAny(name, "-|"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// dedupeKey normalizes a company name for duplicate detection: lowercase,
// alphanumerics only.
func dedupeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dedupeCandidates keeps the first occurrence of each company across the
// search queries, preserving order.
func dedupeCandidates(candidates []competitorCandidate) []competitorCandidate {
	seen := make(map[string]bool, len(candidates))
	out := candidates[:0:0]
	for _, c := range candidates {
		key := dedupeKey(c.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
