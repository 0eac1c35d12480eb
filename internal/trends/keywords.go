package trends

import (
	"sort"
	"strings"
)

// trackedKeywords is the fixed vocabulary scanned for in headlines.
var trackedKeywords = []string{
	"ransomware", "breach", "vulnerability", "zero-day", "phishing",
	"AI", "artificial intelligence", "machine learning", "cloud",
	"remote work", "hiring", "shortage", "salary", "certification",
	"CISO", "SOC", "analyst", "engineer", "skills gap",
	"compliance", "regulation", "NIST", "zero trust",
	"supply chain", "insider threat", "IoT", "OT", "ICS",
	"healthcare", "finance", "government", "critical infrastructure",
}

// Keyword is a tracked term and how often it appeared.
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// ExtractTrending counts tracked keyword mentions across title+description
// and returns the top 10 by frequency. Matching is case-insensitive.
func ExtractTrending(items []NewsItem) []Keyword {
	counts := map[string]int{}
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Description)
		for _, kw := range trackedKeywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				counts[kw]++
			}
		}
	}

	ranked := make([]Keyword, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, Keyword{Term: term, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Term < ranked[j].Term
	})

	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	return ranked
}
