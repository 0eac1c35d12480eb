package catalog

import (
	"strings"
	"time"
	"unicode"
)

// DynamicTemplate formats a post title/subtitle around a trending keyword.
type DynamicTemplate struct {
	Key      string
	Category Category
}

// DynamicTemplates returns the fixed set of trend-driven title formats.
func DynamicTemplates() []DynamicTemplate {
	return []DynamicTemplate{
		{Key: "news_reaction", Category: IndustryTrends},
		{Key: "trending_skill", Category: Skills},
		{Key: "market_update", Category: Salaries},
		{Key: "threat_career", Category: CareerPaths},
	}
}

// Render produces the title and subtitle for a keyword at a point in time.
func (t DynamicTemplate) Render(keyword string, now time.Time) (title, subtitle string) {
	switch t.Key {
	case "news_reaction":
		title = "What " + TitleCase(keyword) + " Means for Your Security Career"
		subtitle = "Recent developments in " + keyword + " and how they affect job seekers."
	case "trending_skill":
		title = TitleCase(keyword) + " Skills Are in Demand—Here's Why"
		subtitle = "Employers are actively seeking " + keyword + " expertise. How to get it."
	case "market_update":
		title = "Security Job Market: " + now.Format("January 2006") + " Update"
		subtitle = "Latest hiring trends, salary data, and what's changed."
	case "threat_career":
		title = "The Rise of " + TitleCase(keyword) + "—And the Careers Fighting It"
		subtitle = "How " + keyword + " is creating new job opportunities."
	}
	return title, subtitle
}

// TitleCase capitalizes the first letter of each word and lowercases the
// rest, so "AI" becomes "Ai" and "zero-day" becomes "Zero-Day".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
