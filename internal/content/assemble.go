package content

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/schedule"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripTags removes HTML markup, leaving plain text.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// headlineLimit truncates feed titles quoted in the news block. Feed titles
// occasionally run long or carry trailing markup.
const headlineLimit = 100

// Assemble produces the full article body for a topic: intro, an optional
// trending-news block, the category's long-form content, then the shared
// deep-dive, exercises, FAQ, and closing sections.
func Assemble(topic *schedule.Topic, introStyle string, now time.Time) string {
	var b strings.Builder
	b.WriteString(Intro(topic, introStyle))

	if topic.IsDynamic && topic.Trend != nil && len(topic.Trend.RelatedNews) > 0 {
		b.WriteString(newsBlock(topic))
	}

	year := strconv.Itoa(now.Year())
	b.WriteString(categoryBody(topic.Category, year))
	b.WriteString(DeepDive(topic.Category))
	b.WriteString(Exercises(topic.Category))
	b.WriteString(FAQ(topic.Category))
	b.WriteString(Closing())
	return b.String()
}

func newsBlock(topic *schedule.Topic) string {
	var b strings.Builder
	b.WriteString(`
            <h2>What's Happening Now</h2>

            <p>Recent headlines are highlighting this trend, and the timing matters for your career decisions:</p>

            <ul>
`)
	count := 0
	for _, item := range topic.Trend.RelatedNews {
		if count == 3 {
			break
		}
		title := strings.TrimSpace(StripTags(item.Title))
		if title == "" {
			continue
		}
		if len(title) > headlineLimit {
			title = title[:headlineLimit]
		}
		b.WriteString("                <li><strong>" + title + "</strong></li>\n")
		count++
	}
	b.WriteString(`            </ul>

            <p>These developments have real implications for security careers. Let me explain what they mean for you and how to position yourself accordingly.</p>
`)
	return b.String()
}
