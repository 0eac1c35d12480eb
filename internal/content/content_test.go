package content

import (
	"strings"
	"testing"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/schedule"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/trends"
)

func testTopic() *schedule.Topic {
	return &schedule.Topic{
		Category:  catalog.Salaries,
		BaseTopic: "salary_data",
		Angle:     "entry level",
		Title:     "Entry-Level Cybersecurity Salaries",
		Subtitle:  "What to expect in your first role.",
		TitleHash: schedule.TitleHash("Entry-Level Cybersecurity Salaries"),
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<b>bold</b> text", "bold text"},
		{"no markup", "no markup"},
		{"<a href=\"x\">link</a>", "link"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripTags(tt.in); got != tt.want {
			t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalloutStyles(t *testing.T) {
	plain := Callout("Heads Up", "body text", false)
	if !strings.Contains(plain, `class="callout"`) {
		t.Error("expected plain callout class")
	}
	if strings.Contains(plain, "callout success") {
		t.Error("plain callout should not carry success class")
	}

	success := Callout("Nice", "body text", true)
	if !strings.Contains(success, `class="callout success"`) {
		t.Error("expected success callout class")
	}
}

func TestDataCardsRendersEveryCard(t *testing.T) {
	out := DataCards([]DataCard{
		{"A", "1", "first"},
		{"B", "2", "second"},
	})
	for _, want := range []string{"<h4>A</h4>", "<h4>B</h4>", `<div class="highlight">1</div>`, "card-grid"} {
		if !strings.Contains(out, want) {
			t.Errorf("data cards output missing %q", want)
		}
	}
}

func TestIntroEmbedsSubtitle(t *testing.T) {
	topic := testTopic()
	for _, style := range catalog.IntroStyles {
		out := Intro(topic, style)
		if !strings.Contains(out, topic.Subtitle) {
			t.Errorf("style %q missing subtitle", style)
		}
	}
}

func TestIntroStylesDiffer(t *testing.T) {
	topic := testTopic()
	seen := map[string]string{}
	for _, style := range catalog.IntroStyles {
		out := Intro(topic, style)
		for prev, prevOut := range seen {
			if out == prevOut {
				t.Errorf("styles %q and %q produced identical intros", style, prev)
			}
		}
		seen[style] = out
	}
}

func TestCategoryBodyInterpolatesYear(t *testing.T) {
	body := categoryBody(catalog.Salaries, "2026")
	if !strings.Contains(body, "Entry-Level Reality Check (2026)") {
		t.Error("expected salaries body to carry the current year")
	}
}

func TestEveryCategoryHasBodyAndSections(t *testing.T) {
	for _, cat := range catalog.AllCategories() {
		if categoryBody(cat, "2026") == "" {
			t.Errorf("category %s has no body", cat)
		}
		if Exercises(cat) == "" {
			t.Errorf("category %s has no exercises section", cat)
		}
		if FAQ(cat) == "" {
			t.Errorf("category %s has no FAQ section", cat)
		}
	}
	if DeepDive(catalog.GettingStarted) != "" {
		t.Error("getting-started has no deep dive by design of the section set")
	}
	if DeepDive(catalog.Skills) == "" {
		t.Error("skills deep dive missing")
	}
}

func TestAssembleEvergreen(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	out := Assemble(testTopic(), "stat_hook", now)

	if strings.Contains(out, "What's Happening Now") {
		t.Error("evergreen post should not include the trending news block")
	}
	for _, want := range []string{
		"3.5 million unfilled cybersecurity jobs",
		"Entry-Level Reality Check (2026)",
		"Salary FAQs",
		"Taking Action: Your Next Steps",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("assembled post missing %q", want)
		}
	}

	intro := strings.Index(out, "3.5 million")
	body := strings.Index(out, "Entry-Level Reality Check")
	closing := strings.Index(out, "Taking Action")
	if !(intro < body && body < closing) {
		t.Error("sections assembled out of order")
	}
}

func TestAssembleDynamicIncludesNews(t *testing.T) {
	topic := testTopic()
	topic.IsDynamic = true
	topic.Trend = &schedule.TrendData{
		Keyword: "ransomware",
		Count:   4,
		RelatedNews: []trends.NewsItem{
			{Title: "<b>Ransomware</b> wave hits hospitals"},
			{Title: "  "},
			{Title: strings.Repeat("x", 150)},
			{Title: "Fourth headline should fit after the blank one"},
		},
	}
	out := Assemble(topic, "direct_answer", time.Now())

	if !strings.Contains(out, "What's Happening Now") {
		t.Fatal("dynamic post missing trending news block")
	}
	if !strings.Contains(out, "<strong>Ransomware wave hits hospitals</strong>") {
		t.Error("expected tag-stripped headline in news block")
	}
	if strings.Contains(out, strings.Repeat("x", 101)) {
		t.Error("headline should be truncated to 100 characters")
	}
	if strings.Contains(out, "<li><strong></strong></li>") {
		t.Error("blank headlines should be skipped")
	}
}
