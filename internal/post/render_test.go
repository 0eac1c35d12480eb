package post

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"How to Break Into Cybersecurity Without a Degree", "how-to-break-into-cybersecurity-without-a-degree"},
		{"Is CompTIA Security+ Worth It?", "is-comptia-security-worth-it"},
		{"Red Team vs Blue Team: Which Path?", "red-team-vs-blue-team-which-path"},
		{"  spaces   and_underscores  ", "spaces-and-underscores"},
		{"Salary Progression: Year 1-10", "salary-progression-year-1-10"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEstimateReadTime(t *testing.T) {
	if got := EstimateReadTime("a few words only"); got != 1 {
		t.Errorf("short content should floor at 1 minute, got %d", got)
	}
	long := strings.Repeat("word ", 600)
	if got := EstimateReadTime(long); got != 3 {
		t.Errorf("600 words should read in 3 minutes, got %d", got)
	}
	tagged := "<p>" + strings.Repeat("word ", 400) + "</p><div class=\"x\">ignored-markup</div>"
	if got := EstimateReadTime(tagged); got != 2 {
		t.Errorf("markup should not count as words, got %d minutes", got)
	}
}

func TestPickHighlight(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"How to Break Into Cybersecurity Without a Degree", "Cybersecurity"},
		{"SOC Analyst: Complete Career Guide", "Career"},
		{"Entry-Level Security Jobs Explained", "Security"},
		{"Networking Into the Field", ""},
	}
	for _, tt := range tests {
		if got := PickHighlight(tt.title); got != tt.want {
			t.Errorf("PickHighlight(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestHighlightTitle(t *testing.T) {
	got := HighlightTitle("Cybersecurity Career Guide", "Career")
	if got != "Cybersecurity <span>Career</span> Guide" {
		t.Errorf("unexpected highlight: %q", got)
	}

	// No highlight word: last word gets the span when the title is long.
	got = HighlightTitle("Networking Into the Field", "")
	if got != "Networking Into the <span>Field</span>" {
		t.Errorf("unexpected fallback highlight: %q", got)
	}

	// Two-word titles are left alone.
	got = HighlightTitle("Short Title", "")
	if got != "Short Title" {
		t.Errorf("two-word title should be unchanged, got %q", got)
	}

	// Only the first occurrence is wrapped.
	got = HighlightTitle("Security for Security Teams", "Security")
	if strings.Count(got, "<span>") != 1 {
		t.Errorf("expected a single span, got %q", got)
	}
}

func TestBuildTags(t *testing.T) {
	tags := BuildTags(catalog.CareerPaths, "role_guide", false)
	want := []string{"Career Paths", "Cybersecurity", "Career", "role_guide"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %v", len(want), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d = %q, want %q", i, tags[i], want[i])
		}
	}

	dynamic := BuildTags(catalog.IndustryTrends, "ransomware", true)
	found := false
	for _, tag := range dynamic {
		if tag == "Ransomware" {
			found = true
		}
	}
	if !found {
		t.Errorf("dynamic tags should include the title-cased topic, got %v", dynamic)
	}
	if len(dynamic) > 6 {
		t.Errorf("tags capped at 6, got %d", len(dynamic))
	}
}

func testParams() Params {
	return Params{
		Title:     "Entry-Level Cybersecurity Salaries",
		Subtitle:  "What to expect in your first role.",
		Category:  catalog.Salaries,
		Content:   "<p>" + strings.Repeat("word ", 450) + "</p>",
		Highlight: "Cybersecurity",
		Date:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	r := Render(testParams())

	if r.Slug != "entry-level-cybersecurity-salaries" {
		t.Errorf("unexpected slug %q", r.Slug)
	}
	if r.Filepath != filepath.Join("posts", "2026", "03", "entry-level-cybersecurity-salaries.html") {
		t.Errorf("unexpected filepath %q", r.Filepath)
	}

	for _, want := range []string{
		"<title>Entry-Level Cybersecurity Salaries | TacRaven Solutions</title>",
		"<span>Cybersecurity</span>",
		"March 10, 2026",
		`content="2026-03-10"`,
		"background:var(--blue)",
		"3.5M",
		"2 min read",
	} {
		if !strings.Contains(r.HTML, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(r.HTML, "${") {
		t.Error("unfilled template placeholder left in output")
	}

	if r.Meta.Category != "Salaries" || r.Meta.Date != "2026-03-10" || r.Meta.ReadTime != 2 {
		t.Errorf("unexpected sidecar meta %+v", r.Meta)
	}
}

func TestRenderCanonicalURL(t *testing.T) {
	r := Render(testParams())
	want := `href="https://tacraven.com/blog/posts/2026/03/entry-level-cybersecurity-salaries.html"`
	if !strings.Contains(r.HTML, want) {
		t.Error("expected default site URL in canonical link")
	}

	p := testParams()
	p.SiteURL = "https://staging.tacraven.com/"
	r = Render(p)
	want = `href="https://staging.tacraven.com/blog/posts/2026/03/entry-level-cybersecurity-salaries.html"`
	if !strings.Contains(r.HTML, want) {
		t.Error("expected configured site URL in canonical link, trailing slash trimmed")
	}
	if strings.Contains(r.HTML, "staging.tacraven.com//") {
		t.Error("trailing slash must not double up in URLs")
	}
}

func TestRenderTruncatesMetaDescription(t *testing.T) {
	p := testParams()
	p.Subtitle = strings.Repeat("s", 200)
	r := Render(p)
	want := strings.Repeat("s", 155) + "..."
	if !strings.Contains(r.HTML, `content="`+want+`"`) {
		t.Error("expected truncated meta description")
	}
}

func TestSaveWritesPostAndSidecar(t *testing.T) {
	dir := t.TempDir()
	r := Render(testParams())

	path, err := Save(r, dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(dir, "posts", "2026", "03") {
		t.Errorf("post written to wrong dir: %s", path)
	}

	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved post: %v", err)
	}
	if !strings.Contains(string(html), "hero-title") {
		t.Error("saved post missing template body")
	}

	metaBytes, err := os.ReadFile(filepath.Join(dir, "posts", "2026", "03", r.Slug+".meta.json"))
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}
	var meta Meta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		t.Fatalf("decoding sidecar: %v", err)
	}
	if meta.Title != "Entry-Level Cybersecurity Salaries" || meta.Slug != r.Slug {
		t.Errorf("unexpected sidecar contents %+v", meta)
	}
}

func TestLoadLogoMissingFile(t *testing.T) {
	if got := LoadLogo(filepath.Join(t.TempDir(), "nope.txt")); got != "" {
		t.Errorf("missing logo should yield empty string, got %q", got)
	}
}

func TestLoadLogoTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo-base64.txt")
	if err := os.WriteFile(path, []byte("  abc123\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := LoadLogo(path); got != "abc123" {
		t.Errorf("expected trimmed logo, got %q", got)
	}
}
