package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/content"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/post"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/schedule"
)

func writePost(t *testing.T, root, title, subtitle string, cat catalog.Category, date time.Time) *post.Rendered {
	t.Helper()
	topic := &schedule.Topic{
		Category: cat,
		Title:    title,
		Subtitle: subtitle,
	}
	r := post.Render(post.Params{
		Title:    title,
		Subtitle: subtitle,
		Category: cat,
		Content:  content.Assemble(topic, "direct_answer", date),
		Tags:     post.BuildTags(cat, "breaking_in", false),
		Date:     date,
	})
	if _, err := post.Save(r, root); err != nil {
		t.Fatalf("saving fixture post: %v", err)
	}
	return r
}

func TestBuildMissingPostsDirYieldsEmptyManifest(t *testing.T) {
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	m, err := Build(t.TempDir(), now)
	if err != nil {
		t.Fatalf("missing posts dir should not error: %v", err)
	}
	if m.Count != 0 {
		t.Errorf("expected empty manifest, got %d posts", m.Count)
	}
	if m.Posts == nil {
		t.Error("posts should encode as [] rather than null")
	}
	if m.Generated != now.Format(time.RFC3339) {
		t.Errorf("unexpected generated stamp %q", m.Generated)
	}
}

func TestBuildTwiceIsIdentical(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "First Post About Certifications", "One.", catalog.Certifications, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC))
	writePost(t, root, "Second Post About Salaries", "Two.", catalog.Salaries, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first, err := Build(root, now)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := Build(root, now)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Errorf("rebuild over an unchanged tree differs:\n%s\n%s", a, b)
	}
}

func TestBuildIndexesFromSidecar(t *testing.T) {
	root := t.TempDir()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	writePost(t, root, "How to Break Into Cybersecurity Without a Degree", "You don't need a CS degree.", catalog.GettingStarted, date)

	m, err := Build(root, date)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Count != 1 || len(m.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", m.Count)
	}

	e := m.Posts[0]
	if e.Title != "How to Break Into Cybersecurity Without a Degree" {
		t.Errorf("unexpected title %q", e.Title)
	}
	if e.CategorySlug != "getting-started" || e.CategoryCSS != "gs" {
		t.Errorf("unexpected category fields %q/%q", e.CategorySlug, e.CategoryCSS)
	}
	if e.Date != "2026-03-10" {
		t.Errorf("unexpected date %q", e.Date)
	}
	if !e.Featured {
		t.Error("single post should be featured")
	}
	if e.ReadTime < 1 {
		t.Errorf("unexpected read time %d", e.ReadTime)
	}
	if e.Filepath != "posts/2026/03/"+e.Slug+".html" {
		t.Errorf("unexpected filepath %q", e.Filepath)
	}
}

func TestBuildSortsNewestFirstAndFeaturesNewest(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "Older Post About Certifications", "An older one.", catalog.Certifications, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC))
	writePost(t, root, "Newer Post About Salaries", "The newest one.", catalog.Salaries, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	m, err := Build(root, time.Now())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Count != 2 {
		t.Fatalf("expected 2 posts, got %d", m.Count)
	}
	if m.Posts[0].Title != "Newer Post About Salaries" {
		t.Errorf("newest post should sort first, got %q", m.Posts[0].Title)
	}
	if !m.Posts[0].Featured || m.Posts[1].Featured {
		t.Error("only the newest post should be featured")
	}
}

func TestBuildSkipsIndexHTML(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "A Real Post About Skills", "Real.", catalog.Skills, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if err := os.WriteFile(filepath.Join(root, "posts", "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Build(root, time.Now())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Count != 1 {
		t.Errorf("index.html should be skipped, got %d posts", m.Count)
	}
}

func TestBuildScrapesLegacyPost(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "posts", "2025", "11")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	html := `<!DOCTYPE html><html><head>
<title>Legacy Career Guide | TacRaven Solutions</title>
<meta name="description" content="A post from before sidecars.">
<meta property="article:published_time" content="2025-11-20">
</head><body>
<span class="hero-category" style="background:var(--purple)">Career Paths</span>
<span class="hero-read">• 7 min read</span>
<span class="tag">Career Paths</span>
<span class="tag">Cybersecurity</span>
</body></html>`
	if err := os.WriteFile(filepath.Join(dir, "legacy-career-guide.html"), []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Build(root, time.Now())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Count != 1 {
		t.Fatalf("expected 1 post, got %d", m.Count)
	}

	e := m.Posts[0]
	if e.Title != "Legacy Career Guide" {
		t.Errorf("unexpected scraped title %q", e.Title)
	}
	if e.Excerpt != "A post from before sidecars." {
		t.Errorf("unexpected excerpt %q", e.Excerpt)
	}
	if e.Date != "2025-11-20" {
		t.Errorf("unexpected date %q", e.Date)
	}
	if e.CategorySlug != "career-paths" || e.CategoryCSS != "cp" {
		t.Errorf("unexpected category %q/%q", e.CategorySlug, e.CategoryCSS)
	}
	if e.ReadTime != 7 {
		t.Errorf("unexpected read time %d", e.ReadTime)
	}
	if len(e.Tags) != 2 {
		t.Errorf("unexpected tags %v", e.Tags)
	}
}

func TestScrapeFallbacks(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "posts", "2025", "06")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	// Bare page with none of the expected markup.
	if err := os.WriteFile(filepath.Join(dir, "mystery-post.html"), []byte("<html><body><p>hello world</p></body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Build(root, time.Now())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e := m.Posts[0]
	if e.Title != "Mystery Post" {
		t.Errorf("expected title from slug, got %q", e.Title)
	}
	if e.Date != "2025-06-01" {
		t.Errorf("expected date from path, got %q", e.Date)
	}
	if e.ReadTime != 1 {
		t.Errorf("expected 1 minute floor, got %d", e.ReadTime)
	}
	if e.CategorySlug != "getting-started" {
		t.Errorf("expected default category, got %q", e.CategorySlug)
	}
}

func TestWriteManifest(t *testing.T) {
	root := t.TempDir()
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	writePost(t, root, "Manifest Write Check Post", "Subtitle.", catalog.JobSearch, date)

	m, err := Build(root, date)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	path, err := Write(m, root)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join("posts", "posts.json")) {
		t.Errorf("unexpected manifest path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Manifest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding manifest: %v", err)
	}
	if decoded.Count != 1 || decoded.Posts[0].Title != "Manifest Write Check Post" {
		t.Errorf("unexpected manifest contents %+v", decoded)
	}
	if decoded.Generated != date.Format(time.RFC3339) {
		t.Errorf("unexpected generated stamp %q", decoded.Generated)
	}
}
