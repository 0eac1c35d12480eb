package post

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	tagStrip     = regexp.MustCompile(`<[^>]+>`)
)

// Slugify converts a title into its URL path segment.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EstimateReadTime reports reading minutes at 200 words per minute, with a
// floor of one minute.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(tagStrip.ReplaceAllString(content, "")))
	minutes := int(math.Round(float64(words) / 200))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// highlightPriority is the order titles are scanned for a word to render in
// gold. Matching is against whole words of the title.
var highlightPriority = []string{"Cybersecurity", "Security", "Career", "Salary", "Jobs", "Analyst", "CISO", "SOC"}

// PickHighlight returns the first priority word present in the title, or ""
// when none match.
func PickHighlight(title string) string {
	words := strings.Fields(title)
	for _, candidate := range highlightPriority {
		for _, w := range words {
			if w == candidate {
				return candidate
			}
		}
	}
	return ""
}

// HighlightTitle wraps one word of the title in a span for the gold accent.
// With no usable highlight word, the last word is highlighted when the title
// is long enough to read well that way.
func HighlightTitle(title, highlight string) string {
	if highlight != "" && strings.Contains(strings.ToLower(title), strings.ToLower(highlight)) {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(highlight))
		if loc := re.FindStringIndex(title); loc != nil {
			return title[:loc[0]] + "<span>" + highlight + "</span>" + title[loc[1]:]
		}
	}
	words := strings.Split(title, " ")
	if len(words) > 2 {
		words[len(words)-1] = "<span>" + words[len(words)-1] + "</span>"
	}
	return strings.Join(words, " ")
}

// BuildTags derives the post's tag list: category name, the fixed pair, the
// topic key for dynamic posts, then words from the topic key. Deduplicated,
// capped at six.
func BuildTags(cat catalog.Category, baseTopic string, dynamic bool) []string {
	candidates := []string{cat.DisplayName(), "Cybersecurity", "Career"}
	if dynamic && baseTopic != "" {
		candidates = append(candidates, titleCase(baseTopic))
	}
	words := strings.Fields(baseTopic)
	if len(words) > 2 {
		words = words[:2]
	}
	candidates = append(candidates, words...)

	var tags []string
	seen := map[string]bool{}
	for _, tag := range candidates {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == 6 {
			break
		}
	}
	return tags
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Stat is one cell of the hero stats strip.
type Stat struct {
	Value string
	Label string
}

// DefaultStats is the strip shown when a post has no topical numbers of its
// own. Figures track ISC2 and BLS headline data.
func DefaultStats() []Stat {
	return []Stat{
		{"3.5M", "Unfilled Jobs"},
		{"33%", "Job Growth"},
		{"$124K", "Median Salary"},
		{"~0%", "Unemployment"},
	}
}

// defaultSiteURL is used when no site URL is configured.
const defaultSiteURL = "https://tacraven.com"

// Params carries everything Render needs for one post.
type Params struct {
	Title      string
	Subtitle   string
	Category   catalog.Category
	Content    string
	Stats      []Stat
	Tags       []string
	Highlight  string
	Date       time.Time
	SiteURL    string
	LogoBase64 string
}

// Rendered is a complete post ready to be written out.
type Rendered struct {
	HTML     string
	Slug     string
	Year     string
	Month    string
	Filepath string
	Meta     Meta
}

// Meta is the sidecar metadata written next to each post. The manifest
// builder reads it instead of scraping the HTML back out.
type Meta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date"`
	ReadTime    int      `json:"read_time"`
	Slug        string   `json:"slug"`
}

// Render fills the page template and computes the post's path and sidecar
// metadata.
func Render(p Params) *Rendered {
	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	year := date.Format("2006")
	month := date.Format("01")

	slug := Slugify(p.Title)
	readTime := EstimateReadTime(p.Content)

	meta := p.Subtitle
	if len(meta) > 155 {
		meta = meta[:155] + "..."
	}

	stats := p.Stats
	if stats == nil {
		stats = DefaultStats()
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{p.Category.DisplayName(), "Cybersecurity", "Career"}
	}

	siteURL := strings.TrimRight(p.SiteURL, "/")
	if siteURL == "" {
		siteURL = defaultSiteURL
	}

	html := strings.NewReplacer(
		"${title}", p.Title,
		"${title_html}", HighlightTitle(p.Title, p.Highlight),
		"${subtitle}", p.Subtitle,
		"${meta_description}", meta,
		"${category}", p.Category.DisplayName(),
		"${category_color}", p.Category.Color(),
		"${year}", year,
		"${month}", month,
		"${slug}", slug,
		"${iso_date}", date.Format("2006-01-02"),
		"${readable_date}", date.Format("January 02, 2006"),
		"${read_time}", strconv.Itoa(readTime),
		"${site_url}", siteURL,
		"${stats_html}", statsHTML(stats),
		"${content}", p.Content,
		"${tags_html}", tagsHTML(tags),
		"${logo_base64}", p.LogoBase64,
	).Replace(pageTemplate)

	return &Rendered{
		HTML:     html,
		Slug:     slug,
		Year:     year,
		Month:    month,
		Filepath: filepath.Join("posts", year, month, slug+".html"),
		Meta: Meta{
			Title:       p.Title,
			Description: p.Subtitle,
			Category:    p.Category.DisplayName(),
			Tags:        tags,
			Date:        date.Format("2006-01-02"),
			ReadTime:    readTime,
			Slug:        slug,
		},
	}
}

func statsHTML(stats []Stat) string {
	var b strings.Builder
	for _, s := range stats {
		b.WriteString("            <div class=\"stat\">\n")
		b.WriteString("                <div class=\"stat-value\">" + s.Value + "</div>\n")
		b.WriteString("                <div class=\"stat-label\">" + s.Label + "</div>\n")
		b.WriteString("            </div>\n")
	}
	return b.String()
}

func tagsHTML(tags []string) string {
	lines := make([]string, len(tags))
	for i, tag := range tags {
		lines[i] = "                <span class=\"tag\">" + tag + "</span>"
	}
	return strings.Join(lines, "\n")
}

// Save writes the post and its metadata sidecar under baseDir, creating the
// year/month directory as needed. Both writes go through a temp file and
// rename so a crash never leaves a half-written post.
func Save(r *Rendered, baseDir string) (string, error) {
	dir := filepath.Join(baseDir, "posts", r.Year, r.Month)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating post dir: %w", err)
	}

	htmlPath := filepath.Join(dir, r.Slug+".html")
	if err := writeAtomic(htmlPath, []byte(r.HTML)); err != nil {
		return "", fmt.Errorf("writing post: %w", err)
	}

	metaBytes, err := json.MarshalIndent(r.Meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}
	metaPath := filepath.Join(dir, r.Slug+".meta.json")
	if err := writeAtomic(metaPath, metaBytes); err != nil {
		return "", fmt.Errorf("writing metadata: %w", err)
	}

	return htmlPath, nil
}

// LoadLogo reads the base64 logo blob, returning "" when the file is absent
// so posts render without a hero image rather than failing.
func LoadLogo(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
