package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/post"
)

// Entry is one post in the blog index manifest.
type Entry struct {
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Date         string   `json:"date"`
	Category     string   `json:"category"`
	CategorySlug string   `json:"category_slug"`
	CategoryCSS  string   `json:"category_css"`
	Tags         []string `json:"tags"`
	Filepath     string   `json:"filepath"`
	Slug         string   `json:"slug"`
	ReadTime     int      `json:"read_time"`
	Featured     bool     `json:"featured"`
}

// Manifest is the posts.json document the blog index page consumes.
type Manifest struct {
	Generated string  `json:"generated"`
	Count     int     `json:"count"`
	Posts     []Entry `json:"posts"`
}

var (
	titleRe    = regexp.MustCompile(`<title>(.+?)\s*\|\s*TacRaven`)
	ogTitleRe  = regexp.MustCompile(`property="og:title"\s+content="([^"]+)"`)
	descRe     = regexp.MustCompile(`<meta\s+name="description"\s+content="([^"]*)"`)
	ogDescRe   = regexp.MustCompile(`property="og:description"\s+content="([^"]*)"`)
	dateRe     = regexp.MustCompile(`article:published_time"\s+content="([^"]+)"`)
	subtitleRe = regexp.MustCompile(`class="hero-subtitle"[^>]*>([^<]+)<`)
	heroCatRe  = regexp.MustCompile(`class="hero-category"[^>]*>([^<]+)<`)
	tagRe      = regexp.MustCompile(`class="tag"[^>]*>([^<]+)<`)
	readTimeRe = regexp.MustCompile(`(?i)(\d+)\s*min\s*read`)
	markupRe   = regexp.MustCompile(`<[^>]+>`)
)

// Build scans blogRoot/posts for published articles and assembles the
// manifest, newest first with the newest marked featured. Posts with a
// metadata sidecar are indexed from it; older posts fall back to scraping
// the HTML. A missing posts directory yields an empty manifest rather than
// an error, so a fresh blog gets a valid (if empty) index.
func Build(blogRoot string, now time.Time) (*Manifest, error) {
	entries := []Entry{}

	postsDir := filepath.Join(blogRoot, "posts")
	if _, err := os.Stat(postsDir); err != nil {
		if os.IsNotExist(err) {
			return &Manifest{Generated: now.Format(time.RFC3339), Posts: entries}, nil
		}
		return nil, fmt.Errorf("reading posts directory %s: %w", postsDir, err)
	}
	err := filepath.WalkDir(postsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") || d.Name() == "index.html" {
			return nil
		}
		entry, err := indexPost(blogRoot, path)
		if err != nil {
			return fmt.Errorf("indexing %s: %w", path, err)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].Slug < entries[j].Slug
	})
	if len(entries) > 0 {
		entries[0].Featured = true
	}

	return &Manifest{
		Generated: now.Format(time.RFC3339),
		Count:     len(entries),
		Posts:     entries,
	}, nil
}

// Write saves the manifest to blogRoot/posts/posts.json via temp file and
// rename.
func Write(m *Manifest, blogRoot string) (string, error) {
	postsDir := filepath.Join(blogRoot, "posts")
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating posts dir: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}

	path := filepath.Join(postsDir, "posts.json")
	tmp, err := os.CreateTemp(postsDir, ".posts.json.tmp-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

func indexPost(blogRoot, htmlPath string) (Entry, error) {
	rel, err := filepath.Rel(blogRoot, htmlPath)
	if err != nil {
		rel = htmlPath
	}

	entry := Entry{
		Filepath: filepath.ToSlash(rel),
		Slug:     strings.TrimSuffix(filepath.Base(htmlPath), ".html"),
	}

	sidecar := strings.TrimSuffix(htmlPath, ".html") + ".meta.json"
	if data, err := os.ReadFile(sidecar); err == nil {
		var meta post.Meta
		if err := json.Unmarshal(data, &meta); err == nil && meta.Title != "" {
			cat := catalog.FromDisplayName(meta.Category)
			entry.Title = meta.Title
			entry.Excerpt = meta.Description
			entry.Date = meta.Date
			entry.Category = cat.DisplayName()
			entry.CategorySlug = string(cat)
			entry.CategoryCSS = cat.CSSClass()
			entry.Tags = meta.Tags
			entry.ReadTime = meta.ReadTime
			if entry.ReadTime < 1 {
				entry.ReadTime = 1
			}
			return entry, nil
		}
	}

	html, err := os.ReadFile(htmlPath)
	if err != nil {
		return entry, err
	}
	scrape(&entry, string(html), htmlPath)
	return entry, nil
}

// scrape recovers metadata from the rendered page for posts that predate the
// sidecar files.
func scrape(entry *Entry, html, htmlPath string) {
	if m := titleRe.FindStringSubmatch(html); m != nil {
		entry.Title = strings.TrimSpace(m[1])
	} else if m := ogTitleRe.FindStringSubmatch(html); m != nil {
		entry.Title = strings.TrimSpace(m[1])
	} else {
		entry.Title = titleFromSlug(entry.Slug)
	}

	if m := descRe.FindStringSubmatch(html); m != nil {
		entry.Excerpt = strings.TrimSpace(m[1])
	} else if m := ogDescRe.FindStringSubmatch(html); m != nil {
		entry.Excerpt = strings.TrimSpace(m[1])
	} else if m := subtitleRe.FindStringSubmatch(html); m != nil {
		entry.Excerpt = strings.TrimSpace(m[1])
	}

	if m := dateRe.FindStringSubmatch(html); m != nil {
		entry.Date = strings.TrimSpace(m[1])
	} else {
		entry.Date = dateFromPath(htmlPath)
	}

	cat := catalog.GettingStarted
	if m := heroCatRe.FindStringSubmatch(html); m != nil {
		cat = catalog.FromDisplayName(strings.TrimSpace(m[1]))
	}
	entry.Category = cat.DisplayName()
	entry.CategorySlug = string(cat)
	entry.CategoryCSS = cat.CSSClass()

	for _, m := range tagRe.FindAllStringSubmatch(html, -1) {
		entry.Tags = append(entry.Tags, strings.TrimSpace(m[1]))
	}
	if len(entry.Tags) == 0 {
		entry.Tags = []string{entry.Category, "Cybersecurity"}
	}

	if m := readTimeRe.FindStringSubmatch(html); m != nil {
		entry.ReadTime, _ = strconv.Atoi(m[1])
	}
	if entry.ReadTime < 1 {
		words := len(strings.Fields(markupRe.ReplaceAllString(html, "")))
		entry.ReadTime = int(math.Round(float64(words) / 200))
		if entry.ReadTime < 1 {
			entry.ReadTime = 1
		}
	}
}

// dateFromPath falls back to the first of the month encoded in the
// posts/YYYY/MM/ layout.
func dateFromPath(htmlPath string) string {
	parts := strings.Split(filepath.ToSlash(htmlPath), "/")
	for i, p := range parts {
		if p == "posts" && i+2 < len(parts) {
			return parts[i+1] + "-" + parts[i+2] + "-01"
		}
	}
	return "2025-01-01"
}

func titleFromSlug(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
