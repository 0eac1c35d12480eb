package trends

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultMaxAge is the data-cache freshness window used when the caller
// passes no positive window of its own.
const DefaultMaxAge = 12 * time.Hour

// Snapshot is the fully-replaced trending-data cache. It is never partially
// updated: Refresh builds a whole new one and Save swaps the file atomically.
type Snapshot struct {
	Timestamp time.Time  `json:"timestamp"`
	News      []NewsItem `json:"news"`
	Trending  []Keyword  `json:"trending"`
	FetchDate string     `json:"fetch_date"`
}

// Fresh reports whether the snapshot is strictly younger than maxAge at now.
// A non-positive maxAge falls back to DefaultMaxAge.
func (s *Snapshot) Fresh(now time.Time, maxAge time.Duration) bool {
	if s == nil || s.Timestamp.IsZero() {
		return false
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return now.Sub(s.Timestamp) < maxAge
}

// TopTrending returns up to n ranked keywords.
func (s *Snapshot) TopTrending(n int) []Keyword {
	if s == nil || len(s.Trending) == 0 {
		return nil
	}
	if len(s.Trending) > n {
		return s.Trending[:n]
	}
	return s.Trending
}

// RelatedNews returns up to limit news items mentioning the keyword in their
// title or description, case-insensitively.
func (s *Snapshot) RelatedNews(keyword string, limit int) []NewsItem {
	if s == nil {
		return nil
	}
	var out []NewsItem
	for _, item := range s.News {
		if containsFold(item.Title+" "+item.Description, keyword) {
			out = append(out, item)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// LoadSnapshot reads the cache file. A missing file returns (nil, nil).
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data cache: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing data cache %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the snapshot via temp file + rename so a crash mid-write
// never leaves a truncated cache.
func (s *Snapshot) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data cache: %w", err)
	}
	return atomicWrite(path, data)
}

// Build assembles a new snapshot from fetched items at now.
func Build(items []NewsItem, now time.Time) *Snapshot {
	return &Snapshot{
		Timestamp: now,
		News:      items,
		Trending:  ExtractTrending(items),
		FetchDate: now.Format("January 2006"),
	}
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
