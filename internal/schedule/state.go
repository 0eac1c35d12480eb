package schedule

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"
)

// State is the scheduler's durable memory across runs. It is loaded once at
// process start, mutated in memory, and written back only after a post has
// been fully generated and saved, so a failed run never advances rotation.
type State struct {
	LastPostDate      string         `json:"last_post_date,omitempty"`
	PublishedPosts    []string       `json:"published_posts"`
	CategoryRotation  int            `json:"category_rotation"`
	GroupIndex        map[string]int `json:"group_index"`
	TopicIndex        map[string]int `json:"topic_index"`
	StyleRotation     int            `json:"style_rotation"`
	StructureRotation int            `json:"structure_rotation"`
	PostCount         int            `json:"post_count"`
	RecentTopics      []string       `json:"recent_topics,omitempty"`
}

// maxRecentTopics bounds the dynamic-topic dedup history.
const maxRecentTopics = 20

// NewState returns an empty state with initialized maps.
func NewState() *State {
	return &State{
		GroupIndex: map[string]int{},
		TopicIndex: map[string]int{},
	}
}

// LoadState reads the state file, returning fresh defaults when it is absent.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("reading state: %w", err)
	}
	s := NewState()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing state %s: %w", path, err)
	}
	if s.GroupIndex == nil {
		s.GroupIndex = map[string]int{}
	}
	if s.TopicIndex == nil {
		s.TopicIndex = map[string]int{}
	}
	return s, nil
}

// Save writes the state via temp file + rename to avoid partial writes.
func (s *State) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
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

// TitleHash is the dedup key for a post title: the first 12 hex chars of the
// md5 of the lowercased title.
func TitleHash(title string) string {
	sum := md5.Sum([]byte(strings.ToLower(title)))
	return fmt.Sprintf("%x", sum)[:12]
}

// Published reports whether a title hash is already in the history.
func (s *State) Published(hash string) bool {
	for _, h := range s.PublishedPosts {
		if h == hash {
			return true
		}
	}
	return false
}

// MarkPublished records a successful post. Call only after the post file has
// been written.
func (s *State) MarkPublished(hash string, now time.Time) {
	s.LastPostDate = now.Format("2006-01-02")
	s.PublishedPosts = append(s.PublishedPosts, hash)
	s.PostCount++
}

// rememberTopic tracks a keyword so dynamic selection avoids reusing it.
func (s *State) rememberTopic(keyword string) {
	s.RecentTopics = append(s.RecentTopics, keyword)
	if len(s.RecentTopics) > maxRecentTopics {
		s.RecentTopics = s.RecentTopics[len(s.RecentTopics)-maxRecentTopics:]
	}
}

func (s *State) recentlyUsed(keyword string) bool {
	for _, t := range s.RecentTopics {
		if strings.EqualFold(t, keyword) {
			return true
		}
	}
	return false
}

// NextIntroStyle advances the intro style rotation and returns the style for
// this run.
func (s *State) NextIntroStyle() string {
	style := catalog.IntroStyles[s.StyleRotation%len(catalog.IntroStyles)]
	s.StyleRotation++
	return style
}

// NextStructure advances the structure rotation and returns the structure
// for this run.
func (s *State) NextStructure() string {
	structure := catalog.ContentStructures[s.StructureRotation%len(catalog.ContentStructures)]
	s.StructureRotation++
	return structure
}
