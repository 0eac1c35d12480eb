package schedule

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/trends"
)

// ErrCatalogExhausted means every variation in every category has already
// been published. The caller should surface this instead of retrying.
var ErrCatalogExhausted = errors.New("all catalog topics have been published")

// dynamicChance is the probability of attempting a trend-driven topic when
// fresh trending data is available.
const dynamicChance = 0.30

// relatedNewsLimit caps the headlines attached to a dynamic topic.
const relatedNewsLimit = 3

// TrendData carries the trending context a dynamic topic was built from.
type TrendData struct {
	Keyword     string
	Count       int
	RelatedNews []trends.NewsItem
}

// Topic is a fully-resolved subject for one post.
type Topic struct {
	Category  catalog.Category
	BaseTopic string
	Angle     string
	Title     string
	Subtitle  string
	TitleHash string
	IsDynamic bool
	Trend     *TrendData
}

// SelectNext picks the next topic, mutating rotation state as it goes. With
// trending data present it rolls for a dynamic topic first; when that misses
// or yields nothing usable, it falls back to the evergreen rotation.
func SelectNext(state *State, snapshot *trends.Snapshot, rng *rand.Rand, now time.Time) (*Topic, error) {
	if snapshot != nil && len(snapshot.Trending) > 0 && rng.Float64() < dynamicChance {
		if topic := selectDynamic(state, snapshot, rng, now); topic != nil {
			return topic, nil
		}
	}
	return SelectEvergreen(state, now)
}

// selectDynamic builds a topic around a trending keyword. Returns nil when
// every candidate keyword was recently used or the rendered title was
// already published, letting the caller fall back to evergreen.
func selectDynamic(state *State, snapshot *trends.Snapshot, rng *rand.Rand, now time.Time) *Topic {
	var candidates []trends.Keyword
	for _, kw := range snapshot.TopTrending(5) {
		if !state.recentlyUsed(kw.Term) {
			candidates = append(candidates, kw)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	pick := candidates[rng.Intn(len(candidates))]
	templates := catalog.DynamicTemplates()
	tmpl := templates[rng.Intn(len(templates))]
	title, subtitle := tmpl.Render(pick.Term, now)

	hash := TitleHash(title)
	if state.Published(hash) {
		return nil
	}

	state.rememberTopic(pick.Term)
	return &Topic{
		Category:  tmpl.Category,
		BaseTopic: tmpl.Key,
		Angle:     "trending",
		Title:     title,
		Subtitle:  subtitle,
		TitleHash: hash,
		IsDynamic: true,
		Trend: &TrendData{
			Keyword:     pick.Term,
			Count:       pick.Count,
			RelatedNews: snapshot.RelatedNews(pick.Term, relatedNewsLimit),
		},
	}
}

// SelectEvergreen walks the catalog round-robin: next category, next group
// within it, then the first unpublished variation starting from that group's
// saved offset. Each attempt advances the rotation, so the loop visits every
// group in the catalog at most once before giving up.
func SelectEvergreen(state *State, now time.Time) (*Topic, error) {
	cats := catalog.AllCategories()
	maxAttempts := len(cats) * catalog.MaxGroups()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		catIdx := state.CategoryRotation % len(cats)
		cat := cats[catIdx]
		state.CategoryRotation = catIdx + 1

		groups := catalog.Groups(cat)
		groupKey := string(cat) + "_group"
		groupIdx := state.GroupIndex[groupKey] % len(groups)
		state.GroupIndex[groupKey] = groupIdx + 1
		group := groups[groupIdx]

		templateKey := string(cat) + "_" + group.Template
		start := state.TopicIndex[templateKey]
		for offset := 0; offset < len(group.Variations); offset++ {
			idx := (start + offset) % len(group.Variations)
			v := group.Variations[idx]
			title := refreshYear(v.Title, now)
			hash := TitleHash(title)
			if state.Published(hash) {
				continue
			}
			state.TopicIndex[templateKey] = idx + 1
			return &Topic{
				Category:  cat,
				BaseTopic: group.Template,
				Angle:     v.Angle,
				Title:     title,
				Subtitle:  v.Subtitle,
				TitleHash: hash,
			}, nil
		}
		// Every variation in this group is published; rotation already
		// points at the next category and the next group within this one.
	}
	return nil, ErrCatalogExhausted
}

// refreshYear keeps year-stamped catalog titles current. Variations are
// drafted with "2025" as the year placeholder.
func refreshYear(title string, now time.Time) string {
	return strings.ReplaceAll(title, "2025", strconv.Itoa(now.Year()))
}
