package trends

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mmcdole/gofeed"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/config"
)

// maxItemsPerFeed caps how many entries a single feed contributes.
const maxItemsPerFeed = 10

// NewsItem is one headline pulled from a feed. Date keeps the feed's own
// string form so the snapshot round-trips without timezone games.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Source      string `json:"source"`
}

// Fetcher pulls news items from one configured source.
type Fetcher interface {
	Fetch(ctx context.Context, source config.Source) ([]NewsItem, error)
}

type FeedFetcher struct {
	parser *gofeed.Parser
}

func NewFeedFetcher(userAgent string) *FeedFetcher {
	p := gofeed.NewParser()
	p.UserAgent = userAgent
	return &FeedFetcher{parser: p}
}

func (f *FeedFetcher) Fetch(ctx context.Context, source config.Source) ([]NewsItem, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	items := make([]NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(items) >= maxItemsPerFeed {
			break
		}
		items = append(items, NewsItem{
			Title:       item.Title,
			Link:        item.Link,
			Description: StripHTML(item.Description),
			Date:        item.Published,
			Category:    source.Category,
			Source:      source.Name,
		})
	}
	return items, nil
}

// StripHTML removes tags and collapses whitespace.
func StripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// FetchResult collects items and per-feed failures. A failed feed only
// contributes an error; it never aborts the batch.
type FetchResult struct {
	Items  []NewsItem
	Errors []error
}

// FetchAll pulls every enabled source concurrently.
func FetchAll(ctx context.Context, sources []config.Source, userAgent string) FetchResult {
	var (
		mu     sync.Mutex
		result FetchResult
		wg     sync.WaitGroup
	)

	fetcher := NewFeedFetcher(userAgent)

	for _, src := range sources {
		wg.Add(1)
		go func(s config.Source) {
			defer wg.Done()
			items, err := fetcher.Fetch(ctx, s)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, err)
				return
			}
			result.Items = append(result.Items, items...)
		}(src)
	}

	wg.Wait()
	return result
}
