package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/config"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/content"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/post"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/schedule"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/store"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/trends"
)

// fetchTimeout bounds the whole feed-refresh batch; individual slow feeds
// just drop out of the snapshot.
const fetchTimeout = 45 * time.Second

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	root := resolveBlogRoot(cfg)
	now := time.Now()

	state, err := schedule.LoadState(cfg.StateFile(root))
	if err != nil {
		return err
	}

	if !flagForce && !schedule.ShouldPostToday(now, state.LastPostDate) {
		days := schedule.DaysUntilNext(now, state.LastPostDate)
		fmt.Println(dimStyle.Render(fmt.Sprintf("Not scheduled today. Next post in %d day(s).", days)))
		return nil
	}

	snapshot, err := refreshSnapshot(cmd.Context(), cfg, root, now)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))
	topic, err := schedule.SelectNext(state, snapshot, rng, now)
	if err != nil {
		if errors.Is(err, schedule.ErrCatalogExhausted) {
			return fmt.Errorf("topic selection: %w", err)
		}
		return err
	}

	introStyle := state.NextIntroStyle()
	structure := state.NextStructure()
	body := content.Assemble(topic, introStyle, now)

	rendered := post.Render(post.Params{
		Title:      topic.Title,
		Subtitle:   topic.Subtitle,
		Category:   topic.Category,
		Content:    body,
		Tags:       post.BuildTags(topic.Category, topic.BaseTopic, topic.IsDynamic),
		Highlight:  post.PickHighlight(topic.Title),
		Date:       now,
		SiteURL:    cfg.SiteURL,
		LogoBase64: post.LoadLogo(filepath.Join(root, "scripts", "logo-base64.txt")),
	})

	printPlan(topic, snapshot, introStyle, structure, rendered)

	if flagPreview {
		fmt.Println(warnStyle.Render("Preview only; nothing written."))
		return nil
	}

	path, err := post.Save(rendered, root)
	if err != nil {
		return err
	}

	state.MarkPublished(topic.TitleHash, now)
	if err := state.Save(cfg.StateFile(root)); err != nil {
		return fmt.Errorf("post written to %s but state not saved: %w", path, err)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Published %s (%d posts total)", path, state.PostCount)))
	return nil
}

// refreshSnapshot loads the trending-data cache and rebuilds it from the
// configured feeds when stale or when --refresh asks for it. Archiving to
// sqlite is best-effort: a broken archive never blocks post generation.
func refreshSnapshot(ctx context.Context, cfg *config.Config, root string, now time.Time) (*trends.Snapshot, error) {
	cachePath := cfg.DataCacheFile(root)
	snapshot, err := trends.LoadSnapshot(cachePath)
	if err != nil {
		return nil, err
	}
	if !flagRefresh && snapshot.Fresh(now, cfg.RefreshDuration()) {
		return snapshot, nil
	}

	sources := cfg.EnabledSources()
	if len(sources) == 0 {
		return snapshot, nil
	}

	fmt.Println(dimStyle.Render(fmt.Sprintf("Refreshing news data from %d sources...", len(sources))))
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	result := trends.FetchAll(fetchCtx, sources, cfg.ResolveUserAgent())
	for _, ferr := range result.Errors {
		fmt.Println(warnStyle.Render("  " + ferr.Error()))
	}
	if len(result.Items) == 0 {
		// Every feed failed; keep whatever stale snapshot we had.
		return snapshot, nil
	}

	snapshot = trends.Build(result.Items, now)
	if err := snapshot.Save(cachePath); err != nil {
		return nil, err
	}

	if db, err := store.Open(config.ArchivePath()); err == nil {
		if err := db.Record(result.Items, now); err != nil {
			fmt.Println(warnStyle.Render("  archive: " + err.Error()))
		}
		db.Close()
	}

	return snapshot, nil
}

func printPlan(topic *schedule.Topic, snapshot *trends.Snapshot, introStyle, structure string, rendered *post.Rendered) {
	kind := "EVERGREEN"
	if topic.IsDynamic {
		kind = "DYNAMIC"
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("[%s] %s", kind, topic.Title)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  category:  %s", topic.Category.DisplayName())))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  style:     %s / %s", introStyle, structure)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  file:      %s", rendered.Filepath)))

	if kws := snapshot.TopTrending(5); len(kws) > 0 {
		terms := make([]string, len(kws))
		for i, kw := range kws {
			terms[i] = fmt.Sprintf("%s (%d)", kw.Term, kw.Count)
		}
		fmt.Println(dimStyle.Render("  trending:  " + strings.Join(terms, ", ")))
	}
}

// resolveBlogRoot prefers the flag, then the config, then the working
// directory.
func resolveBlogRoot(cfg *config.Config) string {
	if flagBlogRoot != "" {
		return flagBlogRoot
	}
	if cfg.BlogRoot != "" {
		return cfg.BlogRoot
	}
	return "."
}
