package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/config"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/store"
)

var (
	flagPruneOlderThan string
	flagRecentLimit    int
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old items from the news archive",
	Long: `Delete archived news items older than the retention period and reclaim
disk space.

Uses the retention value from config (default: 90d) unless overridden with
--older-than.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		db, err := store.Open(config.ArchivePath())
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer db.Close()

		retention := cfg.RetentionDuration()
		if flagPruneOlderThan != "" {
			d, err := parseSince(flagPruneOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			retention = d
		}

		deleted, err := db.Prune(retention, time.Now())
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}

		if deleted == 0 {
			fmt.Println("Nothing to prune.")
		} else {
			fmt.Printf("Pruned %d item(s) older than %s.\n", deleted, formatDuration(retention))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show news archive statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.ArchivePath()
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer db.Close()

		stats, err := db.Stats(dbPath, time.Now())
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Archive: %s\n", dbPath)
		fmt.Printf("Items: %d\n", stats.Total)
		fmt.Printf("Size: %s\n", formatBytes(stats.Size))
		if stats.OldestAge > 0 {
			fmt.Printf("Oldest: %s ago\n", formatDuration(stats.OldestAge))
		}
		for _, sc := range stats.BySource {
			fmt.Printf("  %-24s %d\n", sc.Source, sc.Count)
		}
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently archived news items",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(config.ArchivePath())
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer db.Close()

		items, err := db.Recent(flagRecentLimit)
		if err != nil {
			return fmt.Errorf("reading archive: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Archive is empty.")
			return nil
		}

		for _, item := range items {
			fmt.Println(headerStyle.Render(item.Title))
			fmt.Println(dimStyle.Render(fmt.Sprintf("  %s  %s", item.Source, item.Link)))
		}
		return nil
	},
}

func init() {
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "", "override retention period (e.g., 30d, 720h)")
	recentCmd.Flags().IntVarP(&flagRecentLimit, "limit", "n", 20, "maximum items to list")
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
