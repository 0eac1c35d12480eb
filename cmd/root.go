package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagPreview  bool
	flagForce    bool
	flagRefresh  bool
	flagConfig   string
	flagBlogRoot string
)

var rootCmd = &cobra.Command{
	Use:   "blogsmith",
	Short: "Scheduled blog post generator for the TacRaven careers blog",
	Long: `blogsmith generates the next scheduled careers post: it picks an unused
topic from the catalog (or a trending one from live feeds), assembles the
article, renders the post page, and records the publication in the
scheduler state.

Designed to run from cron every other day; it exits quietly when no post
is due.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().BoolVar(&flagPreview, "preview", false, "generate without saving the post or advancing state")
	rootCmd.Flags().BoolVar(&flagForce, "force", false, "generate now regardless of schedule")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "force refresh of news/trend data")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagBlogRoot, "blog-root", "", "blog repository root (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recentCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blogsmith %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// parseSince parses durations like "7d", "24h", "30m". The "Nd" day form is
// sugar on top of time.ParseDuration.
func parseSince(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
