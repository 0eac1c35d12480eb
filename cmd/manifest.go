package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/config"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/manifest"
)

var flagManifestVerbose bool

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Rebuild posts/posts.json from the post files on disk",
	Long: `Walk every post under posts/, read its metadata sidecar (scraping the
HTML for legacy posts without one), and rewrite the manifest the blog's
index page reads. The newest post is marked featured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		root := resolveBlogRoot(cfg)

		m, err := manifest.Build(root, time.Now())
		if err != nil {
			return err
		}

		if flagManifestVerbose {
			for _, p := range m.Posts {
				marker := " "
				if p.Featured {
					marker = "*"
				}
				fmt.Println(dimStyle.Render(fmt.Sprintf("%s %s  %-16s %s", marker, p.Date, p.CategorySlug, p.Title)))
			}
		}

		path, err := manifest.Write(m, root)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("Wrote %s (%d posts)", path, m.Count)))
		return nil
	},
}

func init() {
	manifestCmd.Flags().BoolVarP(&flagManifestVerbose, "verbose", "v", false, "list every indexed post")
}
