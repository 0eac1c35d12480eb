package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/config"
	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/patch"
)

var flagPatchApply bool

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Apply site-wide HTML migrations",
	Long: `Run the built-in find/replace migrations over every HTML file under
the blog root. The default is a dry run that only reports which files
would change; pass --apply to rewrite them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		root := resolveBlogRoot(cfg)

		var rules []patch.Rule
		for _, r := range patch.BuiltinRules() {
			fmt.Println(headerStyle.Render(r.Name) + dimStyle.Render("  "+r.Description))
			rules = append(rules, r)
		}

		res, err := patch.Run(root, rules, flagPatchApply)
		if err != nil {
			return err
		}

		for _, c := range res.Changes {
			if c.Applied {
				fmt.Println(successStyle.Render("  patched  " + c.Path))
			} else {
				fmt.Println(warnStyle.Render("  would patch  " + c.Path))
			}
		}

		if len(res.Changes) == 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("Scanned %d files; nothing to change.", res.Scanned)))
		} else if !flagPatchApply {
			fmt.Println(dimStyle.Render(fmt.Sprintf("Scanned %d files; %d would change. Re-run with --apply.", res.Scanned, len(res.Changes))))
		} else {
			fmt.Println(successStyle.Render(fmt.Sprintf("Scanned %d files; patched %d.", res.Scanned, len(res.Changes))))
		}
		return nil
	},
}

func init() {
	patchCmd.Flags().BoolVar(&flagPatchApply, "apply", false, "write changes instead of reporting them")
}
