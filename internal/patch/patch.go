package patch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Rule is one find/replace migration over site HTML.
type Rule struct {
	Name        string
	Description string
	Pattern     *regexp.Regexp
	Replacement string
}

// NavPrograms renames the "Pricing" nav label to "Programs" while leaving
// the pricing.html link target untouched.
func NavPrograms() Rule {
	return Rule{
		Name:        "nav-programs",
		Description: `Rename the "Pricing" nav label to "Programs"`,
		Pattern:     regexp.MustCompile(`(?i)(<a[^>]*href=["']pricing\.html["'][^>]*>)\s*Pricing\s*(</a>)`),
		Replacement: "${1}Programs${2}",
	}
}

// BuiltinRules returns every named migration, keyed for CLI selection.
func BuiltinRules() map[string]Rule {
	rules := map[string]Rule{}
	for _, r := range []Rule{NavPrograms()} {
		rules[r.Name] = r
	}
	return rules
}

// FileChange records one file a run would modify (or did modify).
type FileChange struct {
	Path    string
	Applied bool
}

// Result summarizes a patch run.
type Result struct {
	Scanned int
	Changes []FileChange
}

// Run applies the rules to every .html file under root. With apply false it
// only reports which files would change; with apply true it rewrites exactly
// those files, each through a temp file and rename.
func Run(root string, rules []Rule, apply bool) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("patch root not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("patch root %s is not a directory", root)
	}

	res := &Result{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		res.Scanned++

		original, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		patched := string(original)
		for _, rule := range rules {
			patched = rule.Pattern.ReplaceAllString(patched, rule.Replacement)
		}
		if patched == string(original) {
			return nil
		}

		change := FileChange{Path: path}
		if apply {
			if err := writeAtomic(path, []byte(patched)); err != nil {
				return fmt.Errorf("patching %s: %w", path, err)
			}
			change.Applied = true
		}
		res.Changes = append(res.Changes, change)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
