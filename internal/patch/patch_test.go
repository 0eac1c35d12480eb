package patch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const navHTML = `<nav class="nav">
    <a href="index.html">Home</a>
    <a href="pricing.html">Pricing</a>
    <a href="contact.html" class="nav-cta">Contact</a>
</nav>`

func writeSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"index.html":   navHTML,
		"about.html":   navHTML,
		"privacy.html": `<nav><a href="index.html">Home</a></nav>`,
		"notes.txt":    "Pricing",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRunDryRunReportsWithoutWriting(t *testing.T) {
	root := writeSite(t)

	res, err := Run(root, []Rule{NavPrograms()}, false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Scanned != 3 {
		t.Errorf("expected 3 html files scanned, got %d", res.Scanned)
	}
	if len(res.Changes) != 2 {
		t.Fatalf("expected 2 would-change files, got %d", len(res.Changes))
	}
	for _, c := range res.Changes {
		if c.Applied {
			t.Errorf("dry run must not mark %s applied", c.Path)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), ">Pricing<") {
		t.Error("dry run must leave files untouched")
	}
}

func TestRunApplyModifiesReportedFiles(t *testing.T) {
	root := writeSite(t)

	res, err := Run(root, []Rule{NavPrograms()}, true)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Changes) != 2 {
		t.Fatalf("expected 2 changed files, got %d", len(res.Changes))
	}
	for _, c := range res.Changes {
		if !c.Applied {
			t.Errorf("apply run should mark %s applied", c.Path)
		}
		data, err := os.ReadFile(c.Path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), ">Programs<") {
			t.Errorf("%s not rewritten", c.Path)
		}
		if !strings.Contains(string(data), `href="pricing.html"`) {
			t.Errorf("%s link target must stay pricing.html", c.Path)
		}
	}

	// Second run finds nothing left to do.
	res, err = Run(root, []Rule{NavPrograms()}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Changes) != 0 {
		t.Errorf("re-run should be a no-op, got %d changes", len(res.Changes))
	}
}

func TestRunIgnoresNonHTML(t *testing.T) {
	root := writeSite(t)
	if _, err := Run(root, []Rule{NavPrograms()}, true); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(root, "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Pricing" {
		t.Error("non-HTML files must not be touched")
	}
}

func TestRunMissingRoot(t *testing.T) {
	if _, err := Run(filepath.Join(t.TempDir(), "missing"), []Rule{NavPrograms()}, false); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestNavRuleCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	html := `<a href='PRICING.html' class="x"> pricing </a>`
	if err := os.WriteFile(filepath.Join(root, "page.html"), []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Run(root, []Rule{NavPrograms()}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Changes) != 1 {
		t.Fatalf("expected case-insensitive match, got %d changes", len(res.Changes))
	}
	data, _ := os.ReadFile(filepath.Join(root, "page.html"))
	if !strings.Contains(string(data), "Programs") {
		t.Error("expected Programs label after apply")
	}
}

func TestBuiltinRules(t *testing.T) {
	rules := BuiltinRules()
	if _, ok := rules["nav-programs"]; !ok {
		t.Error("nav-programs rule missing from builtins")
	}
}
