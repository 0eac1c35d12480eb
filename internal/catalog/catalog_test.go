package catalog

import (
	"strings"
	"testing"
	"time"
)

func TestAllCategoriesOrder(t *testing.T) {
	cats := AllCategories()
	if len(cats) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(cats))
	}
	if cats[0] != GettingStarted {
		t.Errorf("expected getting-started first, got %s", cats[0])
	}
	if cats[6] != IndustryTrends {
		t.Errorf("expected industry-trends last, got %s", cats[6])
	}
}

func TestEveryCategoryHasGroups(t *testing.T) {
	for _, c := range AllCategories() {
		groups := Groups(c)
		if len(groups) == 0 {
			t.Errorf("category %s has no topic groups", c)
		}
		for _, g := range groups {
			if g.Template == "" {
				t.Errorf("category %s has a group without a template key", c)
			}
			if len(g.Variations) == 0 {
				t.Errorf("category %s group %s has no variations", c, g.Template)
			}
		}
	}
}

func TestVariationTitlesUnique(t *testing.T) {
	seen := map[string]string{}
	for _, c := range AllCategories() {
		for _, g := range Groups(c) {
			for _, v := range g.Variations {
				key := strings.ToLower(v.Title)
				if prev, dup := seen[key]; dup {
					t.Errorf("duplicate title %q (also in %s)", v.Title, prev)
				}
				seen[key] = string(c)
			}
		}
	}
}

func TestDisplayNameRoundTrip(t *testing.T) {
	for _, c := range AllCategories() {
		if got := FromDisplayName(c.DisplayName()); got != c {
			t.Errorf("FromDisplayName(%q) = %s, want %s", c.DisplayName(), got, c)
		}
	}
	if got := FromDisplayName("nonsense"); got != GettingStarted {
		t.Errorf("unknown display name should default to getting-started, got %s", got)
	}
}

func TestDynamicTemplateRender(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	for _, tmpl := range DynamicTemplates() {
		title, subtitle := tmpl.Render("ransomware", now)
		if title == "" {
			t.Errorf("template %s produced empty title", tmpl.Key)
		}
		if subtitle == "" {
			t.Errorf("template %s produced empty subtitle", tmpl.Key)
		}
	}
}

func TestMarketUpdateUsesDate(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	var tmpl DynamicTemplate
	for _, d := range DynamicTemplates() {
		if d.Key == "market_update" {
			tmpl = d
		}
	}
	title, _ := tmpl.Render("ignored", now)
	if !strings.Contains(title, "March 2026") {
		t.Errorf("expected month/year in title, got %q", title)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ransomware", "Ransomware"},
		{"AI", "Ai"},
		{"zero-day", "Zero-Day"},
		{"supply chain", "Supply Chain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRotationConstants(t *testing.T) {
	if len(IntroStyles) != 5 {
		t.Errorf("expected 5 intro styles, got %d", len(IntroStyles))
	}
	if len(ContentStructures) != 6 {
		t.Errorf("expected 6 content structures, got %d", len(ContentStructures))
	}
	if MaxGroups() < 1 {
		t.Error("MaxGroups should be at least 1")
	}
	if TotalVariations() < 40 {
		t.Errorf("catalog unexpectedly small: %d variations", TotalVariations())
	}
}
