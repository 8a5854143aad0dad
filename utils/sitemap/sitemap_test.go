package sitemap

import (
	"strings"
	"testing"
	"time"
)

func TestBuilderBuild(t *testing.T) {
	b := NewBuilder("https://example.com")
	b.Add("/", time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), "daily", 1.0)
	b.Add("/category/krishna", time.Time{}, "weekly", 0.8)

	out, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	xml := string(out)
	if !strings.HasPrefix(xml, "<?xml") {
		t.Error("output missing XML header")
	}
	if !strings.Contains(xml, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Error("output missing sitemap namespace")
	}
	if !strings.Contains(xml, "<loc>https://example.com/</loc>") {
		t.Error("output missing root url")
	}
	if !strings.Contains(xml, "<loc>https://example.com/category/krishna</loc>") {
		t.Error("output missing category url")
	}
	if !strings.Contains(xml, "<lastmod>2024-06-15</lastmod>") {
		t.Error("output missing lastmod for dated entry")
	}
	if strings.Count(xml, "<lastmod>") != 1 {
		t.Error("zero-time entry should not carry a lastmod")
	}
	if !strings.Contains(xml, "<changefreq>daily</changefreq>") {
		t.Error("output missing changefreq")
	}
}

func TestBuilderEmpty(t *testing.T) {
	out, err := NewBuilder("https://example.com").Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(string(out), "urlset") {
		t.Error("empty sitemap should still contain the urlset root")
	}
}
