package sitemap

import (
	"encoding/xml"
	"time"
)

// URL is one sitemap entry
type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// URLSet is the sitemap document root
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Builder accumulates sitemap entries
type Builder struct {
	baseURL string
	urls    []URL
}

// NewBuilder creates a builder rooted at baseURL (no trailing slash)
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: baseURL}
}

// Add appends a page path with its last modification time
func (b *Builder) Add(path string, lastMod time.Time, changeFreq string, priority float64) {
	u := URL{
		Loc:        b.baseURL + path,
		ChangeFreq: changeFreq,
		Priority:   priority,
	}
	if !lastMod.IsZero() {
		u.LastMod = lastMod.UTC().Format("2006-01-02")
	}
	b.urls = append(b.urls, u)
}

// Build marshals the accumulated entries into sitemap XML
func (b *Builder) Build() ([]byte, error) {
	set := URLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  b.urls,
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
