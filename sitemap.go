package rawsite

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes sitemap.xml at the content root, listing the index
// pages, the tag pages, and every post with its modification date. Output
// order is fixed so rebuilds are reproducible.
func (s *Site) WriteSitemap(recs []PostRecord) error {
	base := s.conf.BaseURL

	urls := []sitemapURL{
		{Loc: joinURL(base, "index.html")},
		{Loc: joinURL(base, "all_posts.html")},
		{Loc: joinURL(base, "all_tags.html")},
	}

	buckets := collectTagBuckets(recs)
	tags := make([]string, 0, len(buckets))
	for t := range buckets {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	for _, t := range tags {
		urls = append(urls, sitemapURL{Loc: joinURL(base, TagPageName(t))})
	}

	for _, r := range recs {
		urls = append(urls, sitemapURL{
			Loc:     joinURL(base, r.RelPath),
			LastMod: r.Timestamp.Format("2006-01-02"),
		})
	}

	doc := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.conf.Root, "sitemap.xml")
	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}

func joinURL(base, rel string) string {
	if base == "" {
		return rel
	}
	if base[len(base)-1] == '/' {
		return base + rel
	}
	return base + "/" + rel
}
