package rawsite

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"
)

// PostRecord is the per-post view the index builders work from. Records are
// recomputed from the fragments on disk every run; nothing is persisted.
type PostRecord struct {
	Title     string
	RelPath   string // POSIX-style path of the generated page, relative to the root
	Timestamp time.Time
	Summary   string
	Tags      []string
}

func formatDate(d time.Time) string {
	return d.Format("January 2, 2006")
}

func formatDateShort(d time.Time) string {
	return d.Format("Jan 2, 2006")
}

// sortNewestFirst orders records by timestamp descending, breaking ties on
// the relative path so enumeration order never leaks into the output.
func sortNewestFirst(recs []PostRecord) {
	slices.SortFunc(recs, func(a, b PostRecord) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.RelPath, b.RelPath)
	})
}

// collectPostRecords builds one record per readable fragment under the
// content root. Unreadable fragments are skipped with a warning; the pass
// continues.
func (s *Site) collectPostRecords() ([]PostRecord, error) {
	files, err := s.findFragmentFiles()
	if err != nil {
		return nil, err
	}

	recs := make([]PostRecord, 0, len(files))
	for _, f := range files {
		frag, mtime, err := s.readFragment(f)
		if err != nil {
			slog.Warn("skipping fragment", "path", f, "error", err)
			continue
		}
		rel, err := filepath.Rel(s.conf.Root, s.outputPathFor(f))
		if err != nil {
			slog.Warn("skipping fragment outside root", "path", f, "error", err)
			continue
		}
		recs = append(recs, PostRecord{
			Title:     frag.Title,
			RelPath:   filepath.ToSlash(rel),
			Timestamp: mtime,
			Tags:      frag.Tags,
		})
	}
	sortNewestFirst(recs)
	return recs, nil
}

// BuildMainIndex writes index.html with the newest posts and their summaries.
// Summaries are read from each post's generated page, so the index always
// reflects what the post pages actually say.
func (s *Site) BuildMainIndex(recs []PostRecord) error {
	if len(recs) > s.conf.MaxPostsOnIndex {
		recs = recs[:s.conf.MaxPostsOnIndex]
	}

	var b strings.Builder
	if len(recs) == 0 {
		b.WriteString("<p>No posts yet.</p>\n")
	}
	for i, r := range recs {
		if i > 0 {
			b.WriteString("<hr>\n")
		}
		summary := summarizeGeneratedHTML(filepath.Join(s.conf.Root, filepath.FromSlash(r.RelPath)))
		fmt.Fprintf(&b, "<h2><a href=%q>%s</a></h2>\n", r.RelPath, r.Title)
		fmt.Fprintf(&b, "<p>%s</p>\n", summary)
		fmt.Fprintf(&b, "<p class=\"postdate\">%s</p>\n", formatDate(r.Timestamp))
	}

	return s.assemblePage(pagePlan{
		kind:    PageHome,
		title:   s.conf.Title + " - Home",
		body:    b.String(),
		outPath: filepath.Join(s.conf.Root, "index.html"),
	})
}

// BuildArchive writes all_posts.html: every post, newest first, grouped into
// one section per calendar month. The input is already sorted descending, so
// equal consecutive month labels form one group.
func (s *Site) BuildArchive(recs []PostRecord) error {
	var b strings.Builder
	if len(recs) == 0 {
		b.WriteString("<p>No posts yet.</p>\n")
	}

	lastLabel := ""
	for _, r := range recs {
		label := r.Timestamp.Format("January 2006")
		if label != lastLabel {
			if lastLabel != "" {
				b.WriteString("</ul>\n")
			}
			fmt.Fprintf(&b, "<h2>%s</h2>\n<ul>\n", label)
			lastLabel = label
		}
		fmt.Fprintf(&b, "<li><a href=%q>%s</a> &mdash; %s</li>\n", r.RelPath, r.Title, formatDate(r.Timestamp))
	}
	if lastLabel != "" {
		b.WriteString("</ul>\n")
	}

	return s.assemblePage(pagePlan{
		kind:    PageArchive,
		title:   s.conf.Title + " - All Posts",
		body:    b.String(),
		outPath: filepath.Join(s.conf.Root, "all_posts.html"),
	})
}

var nonAlnumRe = regexp.MustCompile(`[^A-Za-z0-9]`)

// SanitizeTagName maps a tag to the stem used in its page filename:
// non-alphanumerics become underscores.
func SanitizeTagName(tag string) string {
	return nonAlnumRe.ReplaceAllString(tag, "_")
}

// TagPageName returns the output filename for one tag's page.
func TagPageName(tag string) string {
	return "tag_" + SanitizeTagName(tag) + ".html"
}

// collectTagBuckets groups records by tag. A post appears once per tag it
// declares; tags with no posts do not exist in the map.
func collectTagBuckets(recs []PostRecord) map[string][]PostRecord {
	buckets := make(map[string][]PostRecord)
	for _, r := range recs {
		for _, t := range r.Tags {
			buckets[t] = append(buckets[t], r)
		}
	}
	for t := range buckets {
		sortNewestFirst(buckets[t])
	}
	return buckets
}

// BuildTagIndexes writes all_tags.html plus one page per tag. The all-tags
// page lists tags alphabetically with post counts; each tag page lists that
// tag's posts, newest first.
func (s *Site) BuildTagIndexes(recs []PostRecord) error {
	buckets := collectTagBuckets(recs)

	names := make([]string, 0, len(buckets))
	for t := range buckets {
		names = append(names, t)
	}
	sort.Strings(names)

	var b strings.Builder
	if len(names) == 0 {
		b.WriteString("<p>No tags found.</p>\n")
	} else {
		b.WriteString("<ul>\n")
		for _, t := range names {
			fmt.Fprintf(&b, "<li><a href=%q>%s</a> (%d posts)</li>\n", TagPageName(t), t, len(buckets[t]))
		}
		b.WriteString("</ul>\n")
	}

	err := s.assemblePage(pagePlan{
		kind:    PageAllTags,
		title:   s.conf.Title + " - All Tags",
		body:    b.String(),
		outPath: filepath.Join(s.conf.Root, "all_tags.html"),
	})
	if err != nil {
		return err
	}

	for _, t := range names {
		var tb strings.Builder
		tb.WriteString("<ul>\n")
		for _, r := range buckets[t] {
			fmt.Fprintf(&tb, "<li><a href=%q>%s</a> &mdash; %s</li>\n", r.RelPath, r.Title, formatDate(r.Timestamp))
		}
		tb.WriteString("</ul>\n")

		err := s.assemblePage(pagePlan{
			kind:    PageTag,
			title:   s.conf.Title + " - Tag: " + t,
			body:    tb.String(),
			outPath: filepath.Join(s.conf.Root, TagPageName(t)),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
