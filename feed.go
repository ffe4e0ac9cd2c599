package rawsite

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	atom "github.com/thomas11/atomgenerator"
)

// WriteFeeds generates the site feed (index.xml) and one feed per tag. Feed
// timestamps come from the posts themselves, never from the clock, so
// rebuilding an unchanged site reproduces the feeds byte for byte. A site
// with no posts gets no feeds.
func (s *Site) WriteFeeds(recs []PostRecord) error {
	if len(recs) == 0 {
		slog.Info("no posts, skipping feed generation")
		return nil
	}

	if err := s.writeFeedFile(s.conf.Title, filepath.Join(s.conf.Root, "index.xml"), recs); err != nil {
		return err
	}

	for tag, bucket := range collectTagBuckets(recs) {
		title := fmt.Sprintf("%s - Tag: %s", s.conf.Title, tag)
		path := filepath.Join(s.conf.Root, "tag_"+SanitizeTagName(tag)+".xml")
		if err := s.writeFeedFile(title, path, bucket); err != nil {
			return err
		}
	}
	return nil
}

func (s *Site) writeFeedFile(title, path string, recs []PostRecord) error {
	feed := atom.Feed{
		Title:   title,
		Link:    s.conf.BaseURL,
		PubDate: recs[0].Timestamp,
	}
	// Atom requires an author on the feed or on every entry. Sites without a
	// configured author publish under the site title instead.
	author := s.conf.Author
	if author == "" {
		author = s.conf.Title
	}
	feed.AddAuthor(atom.Author{
		Name: author,
		Uri:  s.conf.AuthorURI,
	})

	for _, r := range recs {
		e := &atom.Entry{
			Title:   r.Title,
			Link:    s.postURL(r),
			PubDate: r.Timestamp,
		}
		if summary := summarizeGeneratedHTML(filepath.Join(s.conf.Root, filepath.FromSlash(r.RelPath))); summary != summaryPlaceholder {
			e.Description = summary
		}
		for _, t := range r.Tags {
			e.AddCategory(atom.Category{Term: t})
		}
		feed.AddEntry(e)
	}

	if errs := feed.Validate(); len(errs) > 0 {
		for _, e := range errs {
			slog.Warn("invalid feed", "feed", path, "error", e)
		}
		return errs[0]
	}

	xml, err := feed.GenXml()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, xml, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}

func (s *Site) postURL(r PostRecord) string {
	base := s.conf.BaseURL
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + r.RelPath
}
