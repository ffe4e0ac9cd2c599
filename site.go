package rawsite

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Site drives the build pipeline for one content root. It owns no state
// beyond the configuration; every build recomputes everything from the
// filesystem.
type Site struct {
	conf *SiteConfig
}

// NewSite returns a Site for the given configuration, filling in defaults.
func NewSite(conf *SiteConfig) *Site {
	conf.setDefaults()
	return &Site{conf: conf}
}

// Config returns the site's configuration.
func (s *Site) Config() *SiteConfig { return s.conf }

// BuildReport summarizes one rebuild run.
type BuildReport struct {
	FragmentsFound     int
	FragmentsProcessed int
	PagesGenerated     int
	Errors             []error
}

func (r *BuildReport) fail(err error) {
	r.Errors = append(r.Errors, err)
}

// findFragmentFiles enumerates content fragments under the root in lexical
// order, excluding everything below the template directory.
func (s *Site) findFragmentFiles() ([]string, error) {
	templateDir := filepath.Join(s.conf.Root, s.conf.TemplateDir)

	var files []string
	err := filepath.WalkDir(s.conf.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("cannot read during discovery", "path", path, "error", err)
			if path == s.conf.Root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path == templateDir {
				return filepath.SkipDir
			}
			return nil
		}
		if s.isFragment(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnresolvablePath, s.conf.Root, err)
	}
	return files, nil
}

func (s *Site) isFragment(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range s.conf.FragmentExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// outputPathFor mirrors a fragment's location with the extension swapped to
// .html.
func (s *Site) outputPathFor(fragmentPath string) string {
	return strings.TrimSuffix(fragmentPath, filepath.Ext(fragmentPath)) + ".html"
}

// readFragment reads and parses one fragment, returning it together with the
// file's modification time. Read failures are reported as ParseSkip so
// callers drop the fragment and continue.
func (s *Site) readFragment(path string) (Fragment, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Fragment{}, time.Time{}, fmt.Errorf("%w: %s: %v", ErrParseSkip, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fragment{}, time.Time{}, fmt.Errorf("%w: %s: %v", ErrParseSkip, path, err)
	}

	raw := string(data)
	if strings.EqualFold(filepath.Ext(path), ".md") {
		return ParseMarkdownFragment(raw), info.ModTime(), nil
	}
	return ParseFragment(raw), info.ModTime(), nil
}

// BuildPost regenerates the page for a single fragment. The output lands
// next to the source with the extension swapped; the body gets a trailing
// tag line when the fragment declares tags.
func (s *Site) BuildPost(fragmentPath string) error {
	frag, _, err := s.readFragment(fragmentPath)
	if err != nil {
		return err
	}

	body := frag.Body
	if len(frag.Tags) > 0 {
		body += "\n<p>Tags: " + strings.Join(frag.Tags, ", ") + "</p>"
	}

	return s.assemblePage(pagePlan{
		kind:    PagePost,
		title:   frag.Title,
		body:    body,
		outPath: s.outputPathFor(fragmentPath),
	})
}

// NewPost creates a fragment at path from the skeleton template unless it
// already exists.
func (s *Site) NewPost(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	skel, err := LoadTemplate(filepath.Join(s.conf.Root, s.conf.TemplateDir, TemplateSkeletonFile))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	if err := os.WriteFile(path, []byte(skel), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	slog.Info("created fragment from skeleton", "path", path)
	return nil
}

// RebuildAll regenerates every page and then the three index artifacts.
// Per-fragment failures are recorded and do not stop the rest; indexes are
// always rebuilt after the pages so summary extraction sees fresh output.
// Only failure to enumerate the content root aborts the run.
func (s *Site) RebuildAll() (*BuildReport, error) {
	files, err := s.findFragmentFiles()
	if err != nil {
		return nil, err
	}

	report := &BuildReport{FragmentsFound: len(files)}
	slog.Info("rebuilding site", "root", s.conf.Root, "fragments", len(files))

	for _, f := range files {
		if err := s.BuildPost(f); err != nil {
			slog.Error("page generation failed", "fragment", f, "error", err)
			report.fail(err)
			continue
		}
		report.FragmentsProcessed++
		report.PagesGenerated++
	}

	recs, err := s.collectPostRecords()
	if err != nil {
		report.fail(err)
		return report, nil
	}

	for _, ib := range []struct {
		name  string
		build func([]PostRecord) error
	}{
		{"main index", s.BuildMainIndex},
		{"archive", s.BuildArchive},
		{"tag indexes", s.BuildTagIndexes},
	} {
		name, build := ib.name, ib.build
		if err := build(recs); err != nil {
			slog.Error("index generation failed", "index", name, "error", err)
			report.fail(err)
		} else {
			report.PagesGenerated++
		}
	}

	if !s.conf.SkipFeed {
		if err := s.WriteFeeds(recs); err != nil {
			slog.Error("feed generation failed", "error", err)
			report.fail(err)
		}
	}
	if !s.conf.SkipSitemap {
		if err := s.WriteSitemap(recs); err != nil {
			slog.Error("sitemap generation failed", "error", err)
			report.fail(err)
		}
	}

	slog.Info("rebuild complete",
		"found", report.FragmentsFound,
		"processed", report.FragmentsProcessed,
		"generated", report.PagesGenerated,
		"errors", len(report.Errors))
	return report, nil
}
