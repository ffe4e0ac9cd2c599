package rawsite

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// PageKind selects the per-type assembly configuration: which title suffix a
// page gets and which header slots are filled.
type PageKind string

const (
	PagePost    PageKind = "post"
	PageHome    PageKind = "home"
	PageArchive PageKind = "archive"
	PageAllTags PageKind = "all_tags"
	PageTag     PageKind = "tag"
)

// pagePlan describes one output page to assemble.
type pagePlan struct {
	kind    PageKind
	title   string // full <title> text
	body    string // goes between the begin and end templates
	outPath string
}

var headCloseRe = regexp.MustCompile(`(?i)</head>`)

// injectTitle splices the page title into the header template by replacing
// its first closing head tag.
func injectTitle(header, title string) string {
	loc := headCloseRe.FindStringIndex(header)
	if loc == nil {
		return header
	}
	return header[:loc[0]] + "<title>" + title + "</title>" + header[loc[0]:loc[1]] + header[loc[1]:]
}

// searchAllowed gates the search box on the configured space-delimited
// allowlist of page kinds.
func searchAllowed(conf *SiteConfig, kind PageKind) bool {
	for _, k := range strings.Fields(conf.SearchPages) {
		if k == string(kind) {
			return true
		}
	}
	return false
}

// pageControls decides the slot contents for a page kind. Navigation targets
// live at the site root, so pages below it link through the same
// parent-directory prefix the asset rewrite uses.
func (s *Site) pageControls(kind PageKind, depth int) map[string]string {
	up := strings.Repeat(parentPrefix, depth)

	history := fmt.Sprintf("<a class=\"navbutton\" href=\"%sall_posts.html\" title=\"All posts, newest first\">History</a>", up)
	tags := fmt.Sprintf("<a class=\"navbutton\" href=\"%sall_tags.html\" title=\"Posts by tag\">Tags</a>", up)
	rss := fmt.Sprintf("<a class=\"navbutton\" href=\"%sindex.xml\" title=\"Atom feed\">RSS</a>", up)

	fills := make(map[string]string)
	if searchAllowed(s.conf, kind) {
		fills[SlotSecondButton] = BuildSearchBox(s.conf)
	}
	switch kind {
	case PageArchive:
		fills[SlotThirdButton] = tags
		fills[SlotFourthButton] = rss
	case PageAllTags:
		fills[SlotThirdButton] = history
		fills[SlotFourthButton] = rss
	default:
		fills[SlotThirdButton] = history
		fills[SlotFourthButton] = tags
		fills[SlotFifthButton] = rss
	}
	return fills
}

// assemblePage composes and writes one output page: titled header, resolved
// dynamic header, begin, body, end, footer, then the depth-relative asset
// rewrite. Errors abort only this page.
func (s *Site) assemblePage(p pagePlan) error {
	ts, err := LoadTemplateSet(filepath.Join(s.conf.Root, s.conf.TemplateDir))
	if err != nil {
		return err
	}

	depth := DetermineDepth(p.outPath, s.conf.Root)

	dyn := ComposeDynamicHeader(s.conf)
	dyn = resolveSlots(dyn, s.pageControls(p.kind, depth))

	var page strings.Builder
	page.WriteString(injectTitle(ts.Header, p.title))
	page.WriteString(dyn)
	page.WriteString(ts.Begin)
	page.WriteString(p.body)
	page.WriteString(ts.End)
	page.WriteString(ts.Footer)

	out := AdjustAssetPaths(page.String(), depth, s.conf.AssetDirs)

	if err := os.MkdirAll(filepath.Dir(p.outPath), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, p.outPath, err)
	}
	if err := os.WriteFile(p.outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, p.outPath, err)
	}
	return nil
}
