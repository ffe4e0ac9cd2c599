package rawsite

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
)

// DetermineDepth reports how many directory levels filePath's containing
// directory sits below siteRoot. A file directly in the root has depth 0.
// Comparison is case-insensitive to match the on-disk heritage of the site
// layout. A path that cannot be canonicalized or does not lie under the root
// yields depth 0 with a warning; callers then emit root-relative links, which
// is the least wrong option.
func DetermineDepth(filePath, siteRoot string) int {
	absFile, err := filepath.Abs(filePath)
	if err != nil {
		slog.Warn("cannot canonicalize path, assuming depth 0", "path", filePath, "error", err)
		return 0
	}
	absRoot, err := filepath.Abs(siteRoot)
	if err != nil {
		slog.Warn("cannot canonicalize site root, assuming depth 0", "root", siteRoot, "error", err)
		return 0
	}

	dir := filepath.Dir(absFile)
	if len(dir) < len(absRoot) || !strings.EqualFold(dir[:len(absRoot)], absRoot) {
		slog.Warn("path is outside the site root", "path", filePath, "root", siteRoot)
		return 0
	}
	rest := dir[len(absRoot):]
	if rest != "" && rest[0] != filepath.Separator {
		// Prefix match ended mid-segment, e.g. root /a/b against /a/bc.
		slog.Warn("path is outside the site root", "path", filePath, "root", siteRoot)
		return 0
	}

	rest = strings.Trim(rest, string(filepath.Separator))
	if rest == "" {
		return 0
	}
	return len(strings.Split(rest, string(filepath.Separator)))
}

// parentPrefix is the token prepended once per depth level.
const parentPrefix = "../"

// assetRefPattern matches an href/src value that starts with the given asset
// directory, inside the tags we generate. Group 1 is everything up to the
// value, group 2 the quote character, group 3 the character right after the
// directory name (a slash or the closing quote).
func assetRefPattern(dir string) *regexp.Regexp {
	return regexp.MustCompile(
		`((?i)<(?:a|link|img|script|iframe|source)\b[^>]*?(?:href|src)\s*=\s*)(["'])` +
			regexp.QuoteMeta(dir) + `([/"'])`)
}

// AdjustAssetPaths rewrites root-relative references to the site's asset
// directories so they resolve from a page depth levels below the root. Only
// values that begin with exactly one of assetDirs are touched; absolute URLs
// and other folders pass through. At depth 0 the input is returned unchanged.
func AdjustAssetPaths(html string, depth int, assetDirs []string) string {
	if depth <= 0 {
		return html
	}
	up := strings.Repeat(parentPrefix, depth)
	for _, dir := range assetDirs {
		if dir == "" {
			continue
		}
		re := assetRefPattern(dir)
		html = re.ReplaceAllString(html, "${1}${2}"+up+dir+"${3}")
	}
	return html
}
