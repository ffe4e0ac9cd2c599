package rawsite

import (
	"os"
	"regexp"
	"strings"
)

// Summaries on the main index come from the generated HTML of a post, not
// from its raw fragment, so what the index shows is exactly what the page
// shows.
const (
	summaryMaxLen      = 300
	summaryEllipsis    = "..."
	summaryPlaceholder = "(No summary available yet; rebuild the site to generate one.)"
)

var (
	hrRe      = regexp.MustCompile(`(?i)<hr\s*/?>`)
	htmlTagRe = regexp.MustCompile(`(?s)<[^>]*>`)
)

// summarizeGeneratedHTML extracts a plain-text summary from a generated post
// page: its body up to the first horizontal rule, tags stripped, truncated to
// summaryMaxLen runes. When the page has not been generated yet it returns
// the placeholder.
func summarizeGeneratedHTML(htmlPath string) string {
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		return summaryPlaceholder
	}

	body := ExtractBody(string(data))
	if loc := hrRe.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}

	text := strings.TrimSpace(htmlTagRe.ReplaceAllString(body, ""))
	runes := []rune(text)
	if len(runes) > summaryMaxLen {
		return string(runes[:summaryMaxLen]) + summaryEllipsis
	}
	return text
}
