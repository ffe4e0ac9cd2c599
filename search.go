package rawsite

import (
	"fmt"
	"log/slog"
	"strings"
)

// searchEngines maps an engine name to its query endpoint and the hidden form
// field that scopes results to one site. Bing has no dedicated site field; it
// concatenates repeated q parameters, so the scope rides in a hidden q value
// with a site: prefix.
var searchEngines = map[string]struct {
	action     string
	siteField  string
	sitePrefix string
}{
	"duckduckgo": {"https://duckduckgo.com/", "sites", ""},
	"google":     {"https://www.google.com/search", "sitesearch", ""},
	"bing":       {"https://www.bing.com/search", "q", "site:"},
}

// BuildSearchBox returns the site-scoped search form for the configured
// engine, or "" when no engine is configured or the engine is unknown.
func BuildSearchBox(conf *SiteConfig) string {
	name := strings.ToLower(strings.TrimSpace(conf.SearchEngine))
	if name == "" {
		return ""
	}
	engine, ok := searchEngines[name]
	if !ok {
		slog.Warn("unknown search engine, omitting search box", "engine", conf.SearchEngine)
		return ""
	}

	site := siteHost(conf.BaseURL)
	var b strings.Builder
	fmt.Fprintf(&b, "<form class=\"searchbox\" method=\"get\" action=%q>", engine.action)
	if site != "" {
		fmt.Fprintf(&b, "<input type=\"hidden\" name=%q value=%q>", engine.siteField, engine.sitePrefix+site)
	}
	fmt.Fprintf(&b, "<input type=\"text\" name=\"q\" size=\"%d\">", conf.SearchWidth)
	b.WriteString("<input type=\"submit\" value=\"Search\"></form>")
	return b.String()
}

// siteHost strips the scheme and any path from a base URL, leaving the host
// the search engines expect in their site-scope fields.
func siteHost(baseURL string) string {
	s := strings.TrimSpace(baseURL)
	if i := strings.Index(s, "://"); i != -1 {
		s = s[i+3:]
	}
	if i := strings.IndexByte(s, '/'); i != -1 {
		s = s[:i]
	}
	return s
}
