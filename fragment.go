package rawsite

import (
	"regexp"
	"strings"
)

// UntitledPost is the title given to fragments without an <h1>.
const UntitledPost = "Untitled Post"

// Fragments are author-controlled HTML, so regex extraction is sufficient.
// Each marker gets its own compiled pattern so the extractions can be tested
// in isolation.
var (
	titleRe = regexp.MustCompile(`(?is)<h1>(.*?)</h1>`)
	tagsRe  = regexp.MustCompile(`(?s)<!--RawTags:(.*?)-->`)
	bodyRe  = regexp.MustCompile(`(?is)<body>(.*?)</body>`)
)

// Fragment is one parsed content file before templating.
type Fragment struct {
	Title string
	Tags  []string
	Body  string
	Raw   string
}

// ExtractTitle returns the inner text of the first <h1> pair, verbatim, or
// UntitledPost when there is none.
func ExtractTitle(raw string) string {
	if m := titleRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return UntitledPost
}

// ExtractTags returns the comma-separated values of the first
// <!--RawTags:...--> marker, trimmed, with empties and duplicates dropped.
// The result is never nil.
func ExtractTags(raw string) []string {
	tags := []string{}
	m := tagsRe.FindStringSubmatch(raw)
	if m == nil {
		return tags
	}
	seen := make(map[string]bool)
	for _, t := range strings.Split(m[1], ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// ExtractBody returns the content of the first <body>...</body> pair,
// including any markers or comments between the tags, or "" when there is no
// such pair.
func ExtractBody(raw string) string {
	if m := bodyRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// ParseFragment parses one raw content file. It is pure and tolerant: any
// input, including the empty string, yields a Fragment with defaults filled
// in.
func ParseFragment(raw string) Fragment {
	return Fragment{
		Title: ExtractTitle(raw),
		Tags:  ExtractTags(raw),
		Body:  ExtractBody(raw),
		Raw:   raw,
	}
}
