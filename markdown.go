package rawsite

import (
	"github.com/russross/blackfriday/v2"
)

// Heading IDs are disabled so a markdown title renders as a plain <h1> pair
// the title extraction recognizes.
const markdownExtensions = blackfriday.CommonExtensions &^ blackfriday.AutoHeadingIDs

// renderMarkdown converts a markdown fragment source to HTML.
func renderMarkdown(src []byte) string {
	return string(blackfriday.Run(src, blackfriday.WithExtensions(markdownExtensions)))
}

// ParseMarkdownFragment parses a markdown-authored fragment. The source is
// rendered first and the usual extractions run on the resulting HTML, so the
// title comes from the first heading and a RawTags comment passes through the
// renderer untouched. Markdown has no <body> wrapper; the whole rendered
// document is the body.
func ParseMarkdownFragment(raw string) Fragment {
	html := renderMarkdown([]byte(raw))
	return Fragment{
		Title: ExtractTitle(html),
		Tags:  ExtractTags(html),
		Body:  html,
		Raw:   raw,
	}
}
