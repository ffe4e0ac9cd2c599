package rawsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Hello", ExtractTitle("<html><h1>Hello</h1></html>"))
	assert.Equal(t, "First", ExtractTitle("<h1>First</h1><h1>Second</h1>"))
	assert.Equal(t, "A &amp; B", ExtractTitle("<h1>A &amp; B</h1>"), "no HTML unescaping")
	assert.Equal(t, "Spread\nOut", ExtractTitle("<h1>Spread\nOut</h1>"))
	assert.Equal(t, UntitledPost, ExtractTitle("<h2>not a title</h2>"))
	assert.Equal(t, UntitledPost, ExtractTitle(""))
}

func TestExtractTags(t *testing.T) {
	assert.Equal(t, []string{"tag1", "tag2", "tag3"}, ExtractTags("<!--RawTags:tag1, tag2 , tag3-->"))
	assert.Equal(t, []string{"a"}, ExtractTags("<!--RawTags:a,,  ,a-->"), "empties and duplicates dropped")
	assert.Equal(t, []string{"Go", "go"}, ExtractTags("<!--RawTags:Go,go-->"), "case-sensitive")

	assert.Empty(t, ExtractTags("<!--RawTags:-->"))
	assert.Empty(t, ExtractTags("<!--RawTags:   -->"))
	assert.Empty(t, ExtractTags("no marker here"))
	assert.NotNil(t, ExtractTags(""))
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "\n<p>Hi</p>\n", ExtractBody("<html><body>\n<p>Hi</p>\n</body></html>"))
	assert.Equal(t, "", ExtractBody("<p>no body tags</p>"))

	// Markers between the body tags are part of the body.
	raw := "<body><p>x</p><!--RawTags:a--></body>"
	assert.Equal(t, "<p>x</p><!--RawTags:a-->", ExtractBody(raw))
}

func TestParseFragmentDefaults(t *testing.T) {
	f := ParseFragment("")
	assert.Equal(t, UntitledPost, f.Title)
	assert.NotNil(t, f.Tags)
	assert.Empty(t, f.Tags)
	assert.Equal(t, "", f.Body)
}

func TestParseFragmentFull(t *testing.T) {
	raw := "<html><head></head>\n<h1>A Post</h1>\n<!--RawTags:go, web-->\n<body>\n<p>Hello</p>\n</body>\n</html>"
	f := ParseFragment(raw)
	assert.Equal(t, "A Post", f.Title)
	assert.Equal(t, []string{"go", "web"}, f.Tags)
	assert.Equal(t, "\n<p>Hello</p>\n", f.Body)
	assert.Equal(t, raw, f.Raw)
}
