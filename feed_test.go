package rawsite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A site without a configured author must still produce valid feeds; the
// site title stands in as the feed author.
func TestFeedsWithoutConfiguredAuthor(t *testing.T) {
	site := newTestSite(t)
	require.Empty(t, site.Config().Author)

	writeTestFragment(t, site, "a.htmraw", "A", "go", "<p>first</p>",
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	writeTestFragment(t, site, "b.htmraw", "B", "", "<p>second</p>",
		time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC))

	report, err := site.RebuildAll()
	require.NoError(t, err)
	assert.Empty(t, report.Errors)

	feed := readOutput(t, site, "index.xml")
	assert.Contains(t, feed, "<name>Test Site</name>")
	assert.Contains(t, feed, "<title>B</title>")

	tagFeed := readOutput(t, site, "tag_go.xml")
	assert.Contains(t, tagFeed, "<name>Test Site</name>")
	assert.Contains(t, tagFeed, "<title>A</title>")
}

func TestFeedsUseConfiguredAuthor(t *testing.T) {
	site := newTestSite(t)
	site.Config().Author = "Ada"

	writeTestFragment(t, site, "a.htmraw", "A", "", "<p>hi</p>",
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	report, err := site.RebuildAll()
	require.NoError(t, err)
	assert.Empty(t, report.Errors)
	assert.Contains(t, readOutput(t, site, "index.xml"), "<name>Ada</name>")
}

func TestFeedsSkippedWhenNoPosts(t *testing.T) {
	site := newTestSite(t)

	require.NoError(t, site.WriteFeeds(nil))
	_, err := os.Stat(filepath.Join(site.Config().Root, "index.xml"))
	assert.True(t, os.IsNotExist(err))
}
