package rawsite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildAllCounts(t *testing.T) {
	site := newTestSite(t)
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	writeTestFragment(t, site, "a.htmraw", "A", "go", "<p>a</p>", base)
	writeTestFragment(t, site, "sub/b.htmraw", "B", "", "<p>b</p>", base.AddDate(0, 0, 1))

	report, err := site.RebuildAll()
	require.NoError(t, err)

	assert.Equal(t, 2, report.FragmentsFound)
	assert.Equal(t, 2, report.FragmentsProcessed)
	assert.Empty(t, report.Errors)

	for _, out := range []string{"a.html", "sub/b.html", "index.html", "all_posts.html", "all_tags.html", "tag_go.html", "index.xml", "sitemap.xml"} {
		_, err := os.Stat(filepath.Join(site.conf.Root, filepath.FromSlash(out)))
		assert.NoError(t, err, out)
	}
}

func TestRebuildAllSkipsTemplateDir(t *testing.T) {
	site := newTestSite(t)
	// A stray fragment inside the template directory must not become a post.
	tmpl := filepath.Join(site.conf.Root, site.conf.TemplateDir, "stray.htmraw")
	require.NoError(t, os.WriteFile(tmpl, []byte("<h1>Stray</h1><body>x</body>"), 0o644))

	report, err := site.RebuildAll()
	require.NoError(t, err)
	assert.Equal(t, 0, report.FragmentsFound)
}

func TestRebuildAllIdempotent(t *testing.T) {
	site := newTestSite(t)
	site.conf.Author = "Tester"
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	writeTestFragment(t, site, "one.htmraw", "One", "x,y", "<p>one</p>", base)
	writeTestFragment(t, site, "deep/two.htmraw", "Two", "y", "<p>two</p>", base.AddDate(0, 0, 3))

	_, err := site.RebuildAll()
	require.NoError(t, err)
	first := snapshotOutputs(t, site)

	// Generated outputs change the tree's mtimes; a second run must still
	// reproduce every file byte for byte.
	_, err = site.RebuildAll()
	require.NoError(t, err)
	second := snapshotOutputs(t, site)

	assert.Equal(t, first, second)
}

func snapshotOutputs(t *testing.T, site *Site) map[string]string {
	t.Helper()
	outputs := make(map[string]string)
	err := filepath.Walk(site.conf.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".html" && ext != ".xml" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(site.conf.Root, path)
		outputs[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return outputs
}

func TestRebuildAllIsolatesFragmentFailures(t *testing.T) {
	site := newTestSite(t)
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	writeTestFragment(t, site, "good.htmraw", "Good", "", "<p>ok</p>", base)

	// An unreadable fragment: a symlink pointing nowhere.
	require.NoError(t, os.Symlink(
		filepath.Join(site.conf.Root, "does-not-exist"),
		filepath.Join(site.conf.Root, "bad.htmraw")))

	report, err := site.RebuildAll()
	require.NoError(t, err)

	assert.NotEmpty(t, report.Errors)
	assert.Contains(t, readOutput(t, site, "good.html"), "<p>ok</p>")
	assert.Contains(t, readOutput(t, site, "index.html"), "Good", "indexes still built")
}

func TestNewPostFromSkeleton(t *testing.T) {
	site := newTestSite(t)
	path := filepath.Join(site.conf.Root, "drafts", "new.htmraw")

	require.NoError(t, site.NewPost(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>New Post</h1>")

	// Existing fragments are never overwritten.
	require.NoError(t, os.WriteFile(path, []byte("<h1>Mine</h1>"), 0o644))
	require.NoError(t, site.NewPost(path))
	data, _ = os.ReadFile(path)
	assert.Equal(t, "<h1>Mine</h1>", string(data))
}

func TestOutputPathMirrorsSource(t *testing.T) {
	site := newTestSite(t)
	in := filepath.Join(site.conf.Root, "x", "y.htmraw")
	assert.Equal(t, filepath.Join(site.conf.Root, "x", "y.html"), site.outputPathFor(in))
}

func TestExportSkipsSourcesAndChrome(t *testing.T) {
	site := newTestSite(t)
	writeTestFragment(t, site, "p.htmraw", "P", "", "<p>x</p>", time.Now())
	_, err := site.RebuildAll()
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, site.ExportSite(dest))

	_, err = os.Stat(filepath.Join(dest, "p.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "p.htmraw"))
	assert.True(t, os.IsNotExist(err), "raw fragments stay behind")
	_, err = os.Stat(filepath.Join(dest, site.conf.TemplateDir))
	assert.True(t, os.IsNotExist(err), "template chrome stays behind")
}
