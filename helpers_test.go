package rawsite

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestTemplates(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		TemplateHeaderFile:   "<html><head>\n<link rel=\"stylesheet\" href=\"css/site.css\">\n</head>\n<body>\n",
		TemplateFooterFile:   "</body></html>\n",
		TemplateBeginFile:    "<div id=\"content\">\n",
		TemplateEndFile:      "</div>\n",
		TemplateSkeletonFile: "<html>\n<head></head>\n<!--RawTags:-->\n<body>\n<h1>New Post</h1>\n</body>\n</html>\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestSite(t *testing.T) *Site {
	t.Helper()
	root := t.TempDir()
	conf := &SiteConfig{
		Root:    root,
		Title:   "Test Site",
		BaseURL: "https://example.com",
	}
	site := NewSite(conf)
	writeTestTemplates(t, filepath.Join(root, conf.TemplateDir))
	return site
}

// writeTestFragment writes a .htmraw fragment under the site root and pins
// its modification time.
func writeTestFragment(t *testing.T, site *Site, rel, title, tags, body string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(site.conf.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	content := "<html><head></head>\n<h1>" + title + "</h1>\n"
	if tags != "" {
		content += "<!--RawTags:" + tags + "-->\n"
	}
	content += "<body>\n" + body + "\n</body>\n</html>\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	return path
}

func readOutput(t *testing.T, site *Site, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(site.conf.Root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}
