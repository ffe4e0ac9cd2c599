package rawsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchBox(t *testing.T) {
	conf := &SiteConfig{SearchEngine: "duckduckgo", SearchWidth: 25, BaseURL: "https://example.com/blog"}
	conf.setDefaults()

	form := BuildSearchBox(conf)
	assert.Contains(t, form, "duckduckgo.com")
	assert.Contains(t, form, `value="example.com"`)
	assert.Contains(t, form, `size="25"`)
}

func TestBuildSearchBoxBing(t *testing.T) {
	conf := &SiteConfig{SearchEngine: "bing", BaseURL: "https://example.com"}
	conf.setDefaults()

	form := BuildSearchBox(conf)
	assert.Contains(t, form, "bing.com/search")
	assert.Contains(t, form, `name="q" value="site:example.com"`)
}

func TestBuildSearchBoxDisabled(t *testing.T) {
	conf := &SiteConfig{}
	conf.setDefaults()
	assert.Equal(t, "", BuildSearchBox(conf))

	conf.SearchEngine = "altavista"
	assert.Equal(t, "", BuildSearchBox(conf), "unknown engine yields no form")
}
