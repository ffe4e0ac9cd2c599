package rawsite

// Button is one permanent navigation button. A button is only rendered when
// Text, URL and Icon are all present; Tooltip is optional.
type Button struct {
	Text    string `mapstructure:"text"`
	URL     string `mapstructure:"url"`
	Icon    string `mapstructure:"icon"`
	Tooltip string `mapstructure:"tooltip"`
}

// SiteConfig holds all configuration for a rawsite site. It is constructed
// once at startup and passed by pointer; no component reads process-wide
// state. The zero value is usable after setDefaults.
type SiteConfig struct {
	// Root is the content root: fragments live anywhere below it, the
	// template chrome in Root/TemplateDir, and all generated pages are
	// written next to their sources.
	Root string `mapstructure:"root"`

	Title       string `mapstructure:"title"`
	Subtitle    string `mapstructure:"subtitle"`
	BaseURL     string `mapstructure:"base_url"`
	Author      string `mapstructure:"author"`
	AuthorURI   string `mapstructure:"author_uri"`
	BannerImage string `mapstructure:"banner_image"` // blank = no banner block

	TemplateDir        string   `mapstructure:"template_dir"`
	FragmentExtensions []string `mapstructure:"fragment_extensions"`
	AssetDirs          []string `mapstructure:"asset_dirs"`

	Buttons          map[string]Button `mapstructure:"buttons"`
	PermanentButtons []string          `mapstructure:"permanent_buttons"`

	SearchEngine string `mapstructure:"search_engine"`
	SearchWidth  int    `mapstructure:"search_width"`
	// SearchPages is a space-delimited allowlist of page kinds that get the
	// search box.
	SearchPages string `mapstructure:"search_pages"`

	MaxPostsOnIndex int `mapstructure:"max_posts_on_index"`

	// Feed and sitemap generation are on by default; the flags are inverted
	// so the zero-value configuration behaves the same through the library
	// and the CLI.
	SkipFeed    bool `mapstructure:"skip_feed"`
	SkipSitemap bool `mapstructure:"skip_sitemap"`

	ServeAddr string `mapstructure:"serve_addr"`
}

func (c *SiteConfig) setDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Title == "" {
		c.Title = "My Site"
	}
	if c.TemplateDir == "" {
		c.TemplateDir = "cms_config"
	}
	if len(c.FragmentExtensions) == 0 {
		c.FragmentExtensions = []string{".htmraw"}
	}
	if len(c.AssetDirs) == 0 {
		c.AssetDirs = []string{"images0", "css"}
	}
	if c.MaxPostsOnIndex == 0 {
		c.MaxPostsOnIndex = 5
	}
	if c.SearchWidth == 0 {
		c.SearchWidth = 20
	}
	if c.SearchPages == "" {
		c.SearchPages = "home post tag"
	}
	if c.ServeAddr == "" {
		c.ServeAddr = ":9999"
	}
}
