package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thomas11/rawsite"
)

// loadConfig builds the immutable site configuration once, at startup. The
// library never reads viper or the environment itself; everything it needs is
// in the SiteConfig it is handed.
func loadConfig() (*rawsite.SiteConfig, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("title", "My Site")
	viper.SetDefault("template_dir", "cms_config")
	viper.SetDefault("fragment_extensions", []string{".htmraw"})
	viper.SetDefault("asset_dirs", []string{"images0", "css"})
	viper.SetDefault("max_posts_on_index", 5)
	viper.SetDefault("search_engine", "")
	viper.SetDefault("search_width", 20)
	viper.SetDefault("search_pages", "home post tag")
	viper.SetDefault("skip_feed", false)
	viper.SetDefault("skip_sitemap", false)
	viper.SetDefault("serve_addr", ":9999")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rawsite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rawsite"))
		}
	}

	viper.SetEnvPrefix("RAWSITE")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()

	var conf rawsite.SiteConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, err
	}
	if contentRoot != "" {
		conf.Root = contentRoot
	}
	return &conf, nil
}
