package main

import (
	"github.com/spf13/cobra"

	"github.com/thomas11/rawsite"
	"github.com/thomas11/rawsite/internal/ui"
)

var (
	cfgFile     string
	contentRoot string
	interactive bool
)

var rootCmd = &cobra.Command{
	Use:           "rawsite",
	Short:         "Static site generator for raw HTML content fragments",
	Long:          "rawsite turns a tree of raw HTML content fragments into a complete static site: post pages, a chronological archive, tag indexes, a home page, feeds and a sitemap.",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		if interactive {
			site, err := loadSite()
			if err != nil {
				return err
			}
			return ui.Run(site)
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default rawsite.yaml in the current directory)")
	rootCmd.PersistentFlags().StringVar(&contentRoot, "root", "", "content root (overrides the config file)")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start the interactive menu")

	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)
}

func loadSite() (*rawsite.Site, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return rawsite.NewSite(conf), nil
}
