package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Regenerate every page and all index artifacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}
		report, err := site.RebuildAll()
		if err != nil {
			return err
		}
		fmt.Printf("%d fragments found, %d processed, %d pages generated, %d errors\n",
			report.FragmentsFound, report.FragmentsProcessed, report.PagesGenerated, len(report.Errors))
		if len(report.Errors) > 0 {
			return fmt.Errorf("rebuild finished with %d errors", len(report.Errors))
		}
		return nil
	},
}
