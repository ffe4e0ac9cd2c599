package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <path>",
	Short: "Create a fragment from the skeleton if needed and build its page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}
		path := args[0]
		if err := site.NewPost(path); err != nil {
			return err
		}
		if err := site.BuildPost(path); err != nil {
			return err
		}
		fmt.Println("built page for", path)
		fmt.Println("note: indexes are not updated by single-post builds; run 'rawsite rebuild'")
		return nil
	},
}
