package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thomas11/rawsite/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the starter templates into the content root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		dir := filepath.Join(conf.Root, conf.TemplateDir)
		if err := scaffold.Install(dir); err != nil {
			return err
		}
		fmt.Println("installed templates in", dir)
		return nil
	},
}
