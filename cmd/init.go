package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pathlight/pathlight/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize pathlight configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure pathlight and generates a .pathlight.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
