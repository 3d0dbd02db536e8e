package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gyansetu/website/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a gyansetu config file with an interactive wizard",
	Long:  `Runs an interactive wizard and writes the answers to the config file (default .gyansetu.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (port %d, export to %s)\n", cfgFile, cfg.Server.Port, cfg.Export.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
