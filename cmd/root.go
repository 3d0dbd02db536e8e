package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gyansetu",
	Short: "Serve and export the GyanSetu website",
	Long: `gyansetu serves the GyanSetu marketing site with a live view channel
that drives the loading intro, tabbed product pages, team cards and the
theme toggle, and exports the same pages as a static site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".gyansetu.yml", "config file path")
}
