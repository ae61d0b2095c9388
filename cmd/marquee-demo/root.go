package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marquee-demo",
	Short: "Box selection demo",
	Long: `marquee-demo opens a window with a selectable container. Press and drag
to select items; hold the pointer near a border to auto-scroll.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML file with selection options")
	rootCmd.PersistentFlags().String("script", "", "YAML gesture script to play back")
	rootCmd.PersistentFlags().Bool("debug", false, "Log gesture transitions to stderr")
	rootCmd.PersistentFlags().Float64("distance", 0, "Drag tolerance in pixels")
	rootCmd.PersistentFlags().Float64("threshold", 100, "Auto-scroll border distance in pixels")
	rootCmd.PersistentFlags().Float64("speed", 1, "Auto-scroll speed multiplier")
	rootCmd.PersistentFlags().String("filter", "", "Selector for selectable items")
}
