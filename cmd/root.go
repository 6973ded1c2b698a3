package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pathlight",
	Short: "Adaptive learning plan generation and progress analytics",
	Long: `Pathlight turns a learning goal into a personalized multi-day plan,
tracks daily progress against it, and suggests adaptations when the
performance trend drifts. Plans come from an LLM provider when one is
configured and from a deterministic template otherwise.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".pathlight.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
