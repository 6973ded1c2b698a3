package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathlight/pathlight/internal/advisor"
	"github.com/pathlight/pathlight/internal/progress"
)

var (
	progressUser         string
	progressDay          int
	progressCompleted    bool
	progressTime         int
	progressDifficulty   int
	progressSatisfaction int
)

var progressCmd = &cobra.Command{
	Use:   "progress <path-id>",
	Short: "Record a day's progress on a learning path",
	Long: `Records completion, time spent and ratings for one day of a path,
then prints the updated performance trend and any adaptation suggestions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathID := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		_, _, _, tracker := buildEngine(cfg, database, nil)
		ctx := context.Background()

		trend, err := tracker.Record(ctx, progressUser, pathID, progressDay, progress.Fields{
			Completed:        progressCompleted,
			TimeSpent:        progressTime,
			DifficultyRating: progressDifficulty,
			Satisfaction:     progressSatisfaction,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded day %d.\n", progressDay)
		fmt.Printf("Trend over the last %d day(s): %.0f%% completion, %.0f min/day, difficulty %.1f/5.\n",
			trend.DaysAnalyzed, trend.CompletionRate, trend.AvgTimeSpent, trend.AvgDifficulty)

		suggestions := advisor.Suggest(trend)
		if len(suggestions) == 0 {
			fmt.Println("No adaptations suggested.")
			return nil
		}
		fmt.Println("\nSuggestions:")
		for _, s := range suggestions {
			fmt.Printf("  [%s] %s: %s\n", s.Priority, s.Description, s.Action)
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().StringVarP(&progressUser, "user", "u", "default", "learner identifier")
	progressCmd.Flags().IntVarP(&progressDay, "day", "d", 1, "day number being reported")
	progressCmd.Flags().BoolVar(&progressCompleted, "completed", false, "mark the day as completed")
	progressCmd.Flags().IntVar(&progressTime, "time", 0, "minutes spent")
	progressCmd.Flags().IntVar(&progressDifficulty, "difficulty", 3, "perceived difficulty, 1-5")
	progressCmd.Flags().IntVar(&progressSatisfaction, "satisfaction", 3, "satisfaction, 1-5")
	rootCmd.AddCommand(progressCmd)
}
