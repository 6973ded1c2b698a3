package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathlight/pathlight/internal/learner"
	"github.com/pathlight/pathlight/internal/planner"
	"github.com/pathlight/pathlight/internal/progress"
)

var (
	generateUser       string
	generateDays       int
	generateDifficulty string
	generateStyle      string
)

var generateCmd = &cobra.Command{
	Use:   "generate <goal>",
	Short: "Generate a personalized learning path for a goal",
	Long: `Generates a multi-day learning path for the given goal, personalized
with the learner's stored profile and history. Without a configured LLM
provider the plan comes from the built-in template.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := strings.Join(args, " ")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		provider, err := createProviderFromConfig(cfg)
		if err != nil {
			// Degrade to fallback generation rather than refusing.
			fmt.Fprintf(os.Stderr, "Warning: %v\nUsing template generation.\n", err)
			provider = nil
		}

		aggregator, orchestrator, pathStore, _ := buildEngine(cfg, database, provider)
		ctx := context.Background()

		reporter := progress.NewReporter()
		reporter.Start(3)

		reporter.Update(1, "Building learner context")
		overrides := learner.Overrides{}
		if generateStyle != "" {
			overrides.LearningStyle = learner.LearningStyle(generateStyle)
		}
		lc := aggregator.BuildContext(ctx, generateUser, overrides)

		reporter.Update(2, "Generating plan")
		path, err := orchestrator.Generate(ctx, planner.Request{
			UserID:       generateUser,
			Goal:         goal,
			DurationDays: generateDays,
			Difficulty:   planner.Difficulty(generateDifficulty),
		}, lc)
		if err != nil {
			reporter.Finish()
			return err
		}

		reporter.Update(3, "Saving plan")
		id, err := pathStore.Save(ctx, path)
		if err != nil {
			reporter.Finish()
			return fmt.Errorf("saving path: %w", err)
		}
		reporter.Finish()

		fmt.Printf("Created %d-day path %s (%s generation).\n", path.DurationDays, id, path.Provenance)
		for _, day := range path.DailyPlans {
			marker := " "
			if day.Checkpoint != "" {
				marker = "*"
			}
			fmt.Printf("%s Day %d: %s (%s)\n", marker, day.Day, day.Title, day.EstimatedTime)
		}
		if len(path.Checkpoints) > 0 {
			fmt.Println("\n* adaptive checkpoint")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateUser, "user", "u", "default", "learner identifier")
	generateCmd.Flags().IntVarP(&generateDays, "days", "d", 7, "plan length in days (1-90)")
	generateCmd.Flags().StringVar(&generateDifficulty, "difficulty", "beginner", "difficulty: beginner, intermediate, advanced or expert")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "override learning style: visual, auditory, kinesthetic or mixed")
	rootCmd.AddCommand(generateCmd)
}
