package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathlight/pathlight/internal/enrich"
	"github.com/pathlight/pathlight/internal/planner"
)

var (
	pathsUser    string
	exportFormat string
	exportOutput string
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Manage saved learning paths",
}

var pathsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved learning paths with completion state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := planner.NewStore(database)
		summaries, err := store.List(context.Background(), pathsUser)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No learning paths yet. Run `pathlight generate` to create one.")
			return nil
		}
		for _, s := range summaries {
			fmt.Printf("%s  %-40s %2d days  %-12s %3.0f%%\n", s.ID, s.Goal, s.DurationDays, s.Difficulty, s.CompletionPercent)
		}
		return nil
	},
}

var pathsDeleteCmd = &cobra.Command{
	Use:   "delete <path-id>",
	Short: "Delete a learning path and its progress history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := planner.NewStore(database)
		if err := store.Delete(context.Background(), pathsUser, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", args[0])
		return nil
	},
}

var pathsDuplicateCmd = &cobra.Command{
	Use:   "duplicate <path-id>",
	Short: "Duplicate a learning path to restart it from day one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := planner.NewStore(database)
		dup, err := store.Duplicate(context.Background(), pathsUser, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created %s: %q\n", dup.ID, dup.Goal)
		return nil
	},
}

var pathsExportCmd = &cobra.Command{
	Use:   "export <path-id>",
	Short: "Export a learning path as markdown or HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := planner.NewStore(database)
		path, err := store.Get(context.Background(), pathsUser, args[0])
		if err != nil {
			return err
		}

		content, _, err := enrich.Export(path, enrich.Format(exportFormat))
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = os.Stdout.Write(content)
			return err
		}
		if err := os.WriteFile(exportOutput, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOutput, err)
		}
		fmt.Printf("Wrote %s.\n", exportOutput)
		return nil
	},
}

func init() {
	pathsCmd.PersistentFlags().StringVarP(&pathsUser, "user", "u", "default", "learner identifier")
	pathsExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "export format: markdown or html")
	pathsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file, - for stdout")
	pathsCmd.AddCommand(pathsListCmd, pathsDeleteCmd, pathsDuplicateCmd, pathsExportCmd)
	rootCmd.AddCommand(pathsCmd)
}
