package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathlight/pathlight/internal/llm"
	mcpserver "github.com/pathlight/pathlight/internal/mcp"
	"github.com/pathlight/pathlight/internal/recommend"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing plan
generation, progress tracking and recommendation tools for AI agents.`,
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

		// Stdout carries the MCP protocol; warnings go to stderr.
		var provider llm.Provider
		if p, err := createProviderFromConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\nGeneration will use the template fallback.\n", err)
		} else {
			provider = p
		}

		aggregator, orchestrator, pathStore, tracker := buildEngine(cfg, database, provider)

		var engine *recommend.Engine
		if embedder, err := createEmbedderFromConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\nThe recommendation tool is disabled.\n", err)
		} else {
			engine, err = recommend.NewEngine(embedder, pathStore, nil)
			if err != nil {
				return fmt.Errorf("building recommendation engine: %w", err)
			}
		}

		mcpserver.Version = Version
		fmt.Fprintln(os.Stderr, "pathlight MCP server started on stdio")

		srv := mcpserver.NewServer(orchestrator, aggregator, pathStore, tracker, engine)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
