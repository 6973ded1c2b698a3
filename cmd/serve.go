package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathlight/pathlight/internal/embeddings"
	"github.com/pathlight/pathlight/internal/llm"
	"github.com/pathlight/pathlight/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pathlight HTTP API server",
	Long: `Starts the REST API for plan generation, progress tracking, analytics,
adaptation suggestions and topic recommendations.`,
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

		var provider llm.Provider
		if p, err := createProviderFromConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\nGeneration will use the template fallback.\n", err)
		} else {
			provider = p
		}

		var embedder embeddings.Embedder
		if e, err := createEmbedderFromConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\nRecommendations are disabled.\n", err)
		} else {
			embedder = e
		}

		port := servePort
		if port == 0 {
			port = cfg.Port
		}

		srv, err := server.New(server.Config{
			Port:               port,
			AllowAll:           true,
			CheckpointInterval: cfg.Engine.CheckpointInterval,
			TrendWindow:        cfg.Engine.TrendWindow,
			TrendHistory:       cfg.Engine.TrendHistory,
			GenerationTimeout:  time.Duration(cfg.Engine.GenerationTimeoutSeconds) * time.Second,
		}, database, provider, cfg.Model, embedder, nil)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "pathlight v%s starting on port %d\n", Version, port)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (defaults to config)")
	rootCmd.AddCommand(serveCmd)
}
