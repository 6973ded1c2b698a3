package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/pathlight/pathlight/internal/learner"
	"github.com/pathlight/pathlight/internal/planner"
	"github.com/pathlight/pathlight/internal/progress"
	"github.com/pathlight/pathlight/internal/recommend"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the planning and analytics engine
// as tools.
type Server struct {
	orchestrator *planner.Orchestrator
	aggregator   *learner.Aggregator
	paths        *planner.Store
	tracker      *progress.Tracker
	engine       *recommend.Engine
	mcp          *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. engine may
// be nil when no embedder is configured; the recommendation tool is then not
// registered.
func NewServer(orchestrator *planner.Orchestrator, aggregator *learner.Aggregator, paths *planner.Store, tracker *progress.Tracker, engine *recommend.Engine) *Server {
	s := &Server{
		orchestrator: orchestrator,
		aggregator:   aggregator,
		paths:        paths,
		tracker:      tracker,
		engine:       engine,
	}

	s.mcp = server.NewMCPServer(
		"pathlight",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generatePathTool, s.handleGeneratePath)
	s.mcp.AddTool(listPathsTool, s.handleListPaths)
	s.mcp.AddTool(recordProgressTool, s.handleRecordProgress)
	s.mcp.AddTool(getTrendsTool, s.handleGetTrends)
	s.mcp.AddTool(suggestAdaptationsTool, s.handleSuggestAdaptations)
	if s.engine != nil {
		s.mcp.AddTool(getRecommendationsTool, s.handleGetRecommendations)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
