package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pathlight/pathlight/internal/advisor"
	"github.com/pathlight/pathlight/internal/learner"
	"github.com/pathlight/pathlight/internal/planner"
	"github.com/pathlight/pathlight/internal/progress"
)

// handleGeneratePath generates a learning path and persists it.
func (s *Server) handleGeneratePath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user_id"), nil
	}
	goal, err := request.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: goal"), nil
	}

	duration := request.GetInt("duration_days", 7)
	difficulty := planner.Difficulty(request.GetString("difficulty", string(planner.DifficultyBeginner)))

	lc := s.aggregator.BuildContext(ctx, userID, learner.Overrides{})
	path, err := s.orchestrator.Generate(ctx, planner.Request{
		UserID:       userID,
		Goal:         goal,
		DurationDays: duration,
		Difficulty:   difficulty,
	}, lc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	if _, err := s.paths.Save(ctx, path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("saving path: %v", err)), nil
	}

	return mcp.NewToolResultText(formatPath(path)), nil
}

// handleListPaths lists a learner's stored paths.
func (s *Server) handleListPaths(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user_id"), nil
	}

	summaries, err := s.paths.List(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing paths: %v", err)), nil
	}
	if len(summaries) == 0 {
		return mcp.NewToolResultText("No learning paths yet. Use generate_learning_path to create one."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d learning path(s):\n", len(summaries))
	for _, s := range summaries {
		fmt.Fprintf(&sb, "\n- %s (%s)\n  %d days, %s, %.0f%% complete\n", s.Goal, s.ID, s.DurationDays, s.Difficulty, s.CompletionPercent)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleRecordProgress records a day's progress and returns the new trend.
func (s *Server) handleRecordProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user_id"), nil
	}
	pathID, err := request.RequireString("path_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path_id"), nil
	}
	day := request.GetInt("day", 0)
	if day == 0 {
		return mcp.NewToolResultError("missing required parameter: day"), nil
	}

	fields := progress.Fields{
		Completed:        request.GetBool("completed", false),
		TimeSpent:        request.GetInt("time_spent", 0),
		DifficultyRating: request.GetInt("difficulty_rating", 3),
		Satisfaction:     request.GetInt("satisfaction", 3),
	}

	trend, err := s.tracker.Record(ctx, userID, pathID, day, fields)
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no path %q for user %q", pathID, userID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("recording progress: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Recorded day %d.\nCurrent trend over the last %d day(s): %.0f%% completion, %.0f min/day, difficulty %.1f/5.",
		day, trend.DaysAnalyzed, trend.CompletionRate, trend.AvgTimeSpent, trend.AvgDifficulty,
	)), nil
}

// handleGetTrends returns the trend history for a path.
func (s *Server) handleGetTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user_id"), nil
	}
	pathID, err := request.RequireString("path_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path_id"), nil
	}

	trends, err := s.tracker.History(ctx, userID, pathID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading trends: %v", err)), nil
	}
	if len(trends) == 0 {
		return mcp.NewToolResultText("No progress recorded yet for this path."), nil
	}

	payload, err := json.MarshalIndent(trends, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding trends: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// handleSuggestAdaptations evaluates the adaptation rules against the latest
// trend.
func (s *Server) handleSuggestAdaptations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user_id"), nil
	}
	pathID, err := request.RequireString("path_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path_id"), nil
	}

	trend, err := s.tracker.Latest(ctx, userID, pathID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading latest trend: %v", err)), nil
	}

	suggestions := advisor.Suggest(trend)
	if len(suggestions) == 0 {
		return mcp.NewToolResultText("No adaptations suggested. Progress looks on track."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d suggestion(s):\n", len(suggestions))
	for _, sug := range suggestions {
		fmt.Fprintf(&sb, "\n[%s] %s\n  %s\n  Action: %s\n", sug.Priority, sug.Type, sug.Description, sug.Action)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetRecommendations returns follow-up topic recommendations.
func (s *Server) handleGetRecommendations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: user_id"), nil
	}
	limit := request.GetInt("limit", 5)

	topics, err := s.engine.Recommend(ctx, userID, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}
	if len(topics) == 0 {
		return mcp.NewToolResultText("No recommendations available."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Recommended next topics:\n")
	for _, topic := range topics {
		fmt.Fprintf(&sb, "\n- %s (%s)\n  %s\n", topic.Title, topic.Difficulty, topic.Description)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatPath renders a generated path as readable text for an agent.
func formatPath(path *planner.LearningPath) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Created learning path %s: %q over %d days (%s difficulty, %s generation).\n",
		path.ID, path.Goal, path.DurationDays, path.Difficulty, path.Provenance)

	for _, day := range path.DailyPlans {
		fmt.Fprintf(&sb, "\nDay %d: %s (%s)\n", day.Day, day.Title, day.EstimatedTime)
		for _, obj := range day.Objectives {
			fmt.Fprintf(&sb, "  - %s\n", obj)
		}
		if day.Checkpoint != "" {
			fmt.Fprintf(&sb, "  Checkpoint: %s\n", day.Checkpoint)
		}
	}

	if len(path.Checkpoints) > 0 {
		days := make([]string, len(path.Checkpoints))
		for i, cp := range path.Checkpoints {
			days[i] = fmt.Sprintf("%d", cp.Day)
		}
		fmt.Fprintf(&sb, "\nAdaptive checkpoints on days %s.\n", strings.Join(days, ", "))
	}
	return sb.String()
}
