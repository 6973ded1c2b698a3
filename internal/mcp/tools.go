package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generatePathTool defines the generate_learning_path MCP tool.
var generatePathTool = mcp.NewTool("generate_learning_path",
	mcp.WithDescription("Generate a personalized multi-day learning path for a goal. Falls back to a structured template when no LLM is available."),
	mcp.WithString("user_id",
		mcp.Required(),
		mcp.Description("Identifier of the learner"),
	),
	mcp.WithString("goal",
		mcp.Required(),
		mcp.Description("What the learner wants to learn, e.g. 'Learn Go programming'"),
	),
	mcp.WithNumber("duration_days",
		mcp.Description("Plan length in days, 1-90 (default 7)"),
	),
	mcp.WithString("difficulty",
		mcp.Description("Difficulty band"),
		mcp.Enum("beginner", "intermediate", "advanced", "expert"),
	),
)

// listPathsTool defines the list_learning_paths MCP tool.
var listPathsTool = mcp.NewTool("list_learning_paths",
	mcp.WithDescription("List a learner's saved learning paths with their completion state."),
	mcp.WithString("user_id",
		mcp.Required(),
		mcp.Description("Identifier of the learner"),
	),
)

// recordProgressTool defines the record_progress MCP tool.
var recordProgressTool = mcp.NewTool("record_progress",
	mcp.WithDescription("Record one day's progress on a learning path and get back the updated performance trend."),
	mcp.WithString("user_id",
		mcp.Required(),
		mcp.Description("Identifier of the learner"),
	),
	mcp.WithString("path_id",
		mcp.Required(),
		mcp.Description("Identifier of the learning path"),
	),
	mcp.WithNumber("day",
		mcp.Required(),
		mcp.Description("Day number being reported, 1-based"),
	),
	mcp.WithBoolean("completed",
		mcp.Description("Whether the day's work was completed"),
	),
	mcp.WithNumber("time_spent",
		mcp.Description("Minutes spent on the day's work"),
	),
	mcp.WithNumber("difficulty_rating",
		mcp.Description("Perceived difficulty, 1-5 (default 3)"),
	),
	mcp.WithNumber("satisfaction",
		mcp.Description("Satisfaction with the day, 1-5 (default 3)"),
	),
)

// getTrendsTool defines the get_performance_trends MCP tool.
var getTrendsTool = mcp.NewTool("get_performance_trends",
	mcp.WithDescription("Get the rolling performance trend history for a learning path."),
	mcp.WithString("user_id",
		mcp.Required(),
		mcp.Description("Identifier of the learner"),
	),
	mcp.WithString("path_id",
		mcp.Required(),
		mcp.Description("Identifier of the learning path"),
	),
)

// suggestAdaptationsTool defines the suggest_adaptations MCP tool.
var suggestAdaptationsTool = mcp.NewTool("suggest_adaptations",
	mcp.WithDescription("Get ranked adaptation suggestions for a learning path based on the latest performance trend."),
	mcp.WithString("user_id",
		mcp.Required(),
		mcp.Description("Identifier of the learner"),
	),
	mcp.WithString("path_id",
		mcp.Required(),
		mcp.Description("Identifier of the learning path"),
	),
)

// getRecommendationsTool defines the get_recommendations MCP tool.
var getRecommendationsTool = mcp.NewTool("get_recommendations",
	mcp.WithDescription("Recommend follow-up learning topics based on the learner's past goals."),
	mcp.WithString("user_id",
		mcp.Required(),
		mcp.Description("Identifier of the learner"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of topics to return (default 5)"),
	),
)
