package planner

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pathlight/pathlight/internal/learner"
	"github.com/pathlight/pathlight/internal/llm"
)

// generatedPath is the wire shape expected from the generation collaborator.
type generatedPath struct {
	Goal         string `json:"goal"`
	DurationDays int    `json:"duration_days"`
	Difficulty   string `json:"difficulty"`
	Description  string `json:"description"`
	DailyPlans   []struct {
		Day           int      `json:"day"`
		Title         string   `json:"title"`
		Objectives    []string `json:"objectives"`
		Content       string   `json:"content"`
		Activities    []string `json:"activities"`
		EstimatedTime string   `json:"estimated_time"`
		Resources     []string `json:"resources"`
		KeyConcepts   []string `json:"key_concepts"`
	} `json:"daily_plans"`
}

// generatePersonalized invokes the generation collaborator once, bounded by
// the configured timeout. Any provider error, parse error, or structural
// violation is returned as a *GenerationError; the caller falls back. There
// is no retry: a single failed attempt is sufficient to trigger fallback.
func (o *Orchestrator) generatePersonalized(ctx context.Context, req Request, lc learner.Context) (*LearningPath, error) {
	genCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	system, user := buildGenerationPrompt(req, lc)
	resp, err := o.provider.Complete(genCtx, llm.CompletionRequest{
		Model: o.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		Temperature: 0.4,
		JSONMode:    true,
	})
	if err != nil {
		return nil, &GenerationError{Provider: o.provider.Name(), Cause: err}
	}

	path, err := parseGeneratedPath(resp.Content, req)
	if err != nil {
		return nil, &GenerationError{Provider: o.provider.Name(), Cause: err}
	}
	return path, nil
}

// parseGeneratedPath decodes a collaborator response and checks it against
// the request and the structural invariants.
func parseGeneratedPath(content string, req Request) (*LearningPath, error) {
	raw := strings.TrimSpace(content)
	// Some models wrap JSON in a markdown fence despite JSON mode.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var gen generatedPath
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return nil, err
	}

	path := &LearningPath{
		UserID:       req.UserID,
		Goal:         req.Goal,
		DurationDays: req.DurationDays,
		Difficulty:   req.Difficulty,
		Type:         req.Type,
		Description:  gen.Description,
		CreatedAt:    time.Now().UTC(),
	}
	for _, dp := range gen.DailyPlans {
		path.DailyPlans = append(path.DailyPlans, DailyPlan{
			Day:           dp.Day,
			Title:         dp.Title,
			Objectives:    dp.Objectives,
			Content:       dp.Content,
			Activities:    dp.Activities,
			EstimatedTime: dp.EstimatedTime,
			Resources:     dp.Resources,
			KeyConcepts:   dp.KeyConcepts,
		})
	}

	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	return path, nil
}
