package planner

import (
	"fmt"
	"time"

	"github.com/pathlight/pathlight/internal/learner"
)

// generateFallback constructs a deterministic template-based plan locally.
// It always succeeds and always satisfies the structural invariants, which
// makes the orchestrator total: every valid request yields a valid plan.
func generateFallback(req Request, lc learner.Context) *LearningPath {
	path := &LearningPath{
		UserID:       req.UserID,
		Goal:         req.Goal,
		DurationDays: req.DurationDays,
		Difficulty:   req.Difficulty,
		Type:         req.Type,
		Description: fmt.Sprintf("A structured %d-day journey to master %s at %s level",
			req.DurationDays, req.Goal, req.Difficulty),
		CreatedAt: time.Now().UTC(),
	}

	for day := 1; day <= req.DurationDays; day++ {
		path.DailyPlans = append(path.DailyPlans, fallbackDay(req, lc, day))
	}
	return path
}

func fallbackDay(req Request, lc learner.Context, day int) DailyPlan {
	title := fmt.Sprintf("Advancing in %s", req.Goal)
	if day == 1 {
		title = fmt.Sprintf("Introduction to %s", req.Goal)
	}

	estimated := "1-2 hours"
	if lc.TimePerDay != "" {
		estimated = lc.TimePerDay
	}

	return DailyPlan{
		Day:   day,
		Title: title,
		Objectives: []string{
			fmt.Sprintf("Understand the key concepts of %s for day %d", req.Goal, day),
			fmt.Sprintf("Apply %s-level techniques in practice", req.Difficulty),
		},
		Content: fmt.Sprintf(
			"Day %d of your %s journey. Build on the previous days, study the core material for today, and apply it through the listed activities.",
			day, req.Goal),
		Activities: []string{
			fmt.Sprintf("Read about %s fundamentals", req.Goal),
			fmt.Sprintf("Complete hands-on exercises for %s", req.Goal),
			"Review and summarize what you learned today",
		},
		EstimatedTime: estimated,
		Resources: []string{
			fmt.Sprintf("Introduction to %s", req.Goal),
			fmt.Sprintf("%s practice exercises", req.Goal),
		},
		KeyConcepts: []string{
			fmt.Sprintf("%s fundamentals", req.Goal),
			fmt.Sprintf("%s-level applications", req.Difficulty),
		},
	}
}
