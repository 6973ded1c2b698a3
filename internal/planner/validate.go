package planner

import (
	"fmt"
	"strings"
)

const (
	// MinDurationDays and MaxDurationDays bound the length of any plan.
	MinDurationDays = 1
	MaxDurationDays = 90

	maxGoalLength = 200
)

// ValidateRequest checks a generation request before any generation is
// attempted. A violation is an *InvalidInputError.
func ValidateRequest(req Request) error {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return &InvalidInputError{Field: "goal", Reason: "must not be empty"}
	}
	if len(goal) > maxGoalLength {
		return &InvalidInputError{Field: "goal", Reason: fmt.Sprintf("must be at most %d characters", maxGoalLength)}
	}
	if len(strings.Fields(goal)) < 2 {
		return &InvalidInputError{Field: "goal", Reason: "must contain at least two words"}
	}
	if req.DurationDays < MinDurationDays || req.DurationDays > MaxDurationDays {
		return &InvalidInputError{
			Field:  "duration_days",
			Reason: fmt.Sprintf("must be between %d and %d", MinDurationDays, MaxDurationDays),
		}
	}
	if !ValidDifficulty(req.Difficulty) {
		return &InvalidInputError{
			Field:  "difficulty",
			Reason: "must be one of beginner, intermediate, advanced, expert",
		}
	}
	return nil
}

// ValidatePath checks the structural invariants every plan must satisfy:
// the daily plan count matches the duration, day numbers run 1..duration
// with no gaps, and every day carries the minimum required fields.
func ValidatePath(path *LearningPath) error {
	if path == nil {
		return &ValidationError{Reason: "path is nil"}
	}
	if len(path.DailyPlans) != path.DurationDays {
		return &ValidationError{Reason: fmt.Sprintf(
			"expected %d daily plans, got %d", path.DurationDays, len(path.DailyPlans))}
	}
	for i, plan := range path.DailyPlans {
		if plan.Day != i+1 {
			return &ValidationError{Reason: fmt.Sprintf(
				"daily plan at position %d has day %d, want %d", i, plan.Day, i+1)}
		}
		if strings.TrimSpace(plan.Title) == "" {
			return &ValidationError{Reason: fmt.Sprintf("day %d has no title", plan.Day)}
		}
		if len(plan.Objectives) == 0 {
			return &ValidationError{Reason: fmt.Sprintf("day %d has no objectives", plan.Day)}
		}
		if strings.TrimSpace(plan.Content) == "" {
			return &ValidationError{Reason: fmt.Sprintf("day %d has no content", plan.Day)}
		}
		if len(plan.Activities) == 0 {
			return &ValidationError{Reason: fmt.Sprintf("day %d has no activities", plan.Day)}
		}
	}
	return nil
}
