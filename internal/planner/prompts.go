package planner

import (
	"fmt"
	"strings"

	"github.com/pathlight/pathlight/internal/learner"
)

const systemPrompt = `You are an expert learning designer. You create structured multi-day learning plans tailored to an individual learner. Return only a JSON object matching the requested schema. Content must be specific to the stated goal; no placeholder text, no HTML markup.`

const planPromptTemplate = `Create a %d-day learning path for: %q
Difficulty level: %s

%sStructure the response as a JSON object with exactly this shape:

{
  "goal": %q,
  "duration_days": %d,
  "difficulty": %q,
  "description": "What the learner will achieve",
  "daily_plans": [
    {
      "day": 1,
      "title": "Day title focused on the goal",
      "objectives": ["Specific objective 1", "Specific objective 2"],
      "content": "Detailed goal-specific content for the day",
      "activities": ["Hands-on activity 1", "Practical exercise 2"],
      "estimated_time": "2-3 hours",
      "resources": ["Specific resource 1", "Relevant documentation"],
      "key_concepts": ["Concept 1", "Concept 2"]
    }
  ]
}

Requirements:
- daily_plans must contain exactly %d entries with day numbers 1 through %d in order.
- Each day builds on the previous days with concrete topics and exercises.
- Adapt depth, pacing, and activity style to the learner context above.`

// buildGenerationPrompt assembles the messages sent to the generation
// collaborator for the given request and learner context.
func buildGenerationPrompt(req Request, lc learner.Context) (system, user string) {
	var ctxSection strings.Builder
	ctxSection.WriteString("Learner context:\n")
	fmt.Fprintf(&ctxSection, "- Learning style: %s\n", lc.LearningStyle)
	fmt.Fprintf(&ctxSection, "- Pace preference: %s\n", lc.PacePreference)
	fmt.Fprintf(&ctxSection, "- Current level: %s\n", lc.CurrentLevel)
	fmt.Fprintf(&ctxSection, "- Available time per day: %s\n", lc.TimePerDay)
	if len(lc.Interests) > 0 {
		fmt.Fprintf(&ctxSection, "- Preferred content types: %s\n", strings.Join(lc.Interests, ", "))
	}
	if len(lc.PreviousPaths) > 0 {
		fmt.Fprintf(&ctxSection, "- Completed learning paths: %d\n", len(lc.PreviousPaths))
	}
	if lc.RetentionRate > 0 {
		fmt.Fprintf(&ctxSection, "- Retention rate: %.0f%%\n", lc.RetentionRate)
	}
	ctxSection.WriteString("\n")

	user = fmt.Sprintf(planPromptTemplate,
		req.DurationDays, req.Goal, req.Difficulty,
		ctxSection.String(),
		req.Goal, req.DurationDays, req.Difficulty,
		req.DurationDays, req.DurationDays,
	)
	return systemPrompt, user
}
