package planner

import (
	"fmt"

	"github.com/pathlight/pathlight/internal/learner"
)

// styleAdaptations maps each learning style to the adaptation hints tagged
// onto every daily plan. Unknown or unset styles fall back to the mixed row.
var styleAdaptations = map[learner.LearningStyle][]string{
	learner.StyleVisual: {
		"Include diagrams and flowcharts",
		"Use color-coded information",
		"Provide visual summaries",
	},
	learner.StyleAuditory: {
		"Include audio explanations",
		"Add discussion points",
		"Provide verbal repetition",
	},
	learner.StyleKinesthetic: {
		"Include hands-on activities",
		"Add physical movement breaks",
		"Provide interactive exercises",
	},
	learner.StyleMixed: {
		"Combine multiple learning modalities",
		"Provide content variety",
		"Adapt based on progress",
	},
}

// checkpointActions is the fixed set of adaptive actions attached to every
// checkpoint.
var checkpointActions = []string{
	"Assess learning progress",
	"Adjust difficulty if needed",
	"Modify pacing based on performance",
	"Update content recommendations",
}

// enhance applies, in fixed order: checkpoint injection, style-based
// adaptation tagging, and provenance stamping. It runs on every plan,
// regardless of which generation stage produced it.
func (o *Orchestrator) enhance(path *LearningPath, lc learner.Context, provenance Provenance) {
	injectCheckpoints(path, o.checkpointInterval)
	applyStyleAdaptations(path, lc.LearningStyle)

	path.Provenance = provenance
	path.Personalization = &Personalization{
		LearningStyle: normalizeStyle(lc.LearningStyle),
		Level:         lc.CurrentLevel,
		TimePerDay:    lc.TimePerDay,
		ContextAware:  provenance == ProvenancePersonalized,
	}
}

// injectCheckpoints adds an adaptive checkpoint at every day that is a
// multiple of interval, up to and including the last day of the plan.
func injectCheckpoints(path *LearningPath, interval int) {
	if interval <= 0 {
		return
	}
	path.Checkpoints = nil
	for day := interval; day <= path.DurationDays; day += interval {
		path.Checkpoints = append(path.Checkpoints, Checkpoint{
			Day:         day,
			Type:        "adaptive_assessment",
			Description: "Progress evaluation and path adjustment",
			Actions:     checkpointActions,
		})
		idx := day - 1
		path.DailyPlans[idx].Checkpoint = fmt.Sprintf("Day %d progress assessment", day)
		path.DailyPlans[idx].Metacognitive = "Reflect on your learning process and adjust your strategy"
	}
}

// applyStyleAdaptations tags every daily plan with the adaptation hints for
// the learner's style.
func applyStyleAdaptations(path *LearningPath, style learner.LearningStyle) {
	hints := styleAdaptations[normalizeStyle(style)]
	for i := range path.DailyPlans {
		path.DailyPlans[i].Adaptations = hints
	}
}

func normalizeStyle(style learner.LearningStyle) learner.LearningStyle {
	if learner.ValidStyle(style) {
		return style
	}
	return learner.StyleMixed
}
