package advisor

import (
	"github.com/pathlight/pathlight/internal/progress"
)

// SuggestionType identifies the kind of adaptation a rule recommends.
type SuggestionType string

const (
	DifficultyReduction SuggestionType = "difficulty_reduction"
	DifficultyIncrease  SuggestionType = "difficulty_increase"
	ContentReduction    SuggestionType = "content_reduction"
	ContentExpansion    SuggestionType = "content_expansion"
)

// Priority ranks how urgently a suggestion should be acted on.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is one actionable adaptation derived from a trend. Suggestions
// are recomputed on demand and never persisted.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Priority    Priority       `json:"priority"`
	Description string         `json:"description"`
	Action      string         `json:"suggested_action"`
}

// rule fires when its condition holds for a trend. Rules are independent;
// several may fire for the same trend.
type rule struct {
	applies    func(t *progress.Trend) bool
	suggestion Suggestion
}

var rules = []rule{
	{
		applies: func(t *progress.Trend) bool { return t.CompletionRate < 50 },
		suggestion: Suggestion{
			Type:        DifficultyReduction,
			Priority:    PriorityHigh,
			Description: "Consider reducing content difficulty",
			Action:      "Simplify concepts and add more examples",
		},
	},
	{
		applies: func(t *progress.Trend) bool { return t.CompletionRate > 90 },
		suggestion: Suggestion{
			Type:        DifficultyIncrease,
			Priority:    PriorityMedium,
			Description: "Content may be too easy",
			Action:      "Introduce advanced concepts and complex exercises",
		},
	},
	{
		applies: func(t *progress.Trend) bool { return t.AvgTimeSpent > 120 },
		suggestion: Suggestion{
			Type:        ContentReduction,
			Priority:    PriorityMedium,
			Description: "Daily sessions are running long",
			Action:      "Break content into smaller chunks",
		},
	},
	{
		applies: func(t *progress.Trend) bool { return t.AvgTimeSpent < 30 },
		suggestion: Suggestion{
			Type:        ContentExpansion,
			Priority:    PriorityLow,
			Description: "Daily sessions may be too light",
			Action:      "Include additional exercises and examples",
		},
	},
}

// Suggest evaluates the rule table against the latest trend, in table order.
// A nil trend means no progress has been reported yet and yields no
// suggestions.
func Suggest(trend *progress.Trend) []Suggestion {
	suggestions := []Suggestion{}
	if trend == nil {
		return suggestions
	}
	for _, r := range rules {
		if r.applies(trend) {
			suggestions = append(suggestions, r.suggestion)
		}
	}
	return suggestions
}
