package advisor

import (
	"testing"

	"github.com/pathlight/pathlight/internal/progress"
)

func types(suggestions []Suggestion) []SuggestionType {
	out := make([]SuggestionType, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Type
	}
	return out
}

func TestSuggestNilTrend(t *testing.T) {
	suggestions := Suggest(nil)
	if suggestions == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(suggestions))
	}
}

func TestSuggestLowCompletion(t *testing.T) {
	suggestions := Suggest(&progress.Trend{CompletionRate: 45, AvgTimeSpent: 60, AvgDifficulty: 3, DaysAnalyzed: 5})
	if len(suggestions) != 1 {
		t.Fatalf("got %v, want exactly one suggestion", types(suggestions))
	}
	s := suggestions[0]
	if s.Type != DifficultyReduction {
		t.Errorf("type = %s, want %s", s.Type, DifficultyReduction)
	}
	if s.Priority != PriorityHigh {
		t.Errorf("priority = %s, want %s", s.Priority, PriorityHigh)
	}
	if s.Action != "Simplify concepts and add more examples" {
		t.Errorf("action = %q", s.Action)
	}
}

func TestSuggestHighCompletionLongSessions(t *testing.T) {
	suggestions := Suggest(&progress.Trend{CompletionRate: 95, AvgTimeSpent: 150, AvgDifficulty: 3, DaysAnalyzed: 7})
	if len(suggestions) != 2 {
		t.Fatalf("got %v, want two suggestions", types(suggestions))
	}
	if suggestions[0].Type != DifficultyIncrease || suggestions[0].Priority != PriorityMedium {
		t.Errorf("first = %s/%s, want %s/medium", suggestions[0].Type, suggestions[0].Priority, DifficultyIncrease)
	}
	if suggestions[1].Type != ContentReduction || suggestions[1].Priority != PriorityMedium {
		t.Errorf("second = %s/%s, want %s/medium", suggestions[1].Type, suggestions[1].Priority, ContentReduction)
	}
}

func TestSuggestShortSessions(t *testing.T) {
	suggestions := Suggest(&progress.Trend{CompletionRate: 70, AvgTimeSpent: 20, AvgDifficulty: 2, DaysAnalyzed: 4})
	if len(suggestions) != 1 {
		t.Fatalf("got %v, want one suggestion", types(suggestions))
	}
	if suggestions[0].Type != ContentExpansion || suggestions[0].Priority != PriorityLow {
		t.Errorf("got %s/%s, want %s/low", suggestions[0].Type, suggestions[0].Priority, ContentExpansion)
	}
}

func TestSuggestBoundaryValues(t *testing.T) {
	// Thresholds are strict comparisons; boundary values fire nothing.
	suggestions := Suggest(&progress.Trend{CompletionRate: 50, AvgTimeSpent: 30, AvgDifficulty: 3, DaysAnalyzed: 3})
	if len(suggestions) != 0 {
		t.Errorf("got %v, want none at the thresholds", types(suggestions))
	}
	suggestions = Suggest(&progress.Trend{CompletionRate: 90, AvgTimeSpent: 120, AvgDifficulty: 3, DaysAnalyzed: 3})
	if len(suggestions) != 0 {
		t.Errorf("got %v, want none at the thresholds", types(suggestions))
	}
}

func TestSuggestRulesFireIndependently(t *testing.T) {
	// Low completion and long sessions can both fire.
	suggestions := Suggest(&progress.Trend{CompletionRate: 40, AvgTimeSpent: 130, AvgDifficulty: 4, DaysAnalyzed: 6})
	got := types(suggestions)
	if len(got) != 2 || got[0] != DifficultyReduction || got[1] != ContentReduction {
		t.Errorf("got %v, want [%s %s]", got, DifficultyReduction, ContentReduction)
	}
}
