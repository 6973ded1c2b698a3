package planner

import (
	"context"
	"reflect"
	"testing"

	"github.com/pathlight/pathlight/internal/learner"
)

func generateFor(t *testing.T, days int, style learner.LearningStyle) *LearningPath {
	t.Helper()
	o := NewOrchestrator(nil, "", Options{})
	req := validRequest()
	req.DurationDays = days
	path, err := o.Generate(context.Background(), req, learner.Context{LearningStyle: style})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return path
}

func TestCheckpointPlacement(t *testing.T) {
	tests := []struct {
		days int
		want []int
	}{
		{1, nil},
		{2, nil},
		{3, []int{3}},
		{7, []int{3, 6}},
		{9, []int{3, 6, 9}},
		{21, []int{3, 6, 9, 12, 15, 18, 21}},
	}

	for _, tt := range tests {
		path := generateFor(t, tt.days, learner.StyleMixed)
		got := checkpointDays(path)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%d days: checkpoints at %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestCheckpointMarksDailyPlans(t *testing.T) {
	path := generateFor(t, 7, learner.StyleMixed)

	for _, plan := range path.DailyPlans {
		isCheckpoint := plan.Day%3 == 0
		if isCheckpoint && plan.Checkpoint == "" {
			t.Errorf("day %d should carry a checkpoint marker", plan.Day)
		}
		if !isCheckpoint && plan.Checkpoint != "" {
			t.Errorf("day %d should not carry a checkpoint marker", plan.Day)
		}
	}
}

func TestCustomCheckpointInterval(t *testing.T) {
	o := NewOrchestrator(nil, "", Options{CheckpointInterval: 5})
	req := validRequest()
	req.DurationDays = 12
	path, err := o.Generate(context.Background(), req, learner.Context{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got, want := checkpointDays(path), []int{5, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("checkpoints at %v, want %v", got, want)
	}
}

func TestStyleAdaptations(t *testing.T) {
	for _, style := range []learner.LearningStyle{
		learner.StyleVisual, learner.StyleAuditory, learner.StyleKinesthetic, learner.StyleMixed,
	} {
		path := generateFor(t, 3, style)
		want := styleAdaptations[style]
		for _, plan := range path.DailyPlans {
			if !reflect.DeepEqual(plan.Adaptations, want) {
				t.Errorf("style %s day %d: adaptations %v, want %v", style, plan.Day, plan.Adaptations, want)
			}
		}
	}
}

func TestUnknownStyleDefaultsToMixed(t *testing.T) {
	path := generateFor(t, 3, "telepathic")
	want := styleAdaptations[learner.StyleMixed]
	if !reflect.DeepEqual(path.DailyPlans[0].Adaptations, want) {
		t.Errorf("adaptations = %v, want mixed defaults", path.DailyPlans[0].Adaptations)
	}
	if path.Personalization == nil || path.Personalization.LearningStyle != learner.StyleMixed {
		t.Error("personalization metadata should normalize unknown styles to mixed")
	}
}

func TestProvenanceStamp(t *testing.T) {
	path := generateFor(t, 3, learner.StyleMixed)
	if path.Provenance != ProvenanceFallback {
		t.Errorf("Provenance = %q", path.Provenance)
	}
	if path.Personalization == nil {
		t.Fatal("personalization metadata missing")
	}
	if path.Personalization.ContextAware {
		t.Error("fallback plans should not be marked context aware")
	}
}
