package planner

import (
	"errors"
	"strings"
	"testing"
)

func validRequest() Request {
	return Request{
		UserID:       "u1",
		Goal:         "Learn Go programming",
		DurationDays: 7,
		Difficulty:   DifficultyBeginner,
		Type:         TypeNormal,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{"valid", func(r *Request) {}, false},
		{"empty goal", func(r *Request) { r.Goal = "" }, true},
		{"whitespace goal", func(r *Request) { r.Goal = "   " }, true},
		{"single word goal", func(r *Request) { r.Goal = "Go" }, true},
		{"goal too long", func(r *Request) { r.Goal = "Learn " + strings.Repeat("x", 200) }, true},
		{"zero duration", func(r *Request) { r.DurationDays = 0 }, true},
		{"negative duration", func(r *Request) { r.DurationDays = -3 }, true},
		{"duration too long", func(r *Request) { r.DurationDays = 91 }, true},
		{"max duration", func(r *Request) { r.DurationDays = 90 }, false},
		{"min duration", func(r *Request) { r.DurationDays = 1 }, false},
		{"bad difficulty", func(r *Request) { r.Difficulty = "impossible" }, true},
		{"expert difficulty", func(r *Request) { r.Difficulty = DifficultyExpert }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := ValidateRequest(req)
			if tt.wantErr {
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Errorf("expected InvalidInputError, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	good := func() *LearningPath {
		path := &LearningPath{Goal: "Learn Go programming", DurationDays: 3}
		for day := 1; day <= 3; day++ {
			path.DailyPlans = append(path.DailyPlans, DailyPlan{
				Day:        day,
				Title:      "Day title",
				Objectives: []string{"objective"},
				Content:    "content",
				Activities: []string{"activity"},
			})
		}
		return path
	}

	if err := ValidatePath(good()); err != nil {
		t.Fatalf("valid path rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*LearningPath)
	}{
		{"wrong count", func(p *LearningPath) { p.DailyPlans = p.DailyPlans[:2] }},
		{"gap in days", func(p *LearningPath) { p.DailyPlans[2].Day = 5 }},
		{"duplicate day", func(p *LearningPath) { p.DailyPlans[1].Day = 1 }},
		{"missing title", func(p *LearningPath) { p.DailyPlans[0].Title = " " }},
		{"missing objectives", func(p *LearningPath) { p.DailyPlans[1].Objectives = nil }},
		{"missing content", func(p *LearningPath) { p.DailyPlans[2].Content = "" }},
		{"missing activities", func(p *LearningPath) { p.DailyPlans[0].Activities = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := good()
			tt.mutate(path)
			var verr *ValidationError
			if !errors.As(ValidatePath(path), &verr) {
				t.Error("expected ValidationError")
			}
		})
	}
}
