package planner

import (
	"time"

	"github.com/pathlight/pathlight/internal/learner"
)

// Difficulty is the requested difficulty band for a learning path.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// ValidDifficulty reports whether d is one of the recognized difficulty bands.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// PathType distinguishes plain plans from adaptive ones.
type PathType string

const (
	TypeNormal   PathType = "normal"
	TypeAdaptive PathType = "adaptive"
)

// Provenance records which generation stage produced a plan.
type Provenance string

const (
	ProvenancePersonalized Provenance = "personalized"
	ProvenanceFallback     Provenance = "fallback"
)

// Request describes a plan generation request.
type Request struct {
	UserID       string     `json:"user_id"`
	Goal         string     `json:"goal"`
	DurationDays int        `json:"duration_days"`
	Difficulty   Difficulty `json:"difficulty"`
	Type         PathType   `json:"type"`
}

// DailyPlan is one day of a learning path.
type DailyPlan struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Objectives    []string `json:"objectives"`
	Content       string   `json:"content"`
	Activities    []string `json:"activities"`
	EstimatedTime string   `json:"estimated_time"`
	Resources     []string `json:"resources,omitempty"`
	KeyConcepts   []string `json:"key_concepts,omitempty"`
	Checkpoint    string   `json:"checkpoint,omitempty"`
	Adaptations   []string `json:"adaptations,omitempty"`
	Metacognitive string   `json:"metacognitive_element,omitempty"`
}

// Checkpoint marks a progress-assessment day within a plan.
type Checkpoint struct {
	Day         int      `json:"day"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// Personalization records how a plan was adapted to its learner.
type Personalization struct {
	LearningStyle learner.LearningStyle `json:"learning_style"`
	Level         string                `json:"level"`
	TimePerDay    string                `json:"time_per_day"`
	ContextAware  bool                  `json:"context_aware"`
}

// LearningPath is a complete multi-day plan.
//
// Invariant: DailyPlans has exactly DurationDays entries with day numbers
// forming the sequence 1..DurationDays.
type LearningPath struct {
	ID              string           `json:"id,omitempty"`
	UserID          string           `json:"user_id,omitempty"`
	Goal            string           `json:"goal"`
	DurationDays    int              `json:"duration_days"`
	Difficulty      Difficulty       `json:"difficulty"`
	Type            PathType         `json:"type"`
	Provenance      Provenance       `json:"provenance"`
	Description     string           `json:"description,omitempty"`
	DailyPlans      []DailyPlan      `json:"daily_plans"`
	Checkpoints     []Checkpoint     `json:"adaptive_checkpoints,omitempty"`
	Personalization *Personalization `json:"personalization,omitempty"`
	CreatedAt       time.Time        `json:"created_at,omitempty"`
}

// PathSummary is a listing row: path metadata joined with progress.
type PathSummary struct {
	ID                string     `json:"id"`
	Goal              string     `json:"goal"`
	DurationDays      int        `json:"duration_days"`
	Difficulty        Difficulty `json:"difficulty"`
	Type              PathType   `json:"type"`
	Provenance        Provenance `json:"provenance"`
	CompletedDays     int        `json:"completed_days"`
	CompletionPercent float64    `json:"completion_percent"`
	CreatedAt         time.Time  `json:"created_at"`
}
