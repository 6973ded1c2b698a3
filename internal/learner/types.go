package learner

import "time"

// LearningStyle categorizes how a learner best absorbs material.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleMixed       LearningStyle = "mixed"
)

// Pace is the learner's preferred study tempo.
type Pace string

const (
	PaceSlow     Pace = "slow"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

// Tolerance is the learner's tolerance for complex material.
type Tolerance string

const (
	ToleranceLow    Tolerance = "low"
	ToleranceMedium Tolerance = "medium"
	ToleranceHigh   Tolerance = "high"
)

// Profile holds a learner's stored learning profile.
type Profile struct {
	UserID              string        `json:"user_id"`
	LearningStyle       LearningStyle `json:"learning_style"`
	PacePreference      Pace          `json:"pace_preference"`
	ComplexityTolerance Tolerance     `json:"complexity_tolerance"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// Preferences holds a learner's stored study preferences.
type Preferences struct {
	UserID                string    `json:"user_id"`
	ContentTypes          []string  `json:"content_types"`
	StudyTimeSlots        []string  `json:"study_time_slots"`
	NotificationFrequency string    `json:"notification_frequency"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Metrics summarizes a learner's historical performance.
type Metrics struct {
	UserID           string    `json:"user_id"`
	CompletionRate   float64   `json:"completion_rate"`
	ConsistencyScore float64   `json:"consistency_score"`
	RetentionRate    float64   `json:"retention_rate"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Context is the normalized per-request view of a learner, built by the
// Aggregator and consumed by plan generation. It is transient and owned by
// the calling request.
type Context struct {
	UserID              string        `json:"user_id"`
	Timestamp           time.Time     `json:"timestamp"`
	LearningStyle       LearningStyle `json:"learning_style"`
	PacePreference      Pace          `json:"pace_preference"`
	ComplexityTolerance Tolerance     `json:"complexity_tolerance"`
	PreviousPaths       []string      `json:"previous_paths"`
	Interests           []string      `json:"interests"`
	TimePerDay          string        `json:"time_per_day"`
	CurrentLevel        string        `json:"current_level"`
	CompletionRate      float64       `json:"completion_rate"`
	ConsistencyScore    float64       `json:"consistency_score"`
	RetentionRate       float64       `json:"retention_rate"`
}

// Overrides carries caller-supplied context fields that take precedence over
// anything loaded from storage. Zero values mean "not set".
type Overrides struct {
	LearningStyle LearningStyle `json:"learning_style,omitempty"`
	Pace          Pace          `json:"pace_preference,omitempty"`
	TimePerDay    string        `json:"time_per_day,omitempty"`
	CurrentLevel  string        `json:"current_level,omitempty"`
	Interests     []string      `json:"interests,omitempty"`
}

// ValidStyle reports whether s is one of the recognized learning styles.
func ValidStyle(s LearningStyle) bool {
	switch s {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleMixed:
		return true
	}
	return false
}
