package advisor

import "time"

// Alert levels carried by a Recommendation. The rule-based path only ever
// produces high, medium or low; rest is reachable through the model path and
// is preserved as its own level rather than folded into high.
const (
	AlertHigh   = "high"
	AlertMedium = "medium"
	AlertLow    = "low"
	AlertRest   = "rest"
)

// HealthMetrics is the input to an analysis. PreviousWorkout is carried
// through to prompts and output but never influences classification.
type HealthMetrics struct {
	HeartRate       int     `json:"heart_rate"`
	SleepHours      float64 `json:"sleep_hours"`
	StressLevel     int     `json:"stress_level"`
	PreviousWorkout string  `json:"previous_workout,omitempty"`
}

// InputMetrics echoes the originating metrics on a Recommendation, stamped
// with the generation time.
type InputMetrics struct {
	HeartRate   int       `json:"heart_rate"`
	SleepHours  float64   `json:"sleep_hours"`
	StressLevel int       `json:"stress_level"`
	Timestamp   time.Time `json:"timestamp"`
}

// Recommendation is the single output shape shared by the rule-based and
// model-backed paths. Both paths always fill every field.
type Recommendation struct {
	AlertLevel      string       `json:"alert_level"`
	ShouldTrain     bool         `json:"should_train"`
	Workout         string       `json:"workout"`
	Intensity       string       `json:"intensity"`
	DurationMinutes int          `json:"duration_minutes"`
	Message         string       `json:"message"`
	Modifications   string       `json:"modifications"`
	RecoveryTips    string       `json:"recovery_tips"`
	InputMetrics    InputMetrics `json:"input_metrics"`
}
