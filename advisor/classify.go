// Package advisor maps resting heart rate, sleep duration and stress level to
// a workout recommendation. It has a deterministic rule-based path and an
// optional model-backed path that falls back to the rules when the model call
// fails.
package advisor

import "fmt"

// Tier is a fixed rule-based classification outcome. The three tiers are
// package-level templates and must not be mutated by callers.
type Tier struct {
	AlertLevel      string
	ShouldTrain     bool
	Workout         string
	Intensity       string
	DurationMinutes int
	Modifications   string
	RecoveryTips    string
}

var (
	highAlert = Tier{
		AlertLevel:      AlertHigh,
		ShouldTrain:     false,
		Workout:         "Rest day or gentle stretching",
		Intensity:       "very low",
		DurationMinutes: 15,
		Modifications:   "Focus on recovery",
		RecoveryTips:    "Hydrate well and ensure proper nutrition",
	}

	mediumAlert = Tier{
		AlertLevel:      AlertMedium,
		ShouldTrain:     true,
		Workout:         "Light cardio (walking, cycling)",
		Intensity:       "low",
		DurationMinutes: 30,
		Modifications:   "Reduce intensity if feeling tired",
		RecoveryTips:    "Listen to your body and adjust as needed",
	}

	lowAlert = Tier{
		AlertLevel:      AlertLow,
		ShouldTrain:     true,
		Workout:         "Moderate workout (running, weight training)",
		Intensity:       "moderate",
		DurationMinutes: 45,
		Modifications:   "None needed",
		RecoveryTips:    "Stay hydrated",
	}
)

// Classify selects a tier from the three metrics. First match wins, each tier
// is an OR across its three triggers, and the comparisons are exact: a heart
// rate of 100 is not high, it falls through to the medium check. The function
// is pure and total, out-of-range values classify like any others.
func Classify(heartRate int, sleepHours float64, stressLevel int) Tier {
	switch {
	case heartRate > 100 || sleepHours < 4 || stressLevel >= 8:
		return highAlert
	case heartRate > 85 || sleepHours < 6 || stressLevel >= 6:
		return mediumAlert
	default:
		return lowAlert
	}
}

// metricSummary is the message attached to rule-based recommendations.
func metricSummary(m HealthMetrics) string {
	return fmt.Sprintf("Based on your metrics: HR=%dbpm, Sleep=%gh, Stress=%d/10",
		m.HeartRate, m.SleepHours, m.StressLevel)
}
