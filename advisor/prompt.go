package advisor

import (
	"fmt"
	"time"
)

// systemPrompt fixes the response schema and the advisory thresholds for the
// model-backed path. The model is asked to honor the same thresholds the
// rule-based classifier enforces, but its output is not guaranteed to.
func systemPrompt() string {
	return `You are an expert fitness and health advisor AI. Your role is to analyze
a user's health metrics (heart rate, sleep, stress) and provide personalized
workout recommendations and safety alerts.

Always follow these guidelines:
1. Prioritize user safety and health
2. Consider all metrics together, not individually
3. Provide specific, actionable recommendations
4. Explain your reasoning clearly
5. Suggest modifications for different fitness levels

Format your response as JSON with these keys:
- alert_level: "high", "medium", "low", or "rest"
- should_train: true or false
- alert_message: Brief explanation of the alert
- recommended_workout: Specific workout plan
- intensity_level: "low", "moderate", or "high"
- duration_minutes: Recommended workout duration
- modifications: Optional modifications or alternatives
- recovery_tips: Tips for recovery if needed

Base your recommendations on medical guidelines:
- Resting HR > 100 bpm: Consider rest
- Sleep < 6 hours: Reduce intensity
- Stress > 7/10: Prefer light activity or rest`
}

// userPrompt embeds the metrics and the current time.
func userPrompt(m HealthMetrics, now time.Time) string {
	previous := m.PreviousWorkout
	if previous == "" {
		previous = "No recent workout data"
	}

	return fmt.Sprintf(`Analyze these health metrics and provide workout recommendations:

Current Health Status:
- Resting Heart Rate: %d bpm
- Sleep Duration: %g hours
- Stress Level: %d/10

Additional Context:
- Previous Workout: %s
- Current Time: %s

Please provide your analysis and recommendations in the specified JSON format.`,
		m.HeartRate, m.SleepHours, m.StressLevel, previous, now.Format("2006-01-02 15:04"))
}

// suggestionsPrompt asks for workout suggestions for a named health condition.
func suggestionsPrompt(condition string) string {
	return fmt.Sprintf(`Based on this health condition: %s
Provide 3 safe workout suggestions in JSON format with:
- workout_type
- duration_minutes
- intensity
- precautions`, condition)
}
