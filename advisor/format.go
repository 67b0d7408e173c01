package advisor

import "time"

// Format assembles a Recommendation from a tier template, the originating
// metrics and a generation timestamp. The tier is copied, never mutated.
func Format(tier Tier, m HealthMetrics, now time.Time) Recommendation {
	return Recommendation{
		AlertLevel:      tier.AlertLevel,
		ShouldTrain:     tier.ShouldTrain,
		Workout:         tier.Workout,
		Intensity:       tier.Intensity,
		DurationMinutes: tier.DurationMinutes,
		Message:         metricSummary(m),
		Modifications:   tier.Modifications,
		RecoveryTips:    tier.RecoveryTips,
		InputMetrics: InputMetrics{
			HeartRate:   m.HeartRate,
			SleepHours:  m.SleepHours,
			StressLevel: m.StressLevel,
			Timestamp:   now,
		},
	}
}
