package advisor

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	analyzeTemperature = 0.7
	analyzeMaxTokens   = 500

	suggestionsMaxTokens = 300
)

// ModeAssisted and ModeRuleOnly name the two operating modes. The mode is
// fixed when the Advisor is constructed, not decided per request.
const (
	ModeAssisted = "assisted"
	ModeRuleOnly = "rule-only"
)

// ChatClient is the chat-completion capability the model-backed path needs.
// *deepseek.Client satisfies it.
type ChatClient interface {
	ChatCompletion(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error)
}

// Advisor produces workout recommendations. With no ChatClient configured it
// runs rule-only; with one it asks the model first and falls back to the
// rules when the call fails.
type Advisor struct {
	client ChatClient
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithChatClient enables the model-backed path.
func WithChatClient(c ChatClient) Option {
	return func(a *Advisor) { a.client = c }
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) { a.now = now }
}

// WithLogger sets the logger used for degraded-path decisions.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Advisor) { a.logger = l }
}

// New creates an Advisor. Without WithChatClient it runs in rule-only mode.
func New(opts ...Option) *Advisor {
	a := &Advisor{
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Mode reports the operating mode resolved at construction time.
func (a *Advisor) Mode() string {
	if a.client != nil {
		return ModeAssisted
	}
	return ModeRuleOnly
}

// Analyze returns a recommendation for the given metrics. It never returns an
// error: a failed model call degrades to the rule-based tiers, unparseable
// model output degrades to a generic medium recommendation.
func (a *Advisor) Analyze(ctx context.Context, m HealthMetrics) Recommendation {
	if a.client == nil {
		return Format(Classify(m.HeartRate, m.SleepHours, m.StressLevel), m, a.now())
	}

	now := a.now()
	reply, err := a.client.ChatCompletion(ctx, systemPrompt(), userPrompt(m, now), analyzeMaxTokens, analyzeTemperature)
	if err != nil {
		a.logger.Warn().Err(err).Msg("model call failed, using rule-based recommendation")
		return Format(Classify(m.HeartRate, m.SleepHours, m.StressLevel), m, a.now())
	}

	rec, ok := parseModelReply(reply)
	if !ok {
		a.logger.Warn().Msg("model reply had no parseable JSON, using generic recommendation")
		rec = genericRecommendation()
	}
	rec.InputMetrics = InputMetrics{
		HeartRate:   m.HeartRate,
		SleepHours:  m.SleepHours,
		StressLevel: m.StressLevel,
		Timestamp:   a.now(),
	}
	return rec
}

// Suggestions returns workout suggestions for a free-text health condition.
// In rule-only mode, or when the model call fails, it returns a fixed safe
// list.
func (a *Advisor) Suggestions(ctx context.Context, condition string) []string {
	fallback := []string{
		"Light walking for 20-30 minutes",
		"Gentle stretching for 15-20 minutes",
		"Rest day with light mobility work",
	}

	if a.client == nil {
		return fallback
	}

	reply, err := a.client.ChatCompletion(ctx,
		"You are a fitness expert providing safe workout suggestions.",
		suggestionsPrompt(condition), suggestionsMaxTokens, analyzeTemperature)
	if err != nil {
		a.logger.Warn().Err(err).Msg("model call failed, using fallback suggestions")
		return fallback
	}
	return []string{reply}
}

// modelReply is the schema the system prompt asks the model to produce.
type modelReply struct {
	AlertLevel         string `json:"alert_level"`
	ShouldTrain        bool   `json:"should_train"`
	AlertMessage       string `json:"alert_message"`
	RecommendedWorkout string `json:"recommended_workout"`
	IntensityLevel     string `json:"intensity_level"`
	DurationMinutes    int    `json:"duration_minutes"`
	Modifications      string `json:"modifications"`
	RecoveryTips       string `json:"recovery_tips"`
}

// parseModelReply extracts the substring between the first '{' and the last
// '}' and strict-parses it. Any failure, including missing braces, reports
// not-ok; it never panics on arbitrary model output.
func parseModelReply(reply string) (Recommendation, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return Recommendation{}, false
	}

	var mr modelReply
	if err := json.Unmarshal([]byte(reply[start:end+1]), &mr); err != nil {
		return Recommendation{}, false
	}

	return Recommendation{
		AlertLevel:      mr.AlertLevel,
		ShouldTrain:     mr.ShouldTrain,
		Workout:         mr.RecommendedWorkout,
		Intensity:       mr.IntensityLevel,
		DurationMinutes: mr.DurationMinutes,
		Message:         mr.AlertMessage,
		Modifications:   mr.Modifications,
		RecoveryTips:    mr.RecoveryTips,
	}, true
}

// genericRecommendation is the parse-failure payload. It is deliberately not
// one of the rule-based tiers.
func genericRecommendation() Recommendation {
	return Recommendation{
		AlertLevel:      AlertMedium,
		ShouldTrain:     true,
		Workout:         "Light cardio (30 min walk/jog)",
		Intensity:       "low",
		DurationMinutes: 30,
		Message:         "AI response format issue, using default recommendation",
		Modifications:   "Reduce intensity if feeling tired",
		RecoveryTips:    "Stay hydrated and monitor how you feel",
	}
}
