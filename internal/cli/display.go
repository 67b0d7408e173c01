package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/briangreenhill/fitadvisor/advisor"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginTop(1)

	alertStyles = map[string]lipgloss.Style{
		advisor.AlertHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		advisor.AlertMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		advisor.AlertLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		advisor.AlertRest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
)

// Render formats a recommendation as a bordered card for the terminal.
func Render(rec advisor.Recommendation) string {
	alertStyle, ok := alertStyles[rec.AlertLevel]
	if !ok {
		alertStyle = alertStyles[advisor.AlertMedium]
	}

	train := "NO"
	if rec.ShouldTrain {
		train = "YES"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("FITNESS ADVISOR RECOMMENDATION"))
	b.WriteString("\n\n")
	b.WriteString(alertStyle.Render(fmt.Sprintf("ALERT LEVEL: %s", strings.ToUpper(rec.AlertLevel))))
	b.WriteString(fmt.Sprintf("\nShould Train: %s\n", train))

	b.WriteString(sectionStyle.Render("Recommendation"))
	b.WriteString(fmt.Sprintf("\n  Workout:   %s\n", rec.Workout))
	b.WriteString(fmt.Sprintf("  Intensity: %s\n", strings.ToUpper(rec.Intensity)))
	b.WriteString(fmt.Sprintf("  Duration:  %d minutes\n", rec.DurationMinutes))

	if rec.Message != "" {
		b.WriteString(sectionStyle.Render("Alert Message"))
		b.WriteString(fmt.Sprintf("\n  %s\n", rec.Message))
	}
	if rec.Modifications != "" {
		b.WriteString(sectionStyle.Render("Modifications"))
		b.WriteString(fmt.Sprintf("\n  %s\n", rec.Modifications))
	}
	if rec.RecoveryTips != "" {
		b.WriteString(sectionStyle.Render("Recovery Tips"))
		b.WriteString(fmt.Sprintf("\n  %s\n", rec.RecoveryTips))
	}

	b.WriteString(sectionStyle.Render("Your Metrics"))
	b.WriteString(fmt.Sprintf("\n  Heart Rate: %d bpm\n", rec.InputMetrics.HeartRate))
	b.WriteString(fmt.Sprintf("  Sleep:      %g hours\n", rec.InputMetrics.SleepHours))
	b.WriteString(fmt.Sprintf("  Stress:     %d/10\n", rec.InputMetrics.StressLevel))

	return cardStyle.Render(b.String())
}
