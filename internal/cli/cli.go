// Package cli implements the interactive metric-entry loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/briangreenhill/fitadvisor/advisor"
)

// Run prompts for health metrics, prints a recommendation and repeats until
// the user declines. A nil error is returned on a normal exit, including a
// ctrl-c abort mid-form.
func Run(ctx context.Context, adv *advisor.Advisor) error {
	fmt.Println(titleStyle.Render("Fitness Advisor"))
	if adv.Mode() == advisor.ModeRuleOnly {
		fmt.Println("Running in rule-only mode (no DEEPSEEK_API_KEY set)")
	}

	for {
		metrics, err := collectMetrics()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Goodbye!")
				return nil
			}
			return err
		}

		fmt.Println("\nAnalyzing your metrics...")
		rec := adv.Analyze(ctx, metrics)
		fmt.Println(Render(rec))

		again := false
		confirm := huh.NewConfirm().
			Title("Another analysis?").
			Value(&again)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil || !again {
			fmt.Println("Stay healthy! Goodbye!")
			return nil
		}
	}
}

// collectMetrics runs the entry form. Numeric fields are validated as they
// are typed, so parsing afterwards cannot fail.
func collectMetrics() (advisor.HealthMetrics, error) {
	var heartRate, sleepHours, stressLevel, previousWorkout string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Resting Heart Rate (bpm)").
				Placeholder("72").
				Value(&heartRate).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Sleep Hours (last night)").
				Placeholder("7.5").
				Value(&sleepHours).
				Validate(validateNonNegativeFloat),
			huh.NewInput().
				Title("Stress Level (1-10)").
				Placeholder("4").
				Value(&stressLevel).
				Validate(validateStressLevel),
			huh.NewInput().
				Title("Previous Workout (optional)").
				Placeholder("weight training").
				Value(&previousWorkout),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return advisor.HealthMetrics{}, err
	}

	hr, _ := strconv.Atoi(strings.TrimSpace(heartRate))
	sleep, _ := strconv.ParseFloat(strings.TrimSpace(sleepHours), 64)
	stress, _ := strconv.Atoi(strings.TrimSpace(stressLevel))

	return advisor.HealthMetrics{
		HeartRate:       hr,
		SleepHours:      sleep,
		StressLevel:     stress,
		PreviousWorkout: strings.TrimSpace(previousWorkout),
	}, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if f < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateStressLevel(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 1 || n > 10 {
		return fmt.Errorf("must be between 1 and 10")
	}
	return nil
}
