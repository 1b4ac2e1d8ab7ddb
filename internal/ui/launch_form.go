package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"drover/internal/domain"
)

// LaunchSelection is what the interactive form produces.
type LaunchSelection struct {
	Jobs        []domain.Job
	Mode        domain.Mode
	SessionName string
}

// RunLaunchForm asks the operator to pick jobs, a mode and a session name
// from the manifest's job list. Declaration order is preserved regardless of
// selection order.
func RunLaunchForm(available []domain.Job, defaultMode domain.Mode, defaultSession string) (*LaunchSelection, error) {
	options := make([]huh.Option[int], 0, len(available))
	for i, job := range available {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", job.DisplayName, job.Path), i))
	}

	var selected []int
	mode := string(defaultMode)
	sessionName := defaultSession

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().
			Title("Jobs to launch").
			Options(options...).
			Value(&selected).
			Validate(func(picked []int) error {
				if len(picked) == 0 {
					return fmt.Errorf("pick at least one job")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Mode").
			Options(
				huh.NewOption("Sequential (one window, chained)", string(domain.ModeSequential)),
				huh.NewOption("Concurrent (one window per job)", string(domain.ModeConcurrent)),
			).
			Value(&mode),
		huh.NewInput().
			Title("Session name").
			Value(&sessionName).
			Validate(func(s string) error {
				if domain.SanitizeName(s) == "" {
					return fmt.Errorf("session name cannot be empty")
				}
				return nil
			}),
	))

	if err := form.Run(); err != nil {
		return nil, err
	}

	// MultiSelect reports indices in selection order; re-sort into the
	// manifest's declaration order since that is the execution order.
	picked := make(map[int]bool, len(selected))
	for _, i := range selected {
		picked[i] = true
	}
	jobs := make([]domain.Job, 0, len(selected))
	for i, job := range available {
		if picked[i] {
			jobs = append(jobs, job)
		}
	}

	parsedMode, err := domain.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	return &LaunchSelection{
		Jobs:        jobs,
		Mode:        parsedMode,
		SessionName: domain.SanitizeName(sessionName),
	}, nil
}
