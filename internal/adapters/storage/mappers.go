package storage

import (
	"sort"

	"drover/internal/domain"
)

// launchModelToDomain converts a LaunchModel (GORM) to domain.Launch
func launchModelToDomain(m LaunchModel) domain.Launch {
	jobs := make([]LaunchJobModel, len(m.Jobs))
	copy(jobs, m.Jobs)
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Position < jobs[j].Position })

	domainJobs := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		domainJobs = append(domainJobs, domain.Job{
			Path:        j.Path,
			DisplayName: j.DisplayName,
			Interpreter: j.Interpreter,
		})
	}

	return domain.Launch{
		ID:          m.ID,
		SessionName: m.SessionName,
		Mode:        domain.Mode(m.Mode),
		Jobs:        domainJobs,
		LaunchedAt:  m.LaunchedAt,
	}
}

// domainToLaunchModel converts a domain.Launch to LaunchModel (GORM)
func domainToLaunchModel(l domain.Launch) LaunchModel {
	jobs := make([]LaunchJobModel, 0, len(l.Jobs))
	for i, j := range l.Jobs {
		jobs = append(jobs, LaunchJobModel{
			DisplayName: j.DisplayName,
			Interpreter: j.Interpreter,
			LaunchID:    l.ID,
			Path:        j.Path,
			Position:    i,
		})
	}

	return LaunchModel{
		ID:          l.ID,
		Jobs:        jobs,
		LaunchedAt:  l.LaunchedAt,
		Mode:        string(l.Mode),
		SessionName: l.SessionName,
	}
}
