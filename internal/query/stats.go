package query

import "github.com/mmynk/mvptracker/internal/models"

// Stats summarises the plan for a dashboard.
type Stats struct {
	TotalUseCases int `json:"totalUseCases"`
	TotalPhases   int `json:"totalPhases"`
	TotalReleases int `json:"totalReleases"`

	// UseCasesByStatus has an entry for every status, zero included.
	UseCasesByStatus map[string]int `json:"useCasesByStatus"`
	// UseCasesByPhase and UseCasesByRelease are keyed by the raw identifier,
	// so use cases pointing at deleted records are still counted.
	UseCasesByPhase   map[string]int `json:"useCasesByPhase"`
	UseCasesByRelease map[string]int `json:"useCasesByRelease"`

	PhasesByStatus   map[string]int `json:"phasesByStatus"`
	ReleasesByStatus map[string]int `json:"releasesByStatus"`
}

// Summarize computes Stats in a single pass over each collection.
func Summarize(plan *models.MVPRelease) Stats {
	st := Stats{
		TotalUseCases:     len(plan.UseCases),
		TotalPhases:       len(plan.Phases),
		TotalReleases:     len(plan.Releases),
		UseCasesByStatus:  map[string]int{},
		UseCasesByPhase:   map[string]int{},
		UseCasesByRelease: map[string]int{},
		PhasesByStatus:    map[string]int{},
		ReleasesByStatus:  map[string]int{},
	}
	for _, s := range models.AllUseCaseStatuses() {
		st.UseCasesByStatus[s.String()] = 0
	}
	for _, s := range models.AllPhaseStatuses() {
		st.PhasesByStatus[s.String()] = 0
	}
	for _, s := range models.AllReleaseStatuses() {
		st.ReleasesByStatus[s.String()] = 0
	}

	for _, uc := range plan.UseCases {
		st.UseCasesByStatus[uc.Status.String()]++
		st.UseCasesByPhase[uc.PhaseID]++
		st.UseCasesByRelease[uc.MvpReleaseID]++
	}
	for _, p := range plan.Phases {
		st.PhasesByStatus[p.Status.String()]++
	}
	for _, r := range plan.Releases {
		st.ReleasesByStatus[r.Status.String()]++
	}
	return st
}
