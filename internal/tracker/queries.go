package tracker

import (
	"context"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/query"
)

func (t *Tracker) filterUseCases(ctx context.Context, keep func(models.UseCase) bool) ([]models.UseCase, error) {
	all, err := t.store.ListUseCases(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(all, keep), nil
}

// FilterUseCasesByPhase lists use cases assigned to phaseID.
func (t *Tracker) FilterUseCasesByPhase(ctx context.Context, phaseID string) ([]models.UseCase, error) {
	return t.filterUseCases(ctx, query.ByPhase(phaseID))
}

// FilterUseCasesByRelease lists use cases assigned to releaseID.
func (t *Tracker) FilterUseCasesByRelease(ctx context.Context, releaseID string) ([]models.UseCase, error) {
	return t.filterUseCases(ctx, query.ByRelease(releaseID))
}

// FilterUseCasesByPriority lists use cases with priority p. An unset or
// unknown priority is rejected rather than matched.
func (t *Tracker) FilterUseCasesByPriority(ctx context.Context, p models.UseCasePriority) ([]models.UseCase, error) {
	if !p.Valid() {
		return nil, invalidArgument("priority %d", p)
	}
	return t.filterUseCases(ctx, query.ByPriority(p))
}

// FilterUseCasesByStatus lists use cases with status s. An unset or unknown
// status is rejected rather than matched.
func (t *Tracker) FilterUseCasesByStatus(ctx context.Context, s models.UseCaseStatus) ([]models.UseCase, error) {
	if !s.Valid() {
		return nil, invalidArgument("status %d", s)
	}
	return t.filterUseCases(ctx, query.ByStatus(s))
}

// SortUseCasesByLastUpdated lists use cases most recently touched first.
func (t *Tracker) SortUseCasesByLastUpdated(ctx context.Context) ([]models.UseCase, error) {
	all, err := t.store.ListUseCases(ctx)
	if err != nil {
		return nil, err
	}
	return query.SortByLastUpdated(all), nil
}

// SortPhasesByStatus lists phases in lifecycle order of their status.
func (t *Tracker) SortPhasesByStatus(ctx context.Context) ([]models.Phase, error) {
	phases, err := t.store.ListPhases(ctx)
	if err != nil {
		return nil, err
	}
	return query.SortPhasesByStatus(phases), nil
}

// SortReleasesByStatus lists releases in lifecycle order of their status.
func (t *Tracker) SortReleasesByStatus(ctx context.Context) ([]models.Release, error) {
	releases, err := t.store.ListReleases(ctx)
	if err != nil {
		return nil, err
	}
	return query.SortReleasesByStatus(releases), nil
}

// GetPhasesByReleaseID lists phases of a release. An unknown release yields
// an empty list, not an error.
func (t *Tracker) GetPhasesByReleaseID(ctx context.Context, releaseID string) ([]models.Phase, error) {
	phases, err := t.store.ListPhases(ctx)
	if err != nil {
		return nil, err
	}
	return query.PhasesByRelease(phases, releaseID), nil
}

// GetAllMVPReleases returns every use case, release and phase.
func (t *Tracker) GetAllMVPReleases(ctx context.Context) (*models.MVPRelease, error) {
	return t.store.Snapshot(ctx)
}

// SearchUseCases applies every criterion in c at once.
func (t *Tracker) SearchUseCases(ctx context.Context, c query.Criteria) ([]models.UseCase, error) {
	if c.Status != nil && !c.Status.Valid() {
		return nil, invalidArgument("status %d", *c.Status)
	}
	if c.Priority != nil && !c.Priority.Valid() {
		return nil, invalidArgument("priority %d", *c.Priority)
	}
	all, err := t.store.ListUseCases(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(all, c), nil
}

// GetDashboardStats counts use cases, phases and releases by their groupings.
func (t *Tracker) GetDashboardStats(ctx context.Context) (*query.Stats, error) {
	plan, err := t.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	st := query.Summarize(plan)
	return &st, nil
}
