package tracker

import (
	"context"

	"github.com/mmynk/mvptracker/internal/access"
	"github.com/mmynk/mvptracker/internal/models"
)

func validatePhase(p *models.Phase) error {
	if err := requireID("phase", p.PhaseID); err != nil {
		return err
	}
	if !p.Status.Valid() {
		return invalidArgument("phase status %d", p.Status)
	}
	return requireID("release", p.ReleaseID)
}

// CreatePhase stores a phase under its caller-supplied ID.
func (t *Tracker) CreatePhase(ctx context.Context, phase models.Phase) error {
	identity, err := t.authorize(ctx, access.ActionCreate)
	if err != nil {
		return err
	}
	if err := validatePhase(&phase); err != nil {
		return err
	}
	if err := t.store.CreatePhase(ctx, &phase); err != nil {
		return err
	}

	t.logger.Info("Phase created", "phase_id", phase.PhaseID, "release_id", phase.ReleaseID, "identity", identity)
	return nil
}

// GetPhase returns the phase with the given ID.
func (t *Tracker) GetPhase(ctx context.Context, phaseID string) (*models.Phase, error) {
	return t.store.GetPhase(ctx, phaseID)
}

// UpdatePhase replaces every field of an existing phase.
func (t *Tracker) UpdatePhase(ctx context.Context, phase models.Phase) error {
	identity, err := t.authorize(ctx, access.ActionUpdate)
	if err != nil {
		return err
	}
	if err := validatePhase(&phase); err != nil {
		return err
	}
	if err := t.store.UpdatePhase(ctx, &phase); err != nil {
		return err
	}

	t.logger.Info("Phase updated", "phase_id", phase.PhaseID, "identity", identity)
	return nil
}

// ChangePhaseRelease moves a phase to another existing release.
func (t *Tracker) ChangePhaseRelease(ctx context.Context, phaseID, newReleaseID string) error {
	identity, err := t.authorize(ctx, access.ActionUpdate)
	if err != nil {
		return err
	}
	if err := requireID("release", newReleaseID); err != nil {
		return err
	}

	phase, err := t.store.GetPhase(ctx, phaseID)
	if err != nil {
		return err
	}
	phase.ReleaseID = newReleaseID
	if err := t.store.UpdatePhase(ctx, phase); err != nil {
		return err
	}

	t.logger.Info("Phase moved", "phase_id", phaseID, "release_id", newReleaseID, "identity", identity)
	return nil
}

// DeletePhase removes a phase. Use cases that reference it are not touched.
func (t *Tracker) DeletePhase(ctx context.Context, phaseID string) error {
	identity, err := t.authorize(ctx, access.ActionDelete)
	if err != nil {
		return err
	}
	if err := t.store.DeletePhase(ctx, phaseID); err != nil {
		return err
	}

	t.logger.Info("Phase deleted", "phase_id", phaseID, "identity", identity)
	return nil
}

// GetAllPhases lists every phase in insertion order.
func (t *Tracker) GetAllPhases(ctx context.Context) ([]models.Phase, error) {
	return t.store.ListPhases(ctx)
}
