package tracker

import (
	"context"

	"github.com/mmynk/mvptracker/internal/access"
	"github.com/mmynk/mvptracker/internal/models"
)

func validateUseCase(uc *models.UseCase) error {
	switch {
	case !uc.Priority.Valid():
		return invalidArgument("priority %d", uc.Priority)
	case !uc.Status.Valid():
		return invalidArgument("status %d", uc.Status)
	case !uc.Value.Valid():
		return invalidArgument("value %d", uc.Value)
	case !uc.Effort.Valid():
		return invalidArgument("effort %d", uc.Effort)
	}
	if err := requireID("phase", uc.PhaseID); err != nil {
		return err
	}
	return requireID("release", uc.MvpReleaseID)
}

// CreateUseCase stores uc under a new server-assigned ID and returns it.
// Any UcID, CreatedDate or LastUpdated supplied by the caller is ignored.
func (t *Tracker) CreateUseCase(ctx context.Context, uc models.UseCase) (string, error) {
	identity, err := t.authorize(ctx, access.ActionCreate)
	if err != nil {
		return "", err
	}
	if err := validateUseCase(&uc); err != nil {
		return "", err
	}

	now := t.timestamp()
	uc.UcID = ""
	uc.CreatedDate = now
	uc.LastUpdated = now
	if err := t.store.CreateUseCase(ctx, &uc); err != nil {
		return "", err
	}

	t.logger.Info("Use case created", "uc_id", uc.UcID, "title", uc.Title, "identity", identity)
	return uc.UcID, nil
}

// GetUseCase returns the use case with the given ID.
func (t *Tracker) GetUseCase(ctx context.Context, ucID string) (*models.UseCase, error) {
	return t.store.GetUseCase(ctx, ucID)
}

// UpdateUseCase replaces the mutable fields of an existing use case and
// refreshes LastUpdated. CreatedDate is never changed.
func (t *Tracker) UpdateUseCase(ctx context.Context, uc models.UseCase) error {
	identity, err := t.authorize(ctx, access.ActionUpdate)
	if err != nil {
		return err
	}
	if err := validateUseCase(&uc); err != nil {
		return err
	}

	existing, err := t.store.GetUseCase(ctx, uc.UcID)
	if err != nil {
		return err
	}
	uc.CreatedDate = existing.CreatedDate
	uc.LastUpdated = max(t.timestamp(), existing.LastUpdated)
	if err := t.store.UpdateUseCase(ctx, &uc); err != nil {
		return err
	}

	t.logger.Info("Use case updated", "uc_id", uc.UcID, "identity", identity)
	return nil
}

// ChangeUseCasePhase moves a use case to another existing phase.
func (t *Tracker) ChangeUseCasePhase(ctx context.Context, ucID, newPhaseID string) error {
	identity, err := t.authorize(ctx, access.ActionUpdate)
	if err != nil {
		return err
	}
	if err := requireID("phase", newPhaseID); err != nil {
		return err
	}

	uc, err := t.store.GetUseCase(ctx, ucID)
	if err != nil {
		return err
	}
	uc.PhaseID = newPhaseID
	uc.LastUpdated = max(t.timestamp(), uc.LastUpdated)
	if err := t.store.UpdateUseCase(ctx, uc); err != nil {
		return err
	}

	t.logger.Info("Use case moved", "uc_id", ucID, "phase_id", newPhaseID, "identity", identity)
	return nil
}

// DeleteUseCase removes a use case. Admin only.
func (t *Tracker) DeleteUseCase(ctx context.Context, ucID string) error {
	identity, err := t.authorize(ctx, access.ActionDelete)
	if err != nil {
		return err
	}
	if err := t.store.DeleteUseCase(ctx, ucID); err != nil {
		return err
	}

	t.logger.Info("Use case deleted", "uc_id", ucID, "identity", identity)
	return nil
}

// GetAllUseCases lists every use case in insertion order.
func (t *Tracker) GetAllUseCases(ctx context.Context) ([]models.UseCase, error) {
	return t.store.ListUseCases(ctx)
}
