package tracker

import (
	"context"

	"github.com/mmynk/mvptracker/internal/access"
	"github.com/mmynk/mvptracker/internal/models"
)

func validateRelease(r *models.Release) error {
	if err := requireID("release", r.ReleaseID); err != nil {
		return err
	}
	if !r.Status.Valid() {
		return invalidArgument("release status %d", r.Status)
	}
	return nil
}

// CreateRelease stores a release under its caller-supplied ID.
func (t *Tracker) CreateRelease(ctx context.Context, release models.Release) error {
	identity, err := t.authorize(ctx, access.ActionCreate)
	if err != nil {
		return err
	}
	if err := validateRelease(&release); err != nil {
		return err
	}
	if err := t.store.CreateRelease(ctx, &release); err != nil {
		return err
	}

	t.logger.Info("Release created", "release_id", release.ReleaseID, "identity", identity)
	return nil
}

// GetRelease returns the release with the given ID.
func (t *Tracker) GetRelease(ctx context.Context, releaseID string) (*models.Release, error) {
	return t.store.GetRelease(ctx, releaseID)
}

// UpdateRelease replaces every field of an existing release.
func (t *Tracker) UpdateRelease(ctx context.Context, release models.Release) error {
	identity, err := t.authorize(ctx, access.ActionUpdate)
	if err != nil {
		return err
	}
	if err := validateRelease(&release); err != nil {
		return err
	}
	if err := t.store.UpdateRelease(ctx, &release); err != nil {
		return err
	}

	t.logger.Info("Release updated", "release_id", release.ReleaseID, "identity", identity)
	return nil
}

// DeleteRelease removes a release. Phases and use cases naming it keep the ID.
func (t *Tracker) DeleteRelease(ctx context.Context, releaseID string) error {
	identity, err := t.authorize(ctx, access.ActionDelete)
	if err != nil {
		return err
	}
	if err := t.store.DeleteRelease(ctx, releaseID); err != nil {
		return err
	}

	t.logger.Info("Release deleted", "release_id", releaseID, "identity", identity)
	return nil
}

// GetAllReleases lists every release in insertion order.
func (t *Tracker) GetAllReleases(ctx context.Context) ([]models.Release, error) {
	return t.store.ListReleases(ctx)
}
