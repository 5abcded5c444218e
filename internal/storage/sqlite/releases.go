package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

const releaseColumns = `release_id, release_name, release_goal, target_date, status`

// CreateRelease persists a new release under its caller-supplied ID.
func (s *SQLiteStore) CreateRelease(ctx context.Context, release *models.Release) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		taken, err := exists(ctx, tx, "releases", "release_id", release.ReleaseID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: release %s already exists", storage.ErrConflict, release.ReleaseID)
		}

		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO releases (`+releaseColumns+`)
			 VALUES (:release_id, :release_name, :release_goal, :target_date, :status)`,
			release,
		)
		if err != nil {
			return fmt.Errorf("failed to insert release: %w", err)
		}
		return nil
	})
}

// GetRelease retrieves a release by ID.
func (s *SQLiteStore) GetRelease(ctx context.Context, releaseID string) (*models.Release, error) {
	release := &models.Release{}
	err := s.db.GetContext(ctx, release, `SELECT `+releaseColumns+` FROM releases WHERE release_id = ?`, releaseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: release %s", storage.ErrNotFound, releaseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	return release, nil
}

// UpdateRelease replaces every field of an existing release.
func (s *SQLiteStore) UpdateRelease(ctx context.Context, release *models.Release) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := requireRow(ctx, tx, "releases", "release_id", release.ReleaseID, "release"); err != nil {
			return err
		}

		_, err := tx.NamedExecContext(ctx,
			`UPDATE releases SET release_name = :release_name, release_goal = :release_goal,
			        target_date = :target_date, status = :status
			 WHERE release_id = :release_id`,
			release,
		)
		if err != nil {
			return fmt.Errorf("failed to update release: %w", err)
		}
		return nil
	})
}

// DeleteRelease removes a release. Phases and use cases naming it are kept.
func (s *SQLiteStore) DeleteRelease(ctx context.Context, releaseID string) error {
	return s.deleteRow(ctx, "releases", "release_id", releaseID, "release")
}

// ListReleases returns every release in insertion order.
func (s *SQLiteStore) ListReleases(ctx context.Context) ([]models.Release, error) {
	return listReleases(ctx, s.db)
}

func listReleases(ctx context.Context, q sqlx.QueryerContext) ([]models.Release, error) {
	releases := []models.Release{}
	if err := sqlx.SelectContext(ctx, q, &releases, `SELECT `+releaseColumns+` FROM releases ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	return releases, nil
}
