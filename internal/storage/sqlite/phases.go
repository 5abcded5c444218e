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

const phaseColumns = `phase_id, phase_name, phase_goal, target_date, status, release_id`

// CreatePhase persists a new phase. The caller-supplied ID must be unused and
// the release it names must exist.
func (s *SQLiteStore) CreatePhase(ctx context.Context, phase *models.Phase) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		taken, err := exists(ctx, tx, "phases", "phase_id", phase.PhaseID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: phase %s already exists", storage.ErrConflict, phase.PhaseID)
		}
		if err := requireRow(ctx, tx, "releases", "release_id", phase.ReleaseID, "release"); err != nil {
			return err
		}

		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO phases (`+phaseColumns+`)
			 VALUES (:phase_id, :phase_name, :phase_goal, :target_date, :status, :release_id)`,
			phase,
		)
		if err != nil {
			return fmt.Errorf("failed to insert phase: %w", err)
		}
		return nil
	})
}

// GetPhase retrieves a phase by ID.
func (s *SQLiteStore) GetPhase(ctx context.Context, phaseID string) (*models.Phase, error) {
	phase := &models.Phase{}
	err := s.db.GetContext(ctx, phase, `SELECT `+phaseColumns+` FROM phases WHERE phase_id = ?`, phaseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: phase %s", storage.ErrNotFound, phaseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}
	return phase, nil
}

// UpdatePhase replaces every field of an existing phase.
func (s *SQLiteStore) UpdatePhase(ctx context.Context, phase *models.Phase) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := requireRow(ctx, tx, "phases", "phase_id", phase.PhaseID, "phase"); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "releases", "release_id", phase.ReleaseID, "release"); err != nil {
			return err
		}

		_, err := tx.NamedExecContext(ctx,
			`UPDATE phases SET phase_name = :phase_name, phase_goal = :phase_goal,
			        target_date = :target_date, status = :status, release_id = :release_id
			 WHERE phase_id = :phase_id`,
			phase,
		)
		if err != nil {
			return fmt.Errorf("failed to update phase: %w", err)
		}
		return nil
	})
}

// DeletePhase removes a phase. Use cases pointing at it are left as they are.
func (s *SQLiteStore) DeletePhase(ctx context.Context, phaseID string) error {
	return s.deleteRow(ctx, "phases", "phase_id", phaseID, "phase")
}

// ListPhases returns every phase in insertion order.
func (s *SQLiteStore) ListPhases(ctx context.Context) ([]models.Phase, error) {
	return listPhases(ctx, s.db)
}

func listPhases(ctx context.Context, q sqlx.QueryerContext) ([]models.Phase, error) {
	phases := []models.Phase{}
	if err := sqlx.SelectContext(ctx, q, &phases, `SELECT `+phaseColumns+` FROM phases ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	return phases, nil
}
