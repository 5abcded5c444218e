// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
//
// The pool is limited to one connection, so transactions never interleave and
// a check-then-write inside a transaction is atomic.
type SQLiteStore struct {
	db *sqlx.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return newWithDB(db), nil
}

func newWithDB(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// withTx runs fn inside a transaction and commits if it returns nil.
func (s *SQLiteStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// exists reports whether table has a row whose column equals id.
// table and column are always package constants, never caller input.
func exists(ctx context.Context, q sqlx.QueryerContext, table, column, id string) (bool, error) {
	var one int
	err := sqlx.GetContext(ctx, q, &one, "SELECT 1 FROM "+table+" WHERE "+column+" = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return true, nil
}

// requireRow converts a missing row into storage.ErrNotFound.
func requireRow(ctx context.Context, q sqlx.QueryerContext, table, column, id, what string) error {
	ok, err := exists(ctx, q, table, column, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %s", storage.ErrNotFound, what, id)
	}
	return nil
}

const useCaseColumns = `uc_id, title, description, owner, tags, phase_id, mvp_release_id,
	priority, status, value, effort, created_date, last_updated`

// CreateUseCase persists a new use case to the database.
func (s *SQLiteStore) CreateUseCase(ctx context.Context, uc *models.UseCase) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := requireRow(ctx, tx, "phases", "phase_id", uc.PhaseID, "phase"); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "releases", "release_id", uc.MvpReleaseID, "release"); err != nil {
			return err
		}

		uc.UcID = uuid.New().String()
		_, err := tx.NamedExecContext(ctx,
			`INSERT INTO use_cases (`+useCaseColumns+`)
			 VALUES (:uc_id, :title, :description, :owner, :tags, :phase_id, :mvp_release_id,
			         :priority, :status, :value, :effort, :created_date, :last_updated)`,
			uc,
		)
		if err != nil {
			return fmt.Errorf("failed to insert use case: %w", err)
		}
		return nil
	})
}

// GetUseCase retrieves a use case by ID.
func (s *SQLiteStore) GetUseCase(ctx context.Context, ucID string) (*models.UseCase, error) {
	uc := &models.UseCase{}
	err := s.db.GetContext(ctx, uc, `SELECT `+useCaseColumns+` FROM use_cases WHERE uc_id = ?`, ucID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: use case %s", storage.ErrNotFound, ucID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get use case: %w", err)
	}
	return uc, nil
}

// UpdateUseCase replaces the mutable fields of an existing use case.
func (s *SQLiteStore) UpdateUseCase(ctx context.Context, uc *models.UseCase) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		var created int64
		err := tx.GetContext(ctx, &created, "SELECT created_date FROM use_cases WHERE uc_id = ?", uc.UcID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: use case %s", storage.ErrNotFound, uc.UcID)
		}
		if err != nil {
			return fmt.Errorf("failed to get use case: %w", err)
		}
		if err := requireRow(ctx, tx, "phases", "phase_id", uc.PhaseID, "phase"); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "releases", "release_id", uc.MvpReleaseID, "release"); err != nil {
			return err
		}

		uc.CreatedDate = created
		_, err = tx.NamedExecContext(ctx,
			`UPDATE use_cases SET title = :title, description = :description, owner = :owner,
			        tags = :tags, phase_id = :phase_id, mvp_release_id = :mvp_release_id,
			        priority = :priority, status = :status, value = :value, effort = :effort,
			        last_updated = :last_updated
			 WHERE uc_id = :uc_id`,
			uc,
		)
		if err != nil {
			return fmt.Errorf("failed to update use case: %w", err)
		}
		return nil
	})
}

// DeleteUseCase removes a use case by ID.
func (s *SQLiteStore) DeleteUseCase(ctx context.Context, ucID string) error {
	return s.deleteRow(ctx, "use_cases", "uc_id", ucID, "use case")
}

// ListUseCases returns every use case in insertion order.
func (s *SQLiteStore) ListUseCases(ctx context.Context) ([]models.UseCase, error) {
	return listUseCases(ctx, s.db)
}

func listUseCases(ctx context.Context, q sqlx.QueryerContext) ([]models.UseCase, error) {
	useCases := []models.UseCase{}
	if err := sqlx.SelectContext(ctx, q, &useCases, `SELECT `+useCaseColumns+` FROM use_cases ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("failed to list use cases: %w", err)
	}
	return useCases, nil
}

// Snapshot reads use cases, releases and phases inside one transaction.
func (s *SQLiteStore) Snapshot(ctx context.Context) (*models.MVPRelease, error) {
	out := &models.MVPRelease{}
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if out.UseCases, err = listUseCases(ctx, tx); err != nil {
			return err
		}
		if out.Releases, err = listReleases(ctx, tx); err != nil {
			return err
		}
		out.Phases, err = listPhases(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// deleteRow checks existence and deletes in one transaction.
func (s *SQLiteStore) deleteRow(ctx context.Context, table, column, id, what string) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := requireRow(ctx, tx, table, column, id, what); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE "+column+" = ?", id); err != nil {
			return fmt.Errorf("failed to delete %s: %w", what, err)
		}
		return nil
	})
}
