package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// GetProfile retrieves the profile owned by identity.
func (s *SQLiteStore) GetProfile(ctx context.Context, identity string) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	err := s.db.GetContext(ctx, profile, "SELECT name FROM user_profiles WHERE identity = ?", identity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // No profile yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile inserts or replaces the profile owned by identity.
func (s *SQLiteStore) SaveProfile(ctx context.Context, identity string, profile *models.UserProfile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_profiles (identity, name) VALUES (?, ?)
		 ON CONFLICT(identity) DO UPDATE SET name = excluded.name`,
		identity, profile.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetRole retrieves the explicit role assignment for identity, if any.
func (s *SQLiteStore) GetRole(ctx context.Context, identity string) (models.UserRole, bool, error) {
	var role models.UserRole
	err := s.db.GetContext(ctx, &role, "SELECT role FROM user_roles WHERE identity = ?", identity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RoleGuest, false, nil
	}
	if err != nil {
		return models.RoleGuest, false, fmt.Errorf("failed to get role: %w", err)
	}
	return role, true, nil
}

// SetRole inserts or replaces the role assignment for identity.
func (s *SQLiteStore) SetRole(ctx context.Context, identity string, role models.UserRole) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_roles (identity, role) VALUES (?, ?)
		 ON CONFLICT(identity) DO UPDATE SET role = excluded.role`,
		identity, role,
	)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	return nil
}

// CountAdmins counts identities holding the admin role.
func (s *SQLiteStore) CountAdmins(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM user_roles WHERE role = ?", models.RoleAdmin); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

const appConfigColumns = "version, admin_passcode, is_released"

// GetAppConfig retrieves the singleton config row.
func (s *SQLiteStore) GetAppConfig(ctx context.Context) (*models.AppConfig, error) {
	cfg := &models.AppConfig{}
	err := s.db.GetContext(ctx, cfg, "SELECT "+appConfigColumns+" FROM app_config WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: app config", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app config: %w", err)
	}
	return cfg, nil
}

// InitAppConfig inserts the singleton row if it is absent.
func (s *SQLiteStore) InitAppConfig(ctx context.Context, cfg *models.AppConfig) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO app_config (id, "+appConfigColumns+") VALUES (1, ?, ?, ?) ON CONFLICT(id) DO NOTHING",
		cfg.Version, cfg.AdminPasscode, cfg.IsReleased,
	)
	if err != nil {
		return fmt.Errorf("failed to init app config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to init app config: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: app config already initialized", storage.ErrConflict)
	}
	return nil
}

// PutAppConfig overwrites the singleton row.
func (s *SQLiteStore) PutAppConfig(ctx context.Context, cfg *models.AppConfig) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE app_config SET version = ?, admin_passcode = ?, is_released = ? WHERE id = 1",
		cfg.Version, cfg.AdminPasscode, cfg.IsReleased,
	)
	if err != nil {
		return fmt.Errorf("failed to update app config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update app config: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: app config", storage.ErrNotFound)
	}
	return nil
}
