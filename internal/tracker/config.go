package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/mvptracker/internal/access"
	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// GetAppConfig returns the app config. The admin passcode is only included
// for admin callers.
func (t *Tracker) GetAppConfig(ctx context.Context) (*models.AppConfig, error) {
	cfg, err := t.store.GetAppConfig(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: app config not initialized", ErrInvalidState)
	}
	if err != nil {
		return nil, err
	}

	role, err := t.gate.Role(ctx, auth.Identity(ctx))
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin {
		cfg.AdminPasscode = ""
	}
	return cfg, nil
}

// InitializeAppConfig creates the app config. Once it exists, further calls
// behave as UpdateAppConfig. The first initializer becomes admin when no admin
// has been assigned yet.
func (t *Tracker) InitializeAppConfig(ctx context.Context, cfg models.AppConfig) error {
	t.configMu.Lock()
	defer t.configMu.Unlock()

	identity := auth.Identity(ctx)
	err := t.store.InitAppConfig(ctx, &cfg)
	if errors.Is(err, storage.ErrConflict) {
		return t.updateAppConfig(ctx, cfg)
	}
	if err != nil {
		return err
	}
	t.logger.Info("App config initialized", "version", cfg.Version, "released", cfg.IsReleased, "identity", identity)

	if identity == "" {
		return nil
	}
	admins, err := t.store.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if admins == 0 {
		if err := t.store.SetRole(ctx, identity, models.RoleAdmin); err != nil {
			return err
		}
		t.logger.Info("Initializer granted admin", "identity", identity)
	}
	return nil
}

// UpdateAppConfig replaces the app config. Admin only.
func (t *Tracker) UpdateAppConfig(ctx context.Context, cfg models.AppConfig) error {
	t.configMu.Lock()
	defer t.configMu.Unlock()
	return t.updateAppConfig(ctx, cfg)
}

func (t *Tracker) updateAppConfig(ctx context.Context, cfg models.AppConfig) error {
	identity, err := t.authorize(ctx, access.ActionAdmin)
	if err != nil {
		return err
	}
	err = t.store.PutAppConfig(ctx, &cfg)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: app config not initialized", ErrInvalidState)
	}
	if err != nil {
		return err
	}

	t.logger.Info("App config updated", "version", cfg.Version, "released", cfg.IsReleased, "identity", identity)
	return nil
}

// VerifyAdminPasscode reports whether passcode matches the configured admin
// passcode. A match only unlocks the advisory admin session.
func (t *Tracker) VerifyAdminPasscode(ctx context.Context, passcode string) (bool, error) {
	cfg, err := t.store.GetAppConfig(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("%w: app config not initialized", ErrInvalidState)
	}
	if err != nil {
		return false, err
	}

	ok := auth.PasscodeMatches(cfg.AdminPasscode, passcode)
	if !ok {
		t.logger.Warn("Admin passcode rejected", "identity", auth.Identity(ctx))
	}
	return ok, nil
}
