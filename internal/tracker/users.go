package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/mvptracker/internal/access"
	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/internal/models"
)

// GetCallerUserRole resolves the caller's durable role.
func (t *Tracker) GetCallerUserRole(ctx context.Context) (models.UserRole, error) {
	return t.gate.Role(ctx, auth.Identity(ctx))
}

// IsCallerAdmin reports whether the caller holds the durable admin role.
func (t *Tracker) IsCallerAdmin(ctx context.Context) (bool, error) {
	role, err := t.GetCallerUserRole(ctx)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// AssignCallerUserRole sets the durable role of identity. Admin only.
func (t *Tracker) AssignCallerUserRole(ctx context.Context, identity string, role models.UserRole) error {
	caller, err := t.authorize(ctx, access.ActionAdmin)
	if err != nil {
		return err
	}
	if strings.TrimSpace(identity) == "" {
		return invalidArgument("identity is required")
	}
	if !role.Valid() {
		return invalidArgument("role %d", role)
	}
	if err := t.store.SetRole(ctx, identity, role); err != nil {
		return err
	}

	t.logger.Info("Role assigned", "identity", identity, "role", role.String(), "by", caller)
	return nil
}

// GetCallerUserProfile returns the caller's profile, or nil if they have none.
func (t *Tracker) GetCallerUserProfile(ctx context.Context) (*models.UserProfile, error) {
	identity := auth.Identity(ctx)
	if identity == "" {
		return nil, nil
	}
	return t.store.GetProfile(ctx, identity)
}

// SaveCallerUserProfile creates or replaces the caller's own profile.
// Anonymous callers have no profile to save.
func (t *Tracker) SaveCallerUserProfile(ctx context.Context, profile models.UserProfile) error {
	identity := auth.Identity(ctx)
	if identity == "" {
		return fmt.Errorf("%w: anonymous callers cannot save a profile", ErrForbidden)
	}
	if err := t.store.SaveProfile(ctx, identity, &profile); err != nil {
		return err
	}

	t.logger.Info("Profile saved", "identity", identity)
	return nil
}

// GetUserProfile returns the profile of identity. Only the owner and admins
// may read it.
func (t *Tracker) GetUserProfile(ctx context.Context, identity string) (*models.UserProfile, error) {
	caller := auth.Identity(ctx)
	if caller == "" || caller != identity {
		if _, err := t.authorize(ctx, access.ActionAdmin); err != nil {
			return nil, err
		}
	}
	return t.store.GetProfile(ctx, identity)
}

// BootstrapAdmins grants the admin role to each configured identity.
func (t *Tracker) BootstrapAdmins(ctx context.Context, identities []string) error {
	for _, identity := range identities {
		identity = strings.TrimSpace(identity)
		if identity == "" {
			continue
		}
		if err := t.store.SetRole(ctx, identity, models.RoleAdmin); err != nil {
			return fmt.Errorf("failed to bootstrap admin %s: %w", identity, err)
		}
		t.logger.Info("Bootstrap admin assigned", "identity", identity)
	}
	return nil
}
