// Package access decides whether a caller may perform an action.
//
// The durable UserRole is the only input that grants rights. Admins may do
// anything; everyone else may read, may create and update only while the app
// is released, and may never delete or perform admin actions.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// ErrForbidden is returned when the gate denies an action.
var ErrForbidden = errors.New("forbidden")

// Action classifies an operation for authorization.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
	// ActionAdmin covers role assignment, config updates and invite management.
	ActionAdmin
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionAdmin:
		return "administer"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Allow is the authorization table. A nil cfg means the app config has not
// been initialized and is treated as pre-release.
func Allow(action Action, role models.UserRole, cfg *models.AppConfig) bool {
	if role == models.RoleAdmin {
		return true
	}
	switch action {
	case ActionRead:
		return true
	case ActionCreate, ActionUpdate:
		return cfg != nil && cfg.IsReleased
	case ActionDelete, ActionAdmin:
		return false
	}
	return false
}

// Store is the subset of storage.Store the gate reads.
type Store interface {
	GetRole(ctx context.Context, identity string) (models.UserRole, bool, error)
	GetAppConfig(ctx context.Context) (*models.AppConfig, error)
}

// Gate resolves roles and applies Allow against the current app config.
type Gate struct {
	store Store
}

// NewGate creates a gate backed by store.
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Role resolves the caller's role. Anonymous and unassigned identities are guests.
func (g *Gate) Role(ctx context.Context, identity string) (models.UserRole, error) {
	if identity == "" {
		return models.RoleGuest, nil
	}
	role, ok, err := g.store.GetRole(ctx, identity)
	if err != nil {
		return models.RoleGuest, fmt.Errorf("failed to resolve role: %w", err)
	}
	if !ok {
		return models.RoleGuest, nil
	}
	return role, nil
}

// Authorize returns the caller's role, or ErrForbidden if action is denied.
func (g *Gate) Authorize(ctx context.Context, identity string, action Action) (models.UserRole, error) {
	role, err := g.Role(ctx, identity)
	if err != nil {
		return role, err
	}
	if role == models.RoleAdmin {
		return role, nil
	}

	var cfg *models.AppConfig
	if action == ActionCreate || action == ActionUpdate {
		cfg, err = g.store.GetAppConfig(ctx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return role, fmt.Errorf("failed to load app config: %w", err)
		}
	}

	if !Allow(action, role, cfg) {
		return role, fmt.Errorf("%w: role %s may not %s", ErrForbidden, role, action)
	}
	return role, nil
}
